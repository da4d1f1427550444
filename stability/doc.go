// Package stability verifies an arbitrary hospital–student matching against
// a core.Instance: first its structural validity, then its stability.
//
// 🚦 Two checks, in order:
//
//	Validity  – the candidate must be a perfect bijection over [0, n):
//	              • both maps have exactly n entries
//	              • every hospital is a key of HospitalToStudent
//	              • every student is a key of StudentToHospital
//	              • no participant is claimed twice
//	              • every ID lies in [0, n)
//	              • the maps are mutual inverses (h→s ⇔ s→h)
//	            Every violation is collected; the check never stops at the
//	            first failure, so callers always get the full diagnosis.
//
//	Stability – only for valid candidates: a blocking pair is (h, s), not
//	            matched together, where h strictly prefers s to its partner
//	            and s strictly prefers h to its partner. All blocking pairs
//	            are collected; the matching is stable iff there are none.
//
// Failures are data, not errors: Verify returns a *Report carrying the
// verdict, the violations and the blocking pairs. Report.Err folds them into
// a single multi-error when a caller prefers error handling.
//
// The degenerate instance n = 0 is valid and stable by definition.
//
// ⚙️ Usage:
//
//	cand := stability.CandidateFromPairs(pairs)
//	rep, err := stability.Verify(inst, cand, stability.WithWorkers(4))
//	if err != nil {
//	  // ErrNilInstance or ErrOptionViolation
//	}
//	for _, line := range rep.Messages() {
//	  fmt.Println(line)
//	}
//
// Performance:
//
//   - Validity:  O(n log n) (sorted diagnostics).
//   - Stability: O(n²) pair scan after O(n²) rank-table construction.
//     WithWorkers(k) splits the scan by hospital rows across k goroutines;
//     results are merged in row order and equal the sequential scan.
package stability
