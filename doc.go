// Package stablematch solves the one-to-one Hospitals/Residents problem with
// strict, complete preferences on both sides, and checks matchings for
// validity and stability.
//
// 🚀 What is stablematch?
//
//	A small library plus three command-line tools:
//		• Data model: participant IDs, preference lists, rank indexes, matchings
//		• Engine: hospital-proposing Gale–Shapley with an observable proposal trace
//		• Verifier: structural validity checks and blocking-pair detection
//		• I/O: the line-oriented preference and matching file formats
//
// ✨ Guarantees
//
//   - The engine always returns the hospital-optimal stable matching, after at
//     most n² proposals.
//   - The verifier never short-circuits: every violation and every blocking
//     pair is reported, in a deterministic order.
//   - Libraries never log and never panic on user input; CLIs log to stderr
//     with zerolog and keep stdout for program output.
//
// Under the hood:
//
//	core/         - ID, PreferenceList, Instance, RankIndex, Matching, random instances
//	galeshapley/  - MatchingEngine: Match with OnPropose hooks and event logs
//	stability/    - StabilityVerifier: CheckValidity, FindBlockingPairs, Verify
//	prefio/       - preference/matching files, gzip, data-dir path resolution
//	internal/     - config (viper), logging (zerolog), report (text/JSON/YAML)
//	cmd/          - matcher, verifier, prefgen
//
// Quick start:
//
//	inst, _ := prefio.LoadPreferences("data/prefs.txt")
//	res, _ := galeshapley.Match(inst)
//	rep, _ := stability.VerifyMatching(inst, res.Matching)
//	fmt.Println(rep.Verdict()) // VALID and STABLE
package stablematch
