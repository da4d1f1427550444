package stability

import (
	"slices"

	"github.com/katalvlaran/stablematch/core"
)

// CheckValidity returns every structural violation of c as a matching over
// pools of size n. An empty result means c is a perfect, consistent bijection.
//
// All checks always run; the order of the result is fixed: counts, unmatched
// hospitals, unmatched students, duplicates, out-of-range IDs, inconsistent
// pairs, each group sorted by ID.
//
// Complexity: O(n log n + |c|·log|c|).
func CheckValidity(n int, c Candidate) []Violation {
	var out []Violation

	// Stage 1: sizes.
	if got := len(c.HospitalToStudent); got != n {
		out = append(out, newViolation(HospitalCount, core.None, core.None, core.None, n, got))
	}
	if got := len(c.StudentToHospital); got != n {
		out = append(out, newViolation(StudentCount, core.None, core.None, core.None, n, got))
	}

	// Stage 2: coverage of [0, n) on both sides.
	for h := core.ID(0); int(h) < n; h++ {
		if _, ok := c.HospitalToStudent[h]; !ok {
			out = append(out, newViolation(UnmatchedHospital, h, core.None, core.None, 0, 0))
		}
	}
	for s := core.ID(0); int(s) < n; s++ {
		if _, ok := c.StudentToHospital[s]; !ok {
			out = append(out, newViolation(UnmatchedStudent, core.None, s, core.None, 0, 0))
		}
	}

	hospitals := sortedKeys(c.HospitalToStudent)
	students := sortedKeys(c.StudentToHospital)

	// Stage 3: nobody claimed twice.
	for _, s := range duplicates(hospitals, c.HospitalToStudent) {
		out = append(out, newViolation(DuplicateStudent, core.None, s, core.None, 0, 0))
	}
	for _, h := range duplicates(students, c.StudentToHospital) {
		out = append(out, newViolation(DuplicateHospital, h, core.None, core.None, 0, 0))
	}

	// Stage 4: ranges. Each offending ID is reported once per side.
	badH, badS := outOfRange(n, hospitals, students, c)
	for _, h := range badH {
		out = append(out, newViolation(HospitalOutOfRange, h, core.None, core.None, 0, 0))
	}
	for _, s := range badS {
		out = append(out, newViolation(StudentOutOfRange, core.None, s, core.None, 0, 0))
	}

	// Stage 5: mutual consistency in both directions.
	for _, h := range hospitals {
		s := c.HospitalToStudent[h]
		if back, ok := c.StudentToHospital[s]; ok && back != h {
			out = append(out, newViolation(InconsistentHospital, h, s, back, 0, 0))
		}
	}
	for _, s := range students {
		h := c.StudentToHospital[s]
		if fwd, ok := c.HospitalToStudent[h]; ok && fwd != s {
			out = append(out, newViolation(InconsistentStudent, h, s, fwd, 0, 0))
		}
	}

	return out
}

// newViolation keeps the call sites above on one line each.
func newViolation(kind ViolationKind, h, s, other core.ID, want, got int) Violation {
	return Violation{Kind: kind, Hospital: h, Student: s, Other: other, Want: want, Got: got}
}

// duplicates returns, in increasing order, every value that more than one key
// of m maps to. keys must be the sorted keys of m.
func duplicates(keys []core.ID, m map[core.ID]core.ID) []core.ID {
	count := make(map[core.ID]int, len(m))
	for _, k := range keys {
		count[m[k]]++
	}
	var out []core.ID
	for v, c := range count {
		if c > 1 {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out
}

// outOfRange collects hospital and student IDs outside [0, n) from keys and
// values of both maps, deduplicated and sorted.
func outOfRange(n int, hospitals, students []core.ID, c Candidate) (badH, badS []core.ID) {
	inRange := func(id core.ID) bool { return id >= 0 && int(id) < n }
	seenH := make(map[core.ID]struct{})
	seenS := make(map[core.ID]struct{})
	for _, h := range hospitals {
		if !inRange(h) {
			seenH[h] = struct{}{}
		}
		if s := c.HospitalToStudent[h]; !inRange(s) {
			seenS[s] = struct{}{}
		}
	}
	for _, s := range students {
		if !inRange(s) {
			seenS[s] = struct{}{}
		}
		if h := c.StudentToHospital[s]; !inRange(h) {
			seenH[h] = struct{}{}
		}
	}
	for h := range seenH {
		badH = append(badH, h)
	}
	for s := range seenS {
		badS = append(badS, s)
	}
	slices.Sort(badH)
	slices.Sort(badS)

	return badH, badS
}
