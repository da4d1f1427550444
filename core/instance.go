package core

// Instance is a validated stable matching problem: n hospitals and n students,
// each with a strict, complete preference list over the other pool.
//
// Instances are immutable after NewInstance; accessors return the stored lists
// and callers must not modify them.
type Instance struct {
	n         int
	hospitals []PreferenceList
	students  []PreferenceList
}

// NewInstance validates and copies the two sides' preference lists.
//
// Contract:
//   - len(hospitals) == len(students) == n (n may be 0).
//   - every list has exactly n entries and is a permutation of [0, n).
//
// Errors: ErrSizeMismatch, or a *PreferenceError wrapping ErrListLength,
// ErrIDOutOfRange or ErrDuplicateID.
//
// Complexity: O(n²) time and space.
func NewInstance(hospitals, students []PreferenceList) (*Instance, error) {
	if len(hospitals) != len(students) {
		return nil, ErrSizeMismatch
	}
	n := len(hospitals)
	if err := validateSide(Hospitals, hospitals, n); err != nil {
		return nil, err
	}
	if err := validateSide(Students, students, n); err != nil {
		return nil, err
	}

	return &Instance{
		n:         n,
		hospitals: cloneLists(hospitals),
		students:  cloneLists(students),
	}, nil
}

// N returns the common pool size.
func (in *Instance) N() int { return in.n }

// Hospital returns hospital h's preference list over students.
func (in *Instance) Hospital(h ID) PreferenceList { return in.hospitals[h] }

// Student returns student s's preference list over hospitals.
func (in *Instance) Student(s ID) PreferenceList { return in.students[s] }

// HospitalLists returns all hospital preference lists, indexed by hospital ID.
func (in *Instance) HospitalLists() []PreferenceList { return in.hospitals }

// StudentLists returns all student preference lists, indexed by student ID.
func (in *Instance) StudentLists() []PreferenceList { return in.students }

// cloneLists deep-copies lists so the Instance owns its data.
func cloneLists(lists []PreferenceList) []PreferenceList {
	out := make([]PreferenceList, len(lists))
	for i, l := range lists {
		out[i] = append(PreferenceList(nil), l...)
	}
	return out
}
