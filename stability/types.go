// Package stability defines candidates, violations, reports and options for
// the validity and stability checks.
package stability

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/stablematch/core"
)

// Sentinel errors.
var (
	// ErrNilInstance is returned when a nil *core.Instance is passed.
	ErrNilInstance = errors.New("stability: instance is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stability: invalid option supplied")
)

// Candidate is a proposed matching in its raw, unchecked form: two maps that
// may be partial, out of range, or inconsistent with each other.
type Candidate struct {
	HospitalToStudent map[core.ID]core.ID
	StudentToHospital map[core.ID]core.ID
}

// NewCandidate returns an empty Candidate.
func NewCandidate() Candidate {
	return Candidate{
		HospitalToStudent: make(map[core.ID]core.ID),
		StudentToHospital: make(map[core.ID]core.ID),
	}
}

// CandidateFromPairs builds both maps from pairs. A later pair overwrites an
// earlier one with the same key in either map, so repeated participants show
// up as duplicates or inconsistencies rather than being dropped silently.
func CandidateFromPairs(pairs []core.Pair) Candidate {
	c := NewCandidate()
	for _, p := range pairs {
		c.HospitalToStudent[p.Hospital] = p.Student
		c.StudentToHospital[p.Student] = p.Hospital
	}

	return c
}

// CandidateFromMatching converts the matched pairs of m into a Candidate.
func CandidateFromMatching(m *core.Matching) Candidate {
	return CandidateFromPairs(m.Pairs())
}

// sortedKeys returns the keys of m in increasing order.
func sortedKeys(m map[core.ID]core.ID) []core.ID {
	keys := make([]core.ID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// ViolationKind classifies a validity failure.
type ViolationKind int

const (
	// HospitalCount: HospitalToStudent does not have exactly n entries.
	HospitalCount ViolationKind = iota
	// StudentCount: StudentToHospital does not have exactly n entries.
	StudentCount
	// UnmatchedHospital: a hospital in [0, n) is not a key of HospitalToStudent.
	UnmatchedHospital
	// UnmatchedStudent: a student in [0, n) is not a key of StudentToHospital.
	UnmatchedStudent
	// DuplicateStudent: a student appears as the value of several hospitals.
	DuplicateStudent
	// DuplicateHospital: a hospital appears as the value of several students.
	DuplicateHospital
	// HospitalOutOfRange: a hospital ID outside [0, n) appears in either map.
	HospitalOutOfRange
	// StudentOutOfRange: a student ID outside [0, n) appears in either map.
	StudentOutOfRange
	// InconsistentHospital: h→s but s→h' with h' ≠ h.
	InconsistentHospital
	// InconsistentStudent: s→h but h→s' with s' ≠ s.
	InconsistentStudent
)

var kindNames = [...]string{
	HospitalCount:        "hospital_count",
	StudentCount:         "student_count",
	UnmatchedHospital:    "unmatched_hospital",
	UnmatchedStudent:     "unmatched_student",
	DuplicateStudent:     "duplicate_student",
	DuplicateHospital:    "duplicate_hospital",
	HospitalOutOfRange:   "hospital_out_of_range",
	StudentOutOfRange:    "student_out_of_range",
	InconsistentHospital: "inconsistent_hospital",
	InconsistentStudent:  "inconsistent_student",
}

// String returns a stable snake_case name, used in machine-readable reports.
func (k ViolationKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("violation_kind(%d)", int(k))
	}
	return kindNames[k]
}

// Violation is one validity failure. Fields not relevant to Kind are core.None
// (IDs) or zero (counts).
type Violation struct {
	Kind     ViolationKind
	Hospital core.ID
	Student  core.ID

	// Other is the conflicting partner for the Inconsistent kinds.
	Other core.ID

	// Want and Got are the expected and actual sizes for the Count kinds.
	Want, Got int
}

// Error implements error. IDs are printed as 1-based ordinals, including
// out-of-range ones, so messages match the numbering of matching files.
func (v Violation) Error() string {
	switch v.Kind {
	case HospitalCount:
		return fmt.Sprintf("Expected %d hospitals to be matched instead found %d", v.Want, v.Got)
	case StudentCount:
		return fmt.Sprintf("Expected %d students to be matched instead found %d", v.Want, v.Got)
	case UnmatchedHospital:
		return fmt.Sprintf("Hospital %d is not matched to any student", v.Hospital.Ordinal())
	case UnmatchedStudent:
		return fmt.Sprintf("Student %d is not matched to any hospital", v.Student.Ordinal())
	case DuplicateStudent:
		return fmt.Sprintf("Student %d is matched to multiple hospitals", v.Student.Ordinal())
	case DuplicateHospital:
		return fmt.Sprintf("Hospital %d is matched to multiple students", v.Hospital.Ordinal())
	case HospitalOutOfRange:
		return fmt.Sprintf("Hospital ID %d is out of range", v.Hospital.Ordinal())
	case StudentOutOfRange:
		return fmt.Sprintf("Student ID %d is out of range", v.Student.Ordinal())
	case InconsistentHospital:
		return fmt.Sprintf("Inconsistent matching Hospital %d matched to Student %d, but Student %d matched to Hospital %d",
			v.Hospital.Ordinal(), v.Student.Ordinal(), v.Student.Ordinal(), v.Other.Ordinal())
	case InconsistentStudent:
		return fmt.Sprintf("Inconsistent matching Student %d matched to Hospital %d, but Hospital %d matched to Student %d",
			v.Student.Ordinal(), v.Hospital.Ordinal(), v.Hospital.Ordinal(), v.Other.Ordinal())
	default:
		return fmt.Sprintf("unknown violation kind %d", int(v.Kind))
	}
}

// BlockingPairError reports a blocking pair as an error.
type BlockingPairError struct {
	core.Pair
}

// Error implements error.
func (e BlockingPairError) Error() string {
	return fmt.Sprintf("Hospital %s and Student %s are a blocking pair", e.Hospital, e.Student)
}

// Options configures Verify and FindBlockingPairs.
type Options struct {
	// Workers is the number of goroutines for the blocking-pair scan.
	// 1 (default) scans sequentially.
	Workers int

	err error
}

// Option configures the verifier via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a sequential scan.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers splits the blocking-pair scan across k goroutines.
//
//	k ≥ 1: use k workers
//	k < 1: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// buildOptions applies opts over the defaults and surfaces recorded errors.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
