package stability

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/stablematch/core"
)

// Report is the outcome of Verify.
//
//   - Valid:         c is a perfect, consistent bijection over [0, N).
//   - Stable:        Valid and no blocking pair exists. Never true when !Valid.
//   - Violations:    every validity failure (empty when Valid).
//   - BlockingPairs: every blocking pair, by hospital then student
//     (only computed when Valid).
type Report struct {
	N             int
	Valid         bool
	Stable        bool
	Violations    []Violation
	BlockingPairs []core.Pair
}

// Verify checks c against inst: validity first, then, only if valid,
// stability. For inst.N() == 0 the candidate is valid and stable without
// further checks.
//
// Validity and stability failures are reported in the Report, not as errors.
// The error result is reserved for ErrNilInstance and ErrOptionViolation.
func Verify(inst *core.Instance, c Candidate, opts ...Option) (*Report, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}

	rep := &Report{N: inst.N()}
	if rep.N == 0 {
		rep.Valid, rep.Stable = true, true
		return rep, nil
	}

	rep.Violations = CheckValidity(rep.N, c)
	if len(rep.Violations) > 0 {
		return rep, nil
	}
	rep.Valid = true

	pairs, err := FindBlockingPairs(inst, c, opts...)
	if err != nil {
		return nil, err
	}
	rep.BlockingPairs = pairs
	rep.Stable = len(pairs) == 0

	return rep, nil
}

// VerifyMatching is Verify for a core.Matching, e.g. an engine result.
func VerifyMatching(inst *core.Instance, m *core.Matching, opts ...Option) (*Report, error) {
	return Verify(inst, CandidateFromMatching(m), opts...)
}

// Verdict summarises the report in one phrase.
func (r *Report) Verdict() string {
	switch {
	case r.Valid && r.Stable:
		return "VALID and STABLE"
	case r.Valid:
		return "VALID but UNSTABLE"
	default:
		return "INVALID"
	}
}

// Messages renders the diagnostic lines of the report, in order.
func (r *Report) Messages() []string {
	if r.N == 0 {
		return []string{"Valid and stable matching for n = 0"}
	}
	if !r.Valid {
		msgs := make([]string, 0, len(r.Violations))
		for _, v := range r.Violations {
			msgs = append(msgs, "Validity Check: INVALID "+v.Error())
		}
		return msgs
	}

	msgs := []string{"Validity Check: VALID"}
	if r.Stable {
		return append(msgs, "Stability Check: STABLE")
	}
	msgs = append(msgs, "Stability Check: UNSTABLE", "Found blocking pairs:")
	for _, p := range r.BlockingPairs {
		msgs = append(msgs, fmt.Sprintf("  %s", BlockingPairError{Pair: p}.Error()))
	}

	return msgs
}

// Err returns nil for a valid and stable report, otherwise a
// *multierror.Error holding every Violation and BlockingPairError.
func (r *Report) Err() error {
	var result *multierror.Error
	for _, v := range r.Violations {
		result = multierror.Append(result, v)
	}
	for _, p := range r.BlockingPairs {
		result = multierror.Append(result, BlockingPairError{Pair: p})
	}

	return result.ErrorOrNil()
}
