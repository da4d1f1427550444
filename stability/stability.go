package stability

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stablematch/core"
)

// scanner holds the read-only inputs of one blocking-pair scan.
type scanner struct {
	n            int
	hospitalPref core.RankTable
	studentPref  core.RankTable
	partnerOfH   []core.ID
	partnerOfS   []core.ID
}

// FindBlockingPairs returns every blocking pair of c under inst's preferences,
// ordered by hospital then student.
//
// A pair (h, s) blocks when h and s are not matched together, both have a
// partner, h strictly prefers s to its partner and s strictly prefers h to
// its partner. Participants without an in-range partner are skipped; run
// CheckValidity first to rule those out.
//
// Both rank tables are built here from the raw lists, independently of any
// engine state.
//
// Complexity: O(n²) time and memory.
func FindBlockingPairs(inst *core.Instance, c Candidate, opts ...Option) ([]core.Pair, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	sc := newScanner(inst, c)
	if o.Workers <= 1 || sc.n < 2 {
		var out []core.Pair
		for h := 0; h < sc.n; h++ {
			out = sc.row(core.ID(h), out)
		}
		return out, nil
	}

	// One task per hospital row; each task writes only its own slot.
	rows := make([][]core.Pair, sc.n)
	var g errgroup.Group
	g.SetLimit(o.Workers)
	for h := 0; h < sc.n; h++ {
		g.Go(func() error {
			rows[h] = sc.row(core.ID(h), nil)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	var out []core.Pair
	for _, r := range rows {
		out = append(out, r...)
	}

	return out, nil
}

// newScanner resolves c into dense partner slices (core.None for missing or
// out-of-range partners) and builds both rank tables.
func newScanner(inst *core.Instance, c Candidate) *scanner {
	n := inst.N()
	sc := &scanner{
		n:            n,
		hospitalPref: core.NewRankTable(inst.HospitalLists()),
		studentPref:  core.NewRankTable(inst.StudentLists()),
		partnerOfH:   make([]core.ID, n),
		partnerOfS:   make([]core.ID, n),
	}
	for i := 0; i < n; i++ {
		sc.partnerOfH[i] = partner(c.HospitalToStudent, core.ID(i), n)
		sc.partnerOfS[i] = partner(c.StudentToHospital, core.ID(i), n)
	}

	return sc
}

// partner looks up id in m, mapping absent and out-of-range values to core.None.
func partner(m map[core.ID]core.ID, id core.ID, n int) core.ID {
	p, ok := m[id]
	if !ok || p < 0 || int(p) >= n {
		return core.None
	}
	return p
}

// row appends the blocking pairs of hospital h to out, by increasing student.
func (sc *scanner) row(h core.ID, out []core.Pair) []core.Pair {
	cur := sc.partnerOfH[h]
	if !cur.Valid() {
		return out
	}
	for s := core.ID(0); int(s) < sc.n; s++ {
		if s == cur {
			continue
		}
		rival := sc.partnerOfS[s]
		if !rival.Valid() {
			continue
		}
		if sc.hospitalPref.Prefers(h, s, cur) && sc.studentPref.Prefers(s, h, rival) {
			out = append(out, core.Pair{Hospital: h, Student: s})
		}
	}

	return out
}
