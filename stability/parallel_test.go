package stability_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/stablematch/core"
	"github.com/katalvlaran/stablematch/stability"
)

// TestFindBlockingPairs_ParallelMatchesSequential checks that splitting the
// scan across workers returns exactly the sequential result, in order.
func TestFindBlockingPairs_ParallelMatchesSequential(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 25).Draw(t, "n")
		seed := rapid.Int64().Draw(t, "seed")
		workers := rapid.IntRange(2, 8).Draw(t, "workers")

		inst, err := core.RandomInstance(n, seed)
		if err != nil {
			t.Fatalf("RandomInstance: %v", err)
		}
		ids := make([]core.ID, n)
		for i := range ids {
			ids[i] = core.ID(i)
		}
		perm := rapid.Permutation(ids).Draw(t, "assignment")
		ps := make([]core.Pair, n)
		for h, s := range perm {
			ps[h] = core.Pair{Hospital: core.ID(h), Student: s}
		}
		c := stability.CandidateFromPairs(ps)

		seq, err := stability.FindBlockingPairs(inst, c)
		if err != nil {
			t.Fatalf("sequential: %v", err)
		}
		par, err := stability.FindBlockingPairs(inst, c, stability.WithWorkers(workers))
		if err != nil {
			t.Fatalf("parallel: %v", err)
		}
		if len(seq) != len(par) {
			t.Fatalf("len mismatch: sequential %d, parallel %d", len(seq), len(par))
		}
		for i := range seq {
			if seq[i] != par[i] {
				t.Fatalf("pair %d: sequential %v, parallel %v", i, seq[i], par[i])
			}
		}
	})
}
