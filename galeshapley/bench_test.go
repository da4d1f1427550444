package galeshapley_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/stablematch/core"
	"github.com/katalvlaran/stablematch/galeshapley"
	"github.com/katalvlaran/stablematch/stability"
)

// BenchmarkMatch measures the engine on random instances of growing size.
func BenchmarkMatch(b *testing.B) {
	for _, n := range []int{10, 100, 500} {
		inst, err := core.RandomInstance(n, 42)
		if err != nil {
			b.Fatalf("RandomInstance: %v", err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer() // ignore setup time
			for i := 0; i < b.N; i++ {
				if _, err := galeshapley.Match(inst); err != nil {
					b.Fatalf("Match failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkVerify compares the sequential and parallel blocking-pair scans
// on the engine's own output.
func BenchmarkVerify(b *testing.B) {
	inst, err := core.RandomInstance(500, 42)
	if err != nil {
		b.Fatalf("RandomInstance: %v", err)
	}
	res, err := galeshapley.Match(inst)
	if err != nil {
		b.Fatalf("Match: %v", err)
	}
	cand := stability.CandidateFromMatching(res.Matching)

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := stability.Verify(inst, cand, stability.WithWorkers(workers)); err != nil {
					b.Fatalf("Verify failed: %v", err)
				}
			}
		})
	}
}
