package stability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/core"
	"github.com/katalvlaran/stablematch/stability"
)

// mustInstance builds an instance from 1-based rows, hospitals first.
func mustInstance(t testing.TB, hospitals, students [][]int) *core.Instance {
	t.Helper()
	inst, err := core.NewInstance(toLists(hospitals), toLists(students))
	require.NoError(t, err)
	return inst
}

// toLists converts 1-based rows to zero-based PreferenceLists.
func toLists(rows [][]int) []core.PreferenceList {
	out := make([]core.PreferenceList, len(rows))
	for i, row := range rows {
		l := make(core.PreferenceList, len(row))
		for j, v := range row {
			l[j] = core.ID(v - 1)
		}
		out[i] = l
	}
	return out
}

// pairs builds zero-based pairs from 1-based (hospital, student) tuples.
func pairs(tuples ...[2]int) []core.Pair {
	out := make([]core.Pair, len(tuples))
	for i, tp := range tuples {
		out[i] = core.Pair{Hospital: core.ID(tp[0] - 1), Student: core.ID(tp[1] - 1)}
	}
	return out
}

// ofKind filters violations of one kind.
func ofKind(vs []stability.Violation, kind stability.ViolationKind) []stability.Violation {
	var out []stability.Violation
	for _, v := range vs {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}
