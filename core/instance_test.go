// SPDX-License-Identifier: MIT
// Package core_test verifies instance validation, rank lookups and the
// Matching bijection.
package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/core"
)

// lists converts 1-based rows (as written in preference files) to PreferenceLists.
func lists(rows ...[]int) []core.PreferenceList {
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

func TestNewInstance_Valid(t *testing.T) {
	inst, err := core.NewInstance(
		lists([]int{2, 1, 3}, []int{1, 3, 2}, []int{3, 1, 2}),
		lists([]int{2, 1, 3}, []int{1, 3, 2}, []int{2, 3, 1}),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, inst.N())
	assert.Equal(t, core.PreferenceList{1, 0, 2}, inst.Hospital(0))
	assert.Equal(t, core.PreferenceList{1, 2, 0}, inst.Student(2))
	assert.Len(t, inst.HospitalLists(), 3)
	assert.Len(t, inst.StudentLists(), 3)
}

func TestNewInstance_Empty(t *testing.T) {
	inst, err := core.NewInstance(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, inst.N())
}

// TestNewInstance_CopiesInput ensures later caller mutation cannot reach the instance.
func TestNewInstance_CopiesInput(t *testing.T) {
	h := lists([]int{1, 2}, []int{2, 1})
	s := lists([]int{1, 2}, []int{1, 2})
	inst, err := core.NewInstance(h, s)
	require.NoError(t, err)

	h[0][0] = 1
	assert.Equal(t, core.ID(0), inst.Hospital(0)[0])
}

func TestNewInstance_Errors(t *testing.T) {
	cases := []struct {
		name     string
		h, s     []core.PreferenceList
		want     error
		side     core.Side
		owner    core.ID
		position int
	}{
		{
			name: "size mismatch",
			h:    lists([]int{1}),
			s:    lists(),
			want: core.ErrSizeMismatch,
		},
		{
			name:     "short list",
			h:        lists([]int{1, 2}, []int{2}),
			s:        lists([]int{1, 2}, []int{2, 1}),
			want:     core.ErrListLength,
			side:     core.Hospitals,
			owner:    1,
			position: -1,
		},
		{
			name:     "out of range",
			h:        lists([]int{1, 2}, []int{2, 1}),
			s:        lists([]int{1, 2}, []int{3, 1}),
			want:     core.ErrIDOutOfRange,
			side:     core.Students,
			owner:    1,
			position: 0,
		},
		{
			name:     "duplicate",
			h:        lists([]int{1, 1}, []int{2, 1}),
			s:        lists([]int{1, 2}, []int{2, 1}),
			want:     core.ErrDuplicateID,
			side:     core.Hospitals,
			owner:    0,
			position: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewInstance(tc.h, tc.s)
			require.ErrorIs(t, err, tc.want)
			if tc.want == core.ErrSizeMismatch {
				return
			}
			var pe *core.PreferenceError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.side, pe.Side)
			assert.Equal(t, tc.owner, pe.Owner)
			assert.Equal(t, tc.position, pe.Position)
		})
	}
}

func TestPreferenceError_Message(t *testing.T) {
	err := &core.PreferenceError{Side: core.Students, Owner: 2, Position: 0, Err: core.ErrDuplicateID}
	assert.Equal(t, "Student 3 preferences, entry 1: core: duplicate participant ID in preference list", err.Error())

	err = &core.PreferenceError{Side: core.Hospitals, Owner: 0, Position: -1, Err: core.ErrListLength}
	assert.Contains(t, err.Error(), "Hospital 1 preferences:")
}

func TestID_Sentinel(t *testing.T) {
	assert.False(t, core.None.Valid())
	assert.True(t, core.ID(0).Valid())
	assert.Equal(t, "None", core.None.String())
	assert.Equal(t, "4", core.ID(3).String())
	assert.Equal(t, 4, core.ID(3).Ordinal())
	assert.Equal(t, "1 2", core.Pair{Hospital: 0, Student: 1}.String())
}
