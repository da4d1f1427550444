// SPDX-License-Identifier: MIT
package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for instance construction.
var (
	// ErrNegativeSize indicates a negative pool size.
	ErrNegativeSize = errors.New("core: pool size must be non-negative")

	// ErrSizeMismatch indicates the two sides do not carry the same number of lists.
	ErrSizeMismatch = errors.New("core: hospital and student pools differ in size")

	// ErrListLength indicates a preference list whose length is not n.
	ErrListLength = errors.New("core: preference list must have exactly n entries")

	// ErrIDOutOfRange indicates a participant ID outside [0, n).
	ErrIDOutOfRange = errors.New("core: participant ID out of range")

	// ErrDuplicateID indicates a repeated entry in a preference list.
	ErrDuplicateID = errors.New("core: duplicate participant ID in preference list")
)

// ID identifies a participant within its pool. Valid IDs lie in [0, n).
type ID int

// None marks the absence of a partner.
const None ID = -1

// Valid reports whether id refers to a participant (it is not None or negative).
func (id ID) Valid() bool { return id >= 0 }

// Ordinal returns the 1-based participant number used in files and messages.
func (id ID) Ordinal() int { return int(id) + 1 }

// String renders the 1-based ordinal, or "None" for the sentinel.
func (id ID) String() string {
	if !id.Valid() {
		return "None"
	}
	return strconv.Itoa(id.Ordinal())
}

// Side names one of the two pools.
type Side int

const (
	// Hospitals is the proposing side.
	Hospitals Side = iota

	// Students is the receiving side.
	Students
)

// String returns the singular, capitalised participant noun of the side.
func (s Side) String() string {
	if s == Students {
		return "Student"
	}
	return "Hospital"
}

// PreferenceList orders the opposite pool, most preferred first.
type PreferenceList []ID

// Pair is one hospital–student assignment.
type Pair struct {
	Hospital ID
	Student  ID
}

// String renders the pair with 1-based ordinals, as written in matching files.
func (p Pair) String() string {
	return fmt.Sprintf("%s %s", p.Hospital, p.Student)
}

// PreferenceError locates a malformed preference list.
//
// Side and Owner identify whose list failed; Position is the zero-based index
// of the offending entry, or -1 when the whole list (or the side) is at fault.
type PreferenceError struct {
	Side     Side
	Owner    ID
	Position int
	Err      error
}

// Error implements error.
func (e *PreferenceError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%s %s preferences: %v", e.Side, e.Owner, e.Err)
	}
	return fmt.Sprintf("%s %s preferences, entry %d: %v", e.Side, e.Owner, e.Position+1, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *PreferenceError) Unwrap() error { return e.Err }
