// Package core - validation helpers for preference data.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     located by *PreferenceError.
//   - O(n) per list, O(n²) per side.
package core

// validateSide checks that every list on one side is a permutation of [0, n).
//
// Complexity: O(n²) time, O(n) extra space (one reusable seen-set).
func validateSide(side Side, lists []PreferenceList, n int) error {
	seen := make([]bool, n)
	for owner, list := range lists {
		if err := validateList(list, n, seen); err != nil {
			err.Side = side
			err.Owner = ID(owner)
			return err
		}
	}

	return nil
}

// validateList reports whether list is a permutation of [0, n).
//
// seen is optional scratch space of length n; pass nil to let validateList
// allocate. It is cleared before returning.
//
// The returned *PreferenceError carries Position and Err; Side and Owner are
// left for the caller to fill in.
//
// Complexity: O(n).
func validateList(list PreferenceList, n int, seen []bool) *PreferenceError {
	if len(list) != n {
		return &PreferenceError{Position: -1, Err: ErrListLength}
	}
	if len(seen) < n {
		seen = make([]bool, n)
	}
	defer func() {
		// reset only the marks we may have set
		for _, id := range list {
			if id >= 0 && int(id) < n {
				seen[id] = false
			}
		}
	}()

	for i, id := range list {
		if id < 0 || int(id) >= n {
			return &PreferenceError{Position: i, Err: ErrIDOutOfRange}
		}
		if seen[id] {
			return &PreferenceError{Position: i, Err: ErrDuplicateID}
		}
		seen[id] = true
	}

	return nil
}
