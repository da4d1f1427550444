// Package core provides the shared data model for two-sided one-to-one
// stable matching: participant identifiers, preference lists, validated
// problem instances, rank lookups and the Matching bijection.
//
// The model M = (H, S, ≻) consists of:
//
//   - Two pools of equal size n: hospitals H = {0..n-1} and students S = {0..n-1}
//   - For every hospital a strict, complete PreferenceList over S
//   - For every student a strict, complete PreferenceList over H
//
// Identifiers:
//
//	– ID is a zero-based participant index. Hospital 0 and student 0 are
//	  different participants; the pool is implied by context.
//	– None (-1) is the explicit "unmatched" sentinel. It is never a valid index
//	  and always ranks below every real opponent in RankIndex.Prefers.
//	– ID.Ordinal() gives the 1-based number used by preference files and
//	  human-facing messages.
//
// Instances:
//
//	NewInstance(hospitals, students) validates shape and permutation
//	properties once, copies the lists, and returns an immutable *Instance.
//	Everything downstream (engine, verifier) assumes a validated instance.
//
// Rank lookups:
//
//	NewRankIndex(list)  – O(n) inverse of one list; rank[opponent] = position.
//	NewRankTable(lists) – one RankIndex per owner; O(n²) memory per side.
//
// Matching:
//
//	Matching stores hospital→student and student→hospital as two slices kept
//	as mutual inverses by Assign/Unassign. A perfect Matching covers every ID
//	on both sides exactly once (IsPerfect).
//
// Errors:
//
//	ErrNegativeSize  - n < 0.
//	ErrSizeMismatch  - the two sides declare a different number of lists.
//	ErrListLength    - a preference list does not have exactly n entries.
//	ErrIDOutOfRange  - an entry lies outside [0, n).
//	ErrDuplicateID   - an entry repeats, so the list is not a permutation.
//
// List-level failures are wrapped in *PreferenceError, which names the side,
// the owner and the offending position; use errors.Is for the sentinel and
// errors.As for the location.
//
// Random instances:
//
//	RandomInstance(n, seed) builds a uniformly shuffled instance from a
//	deterministic stream (seed 0 maps to a fixed default seed).
package core
