package core

// RankIndex is the inverse of one PreferenceList: rank[opponent] is the
// zero-based position of opponent in the owner's list (lower = preferred).
type RankIndex []int

// NewRankIndex inverts list in O(n). list must be a permutation of
// [0, len(list)), which NewInstance guarantees.
func NewRankIndex(list PreferenceList) RankIndex {
	r := make(RankIndex, len(list))
	for pos, id := range list {
		r[id] = pos
	}

	return r
}

// Rank returns the position of opponent in the owner's list.
// None ranks after every real opponent.
func (r RankIndex) Rank(opponent ID) int {
	if !opponent.Valid() {
		return len(r)
	}
	return r[opponent]
}

// Prefers reports whether the owner strictly prefers a over b.
// Any real opponent is preferred over None; None is never preferred.
func (r RankIndex) Prefers(a, b ID) bool {
	return r.Rank(a) < r.Rank(b)
}

// RankTable holds one RankIndex per owner of a single side.
type RankTable []RankIndex

// NewRankTable builds a RankIndex for every list.
//
// Complexity: O(n²) time and memory.
func NewRankTable(lists []PreferenceList) RankTable {
	t := make(RankTable, len(lists))
	for owner, list := range lists {
		t[owner] = NewRankIndex(list)
	}

	return t
}

// Prefers reports whether owner strictly prefers a over b.
func (t RankTable) Prefers(owner, a, b ID) bool {
	return t[owner].Prefers(a, b)
}
