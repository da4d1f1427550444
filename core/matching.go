package core

import "fmt"

// Matching is a one-to-one assignment between n hospitals and n students.
//
// The two directions are stored as slices and kept as mutual inverses: for
// every h with StudentOf(h) == s != None, HospitalOf(s) == h, and vice versa.
// A Matching is perfect when no entry is None.
type Matching struct {
	hospitalToStudent []ID
	studentToHospital []ID
}

// NewMatching returns an empty Matching over pools of size n.
func NewMatching(n int) *Matching {
	m := &Matching{
		hospitalToStudent: make([]ID, n),
		studentToHospital: make([]ID, n),
	}
	for i := 0; i < n; i++ {
		m.hospitalToStudent[i] = None
		m.studentToHospital[i] = None
	}

	return m
}

// Len returns the pool size n.
func (m *Matching) Len() int { return len(m.hospitalToStudent) }

// StudentOf returns h's partner, or None.
func (m *Matching) StudentOf(h ID) ID { return m.hospitalToStudent[h] }

// HospitalOf returns s's partner, or None.
func (m *Matching) HospitalOf(s ID) ID { return m.studentToHospital[s] }

// Assign matches h with s, first releasing any previous partners of either,
// so the inverse invariant holds after every call.
func (m *Matching) Assign(h, s ID) error {
	n := m.Len()
	if h < 0 || int(h) >= n || s < 0 || int(s) >= n {
		return fmt.Errorf("%w: pair (%s, %s) with n=%d", ErrIDOutOfRange, h, s, n)
	}
	m.Unassign(h)
	if prev := m.studentToHospital[s]; prev.Valid() {
		m.hospitalToStudent[prev] = None
	}
	m.hospitalToStudent[h] = s
	m.studentToHospital[s] = h

	return nil
}

// Unassign releases h and its partner, if any.
func (m *Matching) Unassign(h ID) {
	if s := m.hospitalToStudent[h]; s.Valid() {
		m.studentToHospital[s] = None
	}
	m.hospitalToStudent[h] = None
}

// IsPerfect reports whether every hospital (and hence every student) is matched.
func (m *Matching) IsPerfect() bool {
	for _, s := range m.hospitalToStudent {
		if !s.Valid() {
			return false
		}
	}

	return true
}

// Pairs lists matched pairs ordered by hospital ID.
func (m *Matching) Pairs() []Pair {
	pairs := make([]Pair, 0, m.Len())
	for h, s := range m.hospitalToStudent {
		if s.Valid() {
			pairs = append(pairs, Pair{Hospital: ID(h), Student: s})
		}
	}

	return pairs
}

// Equal reports whether m and o assign every hospital the same student.
func (m *Matching) Equal(o *Matching) bool {
	if m.Len() != o.Len() {
		return false
	}
	for h, s := range m.hospitalToStudent {
		if o.hospitalToStudent[h] != s {
			return false
		}
	}

	return true
}
