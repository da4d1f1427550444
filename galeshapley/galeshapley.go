package galeshapley

import (
	"fmt"

	"github.com/ef-ds/deque"

	"github.com/katalvlaran/stablematch/core"
)

// proposer encapsulates the mutable state of one run. It is created fresh by
// Match and discarded afterwards; nothing is shared between runs.
type proposer struct {
	inst *core.Instance
	opts Options

	// rank is the student-side table: rank[s].Prefers(h1, h2).
	rank core.RankTable

	// next[h] indexes the next student on h's list; it never decreases.
	next []int

	// holder[s] is s's tentative partner, or core.None.
	holder []core.ID

	// queue holds unmatched hospitals as core.ID values.
	queue deque.Deque

	proposals int
	exhausted int
	res       *Result
}

// Match runs hospital-proposing Gale–Shapley on inst.
//
// Steps:
//  1. Build the student-side RankTable (O(n²)).
//  2. Enqueue hospitals 0..n-1; all next-pointers 0, all students free.
//  3. Until the queue is empty: take a hospital, propose to its next student,
//     resolve the proposal, emit the Event.
//  4. Read the matching off the students' holders.
//
// Returns ErrNilInstance for nil input and ErrIncompleteMatching if any
// hospital ran out of students (never for a valid instance).
func Match(inst *core.Instance, opts ...Option) (*Result, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := inst.N()
	p := &proposer{
		inst:   inst,
		opts:   o,
		rank:   core.NewRankTable(inst.StudentLists()),
		next:   make([]int, n),
		holder: make([]core.ID, n),
		res:    &Result{},
	}
	if o.CollectEvents {
		p.res.Events = make([]Event, 0, n)
	}
	for s := range p.holder {
		p.holder[s] = core.None
	}
	for h := 0; h < n; h++ {
		p.queue.PushBack(core.ID(h))
	}

	p.loop()

	m, err := p.matching()
	if err != nil {
		return nil, err
	}
	p.res.Matching = m
	p.res.Proposals = p.proposals

	return p.res, nil
}

// loop drains the queue, one proposal per iteration.
func (p *proposer) loop() {
	for p.queue.Len() > 0 {
		h := p.take()
		list := p.inst.Hospital(h)
		if p.next[h] >= len(list) {
			// h proposed to everyone; it stays unmatched for this run.
			p.exhausted++
			continue
		}
		s := list[p.next[h]]
		p.next[h]++
		p.proposals++
		p.propose(h, s)
	}
}

// take removes the next hospital according to the queue discipline.
func (p *proposer) take() core.ID {
	var v interface{}
	if p.opts.Discipline == LIFO {
		v, _ = p.queue.PopBack()
	} else {
		v, _ = p.queue.PopFront()
	}

	return v.(core.ID)
}

// propose resolves h's proposal to s and emits the resulting Event.
func (p *proposer) propose(h, s core.ID) {
	rejected := core.None
	switch cur := p.holder[s]; {
	case !cur.Valid():
		p.holder[s] = h
	case p.rank.Prefers(s, h, cur):
		p.holder[s] = h
		rejected = cur
		p.queue.PushBack(cur)
	default:
		rejected = h
		p.queue.PushBack(h)
	}

	e := Event{
		Step:     p.proposals,
		Hospital: h,
		Student:  s,
		Holder:   p.holder[s],
		Rejected: rejected,
	}
	if p.opts.CollectEvents {
		p.res.Events = append(p.res.Events, e)
	}
	p.opts.OnPropose(e)
}

// matching converts the students' holders into a hospital-keyed Matching.
func (p *proposer) matching() (*core.Matching, error) {
	m := core.NewMatching(p.inst.N())
	for s, h := range p.holder {
		if !h.Valid() {
			continue
		}
		if err := m.Assign(h, core.ID(s)); err != nil {
			return nil, err
		}
	}
	if p.exhausted > 0 || !m.IsPerfect() {
		return nil, fmt.Errorf("%w: %d hospital(s) exhausted their lists", ErrIncompleteMatching, p.exhausted)
	}

	return m, nil
}
