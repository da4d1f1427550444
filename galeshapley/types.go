// Package galeshapley defines options, events and results for the
// hospital-proposing Gale–Shapley engine.
package galeshapley

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stablematch/core"
)

// Sentinel errors returned by Match.
var (
	// ErrNilInstance is returned when a nil *core.Instance is passed.
	ErrNilInstance = errors.New("galeshapley: instance is nil")

	// ErrIncompleteMatching is returned when the run ends with an unmatched
	// hospital, which only happens on malformed preference data.
	ErrIncompleteMatching = errors.New("galeshapley: run ended with unmatched hospitals")
)

// QueueDiscipline selects how unmatched hospitals are taken from the queue.
type QueueDiscipline int

const (
	// FIFO takes the longest-waiting hospital first (default).
	FIFO QueueDiscipline = iota

	// LIFO takes the most recently rejected hospital first.
	LIFO
)

// String returns the discipline name.
func (d QueueDiscipline) String() string {
	if d == LIFO {
		return "lifo"
	}
	return "fifo"
}

// Event records one proposal.
//
//   - Step:     1-based index of the proposal within the run.
//   - Hospital: the proposing hospital.
//   - Student:  the student proposed to.
//   - Holder:   the student's tentative partner after the proposal.
//   - Rejected: the hospital sent back to the queue (the proposer or the
//     displaced holder), or core.None when the student was free.
type Event struct {
	Step     int
	Hospital core.ID
	Student  core.ID
	Holder   core.ID
	Rejected core.ID
}

// Accepted reports whether the student now holds the proposer.
func (e Event) Accepted() bool { return e.Holder == e.Hospital }

// String renders the event as a human-readable trace line with 1-based IDs.
func (e Event) String() string {
	return fmt.Sprintf("Hospital %s proposes to Student %s. Student's current match: %s",
		e.Hospital, e.Student, e.Holder)
}

// Result is the outcome of a Match run.
type Result struct {
	// Matching is the hospital-optimal stable matching.
	Matching *core.Matching

	// Proposals counts every proposal made.
	Proposals int

	// Events is the chronological proposal log; nil unless WithEventLog.
	Events []Event
}

// Options configures Match.
type Options struct {
	// OnPropose is called after every proposal, in processing order.
	OnPropose func(Event)

	// CollectEvents stores every Event in Result.Events.
	CollectEvents bool

	// Discipline chooses FIFO (default) or LIFO processing of the queue.
	Discipline QueueDiscipline
}

// Option represents a functional option for configuring Match.
type Option func(*Options)

// DefaultOptions returns Options with a no-op hook, no collected log and FIFO.
func DefaultOptions() Options {
	return Options{
		OnPropose:     func(Event) {},
		CollectEvents: false,
		Discipline:    FIFO,
	}
}

// WithOnPropose registers fn to receive every Event as it happens.
// Several hooks may be registered; they run in registration order.
func WithOnPropose(fn func(Event)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnPropose
		o.OnPropose = func(e Event) {
			prev(e)
			fn(e)
		}
	}
}

// WithEventLog enables the collected event log in Result.Events.
func WithEventLog() Option {
	return func(o *Options) {
		o.CollectEvents = true
	}
}

// WithQueueDiscipline sets how the unmatched-hospital queue is drained.
func WithQueueDiscipline(d QueueDiscipline) Option {
	return func(o *Options) {
		o.Discipline = d
	}
}
