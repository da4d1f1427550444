// Package galeshapley computes the hospital-optimal stable matching of a
// core.Instance with the hospital-proposing Gale–Shapley algorithm.
//
// Overview:
//
//   - Every hospital starts unmatched and queued. A dequeued hospital proposes
//     to the best student it has not yet proposed to.
//   - A free student tentatively accepts. An engaged student keeps whichever of
//     the two hospitals it ranks higher; the loser goes back to the queue.
//   - The run ends when the queue is empty. With n hospitals, n students and
//     complete lists this happens after at most n² proposals, and the result
//     is a perfect matching.
//
// Guarantees:
//
//   - Stability: no hospital and student prefer each other over their partners.
//   - Hospital-optimality: every hospital gets the best partner it has in any
//     stable matching; symmetrically, every student gets its worst.
//   - The queue discipline (FIFO or LIFO) changes the proposal count and the
//     event order only, never the resulting matching.
//
// Observing a run:
//
//	Each proposal yields an Event{Step, Hospital, Student, Holder, Rejected}.
//	Holder is the student's tentative partner right after the proposal was
//	processed. Events reach WithOnPropose callbacks and the optional
//	collected log (WithEventLog) in exact processing order.
//
// API reference:
//
//	func Match(inst *core.Instance, opts ...Option) (*Result, error)
//
//	  - inst: a validated instance (see core.NewInstance).
//	  - opts: WithOnPropose(fn), WithEventLog(), WithQueueDiscipline(d).
//	  - Result.Matching:  perfect, hospital-optimal matching.
//	  - Result.Proposals: total proposals made, in [n, n²] for n ≥ 1.
//	  - Result.Events:    the proposal log, nil unless WithEventLog was given.
//
// Errors (sentinel):
//
//   - ErrNilInstance: inst == nil.
//   - ErrIncompleteMatching: some hospital exhausted its list without being
//     held. Unreachable for instances built by core.NewInstance; reported
//     rather than silently returning a partial result.
//
// Performance and complexity:
//
//   - Time:  O(n²) proposals, O(1) each (rank lookups via core.RankTable).
//   - Space: O(n²) for the student-side rank table, O(n) engine state.
//
// Thread safety:
//
//   - Match keeps all state in a per-call proposer; concurrent calls on the
//     same or different instances are safe. Hooks run on the caller's goroutine.
package galeshapley
