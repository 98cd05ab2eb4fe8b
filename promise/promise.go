package promise

import (
	"github.com/jerryscript-go/jerry/internal/engerr"
	"github.com/jerryscript-go/jerry/value"
)

// State is one of the three promise states (spec.md §4.9).
type State uint8

const (
	Pending State = iota
	Fulfilled
	Rejected
)

func (s State) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Outcome is what a reaction handler produces: either an ordinary return
// value or a thrown one. Keeping this distinct from a Go error lets a
// thrown ECMAScript value (itself just a value.Value, possibly an object)
// flow through without coercion into the engine's engerr channel, which is
// reserved for host/engine-internal failures (spec.md §4.8 keeps the two
// channels separate).
type Outcome struct {
	Value value.Value
	Threw bool
}

// Reaction is a captured handler plus the capability (child promise) its
// outcome resolves/rejects.
type Reaction struct {
	Handler func(result value.Value) Outcome
	Capture *Promise
}

// Promise is the class-object spec.md §4.9 describes: a state, a result,
// and two reaction lists.
type Promise struct {
	state  State
	result value.Value

	onFulfill []Reaction
	onReject  []Reaction

	handlerAddedAfterSettled bool // tracks "handler added after rejection" for unhandled-rejection reporting
}

// New creates a pending promise.
func New() *Promise { return &Promise{state: Pending} }

func (p *Promise) State() State        { return p.state }
func (p *Promise) Result() value.Value { return p.result }

// ErrAlreadySettled documents why resolve_or_reject silently no-ops on an
// already-settled promise rather than returning it as a caller-visible
// failure (spec.md §4.9 "if state is not pending, it is a no-op").
var ErrAlreadySettled = engerr.New(engerr.ThrownValue, "promise: already settled")

// Resolver binds a Promise to the Queue and Tracker its reactions are
// enqueued against and reported through.
type Resolver struct {
	Queue   *Queue
	Tracker *Tracker
}

// ResolveOrReject implements resolve_or_reject(promise, value, is_resolve)
// (spec.md §4.9): a no-op if the promise is already settled; otherwise the
// state transitions, the result is stored, and every matching reaction is
// enqueued as a microtask.
func (r *Resolver) ResolveOrReject(p *Promise, result value.Value, resolve bool) {
	if p.state != Pending {
		return
	}
	if resolve {
		p.state = Fulfilled
	} else {
		p.state = Rejected
	}
	p.result = result

	reactions := p.onFulfill
	if !resolve {
		reactions = p.onReject
	}
	p.onFulfill, p.onReject = nil, nil

	r.Tracker.fire(EventSettled, p)
	if !resolve && len(reactions) == 0 {
		r.Tracker.fire(EventUnhandledRejection, p)
	}
	for _, reaction := range reactions {
		reaction := reaction
		r.Queue.Enqueue(func() error {
			r.settleFromReaction(reaction, result)
			return nil
		})
	}
}

func (r *Resolver) settleFromReaction(reaction Reaction, input value.Value) {
	outcome := reaction.Handler(input)
	if reaction.Capture == nil {
		return
	}
	r.ResolveOrReject(reaction.Capture, outcome.Value, !outcome.Threw)
}

// Then registers a pair of reactions, enqueuing immediately if the promise
// has already settled (the PromiseReactionJob fast path for an already-
// settled promise, spec.md §4.9).
func (r *Resolver) Then(p *Promise, onFulfilled, onRejected func(value.Value) Outcome) *Promise {
	child := New()
	fulfillReaction := Reaction{Handler: onFulfilled, Capture: child}
	rejectReaction := Reaction{Handler: onRejected, Capture: child}

	switch p.state {
	case Pending:
		p.onFulfill = append(p.onFulfill, fulfillReaction)
		p.onReject = append(p.onReject, rejectReaction)
		r.Tracker.fire(EventReactionEnqueued, p)
	case Fulfilled:
		result := p.result
		r.Queue.Enqueue(func() error {
			r.settleFromReaction(fulfillReaction, result)
			return nil
		})
	case Rejected:
		p.handlerAddedAfterSettled = true
		r.Tracker.fire(EventHandlerAddedAfterRejection, p)
		result := p.result
		r.Queue.Enqueue(func() error {
			r.settleFromReaction(rejectReaction, result)
			return nil
		})
	}
	return child
}
