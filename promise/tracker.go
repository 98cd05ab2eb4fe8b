package promise

// Event is one promise lifecycle event a host tracking callback can
// observe, filtered by an EventMask (spec.md §4.9 "created, resolved,
// rejected, reaction enqueued, unhandled rejection, handler added after
// rejection").
type Event uint8

const (
	EventCreated Event = iota
	EventSettled
	EventReactionEnqueued
	EventUnhandledRejection
	EventHandlerAddedAfterRejection
)

// EventMask selects which Events reach the tracking callback.
type EventMask uint8

func (m EventMask) includes(e Event) bool { return m&(1<<e) != 0 }

// AllEvents is the mask that observes every lifecycle event.
const AllEvents EventMask = 1<<EventHandlerAddedAfterRejection<<1 - 1

// TrackCallback is the host hook installed via Tracker.
type TrackCallback func(e Event, p *Promise)

// Tracker dispatches lifecycle events to an optional host callback,
// filtered by Mask. A nil Callback (the default) makes tracking a no-op.
type Tracker struct {
	Mask     EventMask
	Callback TrackCallback
}

func (t *Tracker) fire(e Event, p *Promise) {
	if t == nil || t.Callback == nil || !t.Mask.includes(e) {
		return
	}
	t.Callback(e, p)
}

// NotifyCreated reports EventCreated for a freshly constructed promise;
// callers invoke this once right after promise.New() since New itself has
// no Tracker to report through.
func (t *Tracker) NotifyCreated(p *Promise) { t.fire(EventCreated, p) }
