package glimpse

import "log/slog"

// ElementState is whether a key went down or up.
type ElementState uint8

const (
	Released ElementState = iota
	Pressed
)

func (s ElementState) String() string {
	if s == Pressed {
		return "Pressed"
	}

	return "Released"
}

// EventKind tells which of the Event fields are meaningful.
type EventKind uint8

const (
	EventOther EventKind = iota
	EventCloseRequested
	EventKeyboardInput
)

// Event is a platform event targeted at a window. Key and State are
// only meaningful for EventKeyboardInput.
type Event struct {
	WindowID WindowID
	Kind     EventKind
	Key      Key
	State    ElementState
}

// CloseRequested is the event sent when the user asks to close the window.
func CloseRequested(id WindowID) Event {
	return Event{WindowID: id, Kind: EventCloseRequested}
}

// KeyboardInput is the event sent when a key is pressed or released.
func KeyboardInput(id WindowID, key Key, state ElementState) Event {
	return Event{WindowID: id, Kind: EventKeyboardInput, Key: key, State: state}
}

// ControlFlow is returned by a Handler to keep the event loop running or stop it.
type ControlFlow uint8

const (
	ControlFlowContinue ControlFlow = iota
	ControlFlowExit
)

func (c ControlFlow) String() string {
	if c == ControlFlowExit {
		return "Exit"
	}

	return "Continue"
}

// eventQueue collects the events produced by platform callbacks
// between two calls to drain.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

// drain hands all queued events to the handler in order. It stops at
// the first event for which the handler requests an exit and reports
// whether that happened. Remaining events are dropped.
func (q *eventQueue) drain(handler Handler) (exit bool) {
	defer func() { q.events = q.events[:0] }()

	for _, ev := range q.events {
		if handler(ev) == ControlFlowExit {
			slog.Debug("Event loop exit requested",
				slog.Uint64("window", uint64(ev.WindowID)),
				slog.Int("kind", int(ev.Kind)),
			)

			return true
		}
	}

	return false
}
