// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// NoChild is the origin passed to a handler for events that were
// not forwarded from one of its children.
const NoChild = -1

// Outcome is the result of handling a single event.
type Outcome struct {
	// Rebuild marks the handling node dirty, scheduling a
	// rebuild of the presentation tree.
	Rebuild bool
	// Propagate delivers the handled event to the parent as well.
	Propagate bool
	// Forward lists additional events to deliver to the parent.
	Forward []Event
}

// Propagate is the outcome of a handler that ignores an event:
// nothing changes and the event moves on to the parent.
func Propagate() Outcome {
	return Outcome{Propagate: true}
}

// Up returns the events the outcome sends to the parent, e
// first if it propagates.
func (o Outcome) Up(e Event) []Event {
	if !o.Propagate {
		return o.Forward
	}
	up := make([]Event, 0, 1+len(o.Forward))
	up = append(up, e)
	return append(up, o.Forward...)
}
