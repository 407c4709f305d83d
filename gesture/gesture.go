// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

The engine delivers Enter or Leave to a widget for every cursor
sample. Gestures reduce that stream to the transitions between
states, and group clicks in quick succession.
*/
package gesture

import (
	"sync/atomic"
	"time"

	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/io/pointer"
)

// Click detects hover transitions and clicks.
//
// The state may be read concurrently with Update, typically by
// Layout while an event is being handled.
type Click struct {
	// state tracks the gesture state.
	state atomic.Uint32
	// clickedAt is the time of the last click.
	clickedAt time.Time
	numClicks int
}

// ClickState is the hover state of a Click.
type ClickState uint8

// ClickEvent represents a state transition or a completed click.
type ClickEvent struct {
	Type     ClickType
	Position f32.Point
	// NumClicks counts the clicks in a row, each within
	// doubleClickDuration of the previous. It is only set for
	// TypeClick.
	NumClicks int
}

// ClickType is the type of a ClickEvent.
type ClickType uint8

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StateHovered is reported when the cursor is over the
	// handler's shapes.
	StateHovered
)

const (
	// TypeEnter is reported when the cursor moves over the
	// handler.
	TypeEnter ClickType = iota
	// TypeLeave is reported when the cursor leaves the handler.
	TypeLeave
	// TypeClick is reported when a click action is complete.
	TypeClick
)

const doubleClickDuration = 200 * time.Millisecond

// State reports the click state.
func (c *Click) State() ClickState {
	return ClickState(c.state.Load())
}

// Hovered reports whether the cursor is over the handler.
func (c *Click) Hovered() bool {
	return c.State() == StateHovered
}

// Update processes a pointer event received at time t. It returns
// the resulting event and true if e changed the state or completed
// a click.
func (c *Click) Update(e pointer.Event, t time.Time) (ClickEvent, bool) {
	switch e.Kind {
	case pointer.Enter:
		if c.state.Swap(uint32(StateHovered)) == uint32(StateHovered) {
			break
		}
		return ClickEvent{Type: TypeEnter, Position: e.Position}, true
	case pointer.Leave:
		if c.state.Swap(uint32(StateNormal)) == uint32(StateNormal) {
			break
		}
		return ClickEvent{Type: TypeLeave, Position: e.Position}, true
	case pointer.Click:
		if t.Sub(c.clickedAt) < doubleClickDuration {
			c.numClicks++
		} else {
			c.numClicks = 1
		}
		c.clickedAt = t
		return ClickEvent{Type: TypeClick, Position: e.Position, NumClicks: c.numClicks}, true
	}
	return ClickEvent{}, false
}

func (t ClickType) String() string {
	switch t {
	case TypeEnter:
		return "TypeEnter"
	case TypeLeave:
		return "TypeLeave"
	case TypeClick:
		return "TypeClick"
	default:
		panic("invalid ClickType")
	}
}

func (s ClickState) String() string {
	switch s {
	case StateNormal:
		return "StateNormal"
	case StateHovered:
		return "StateHovered"
	default:
		panic("invalid ClickState")
	}
}
