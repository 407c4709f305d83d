// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements the cursor samples fed to the engine
and the pointer events delivered to widgets.

A cursor sample is a Position, either a point in normalized
device coordinates or Outside, together with the state of the
button. For every sample, each node receives an Enter event if the
cursor is over one of its own shapes and a Leave event otherwise.
Containers own no shapes and therefore see a Leave on every sample,
besides the events their children forward. A Click follows when the
button is released over a shape it was held down on the previous
sample.
*/
package pointer

import (
	"strings"

	"github.com/hudkit/hud/f32"
)

// Position is a cursor position in normalized device coordinates,
// or Outside the viewport.
type Position struct {
	Point f32.Point
	// Inside is false for a cursor outside the viewport.
	Inside bool
}

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Position is the cursor in the local coordinate system of the
	// receiving node. It is the zero point when the cursor is
	// outside the viewport.
	Position f32.Point
}

// Kind of an Event.
type Kind uint8

const (
	// Enter is delivered when the cursor is over one of the
	// node's shapes.
	Enter Kind = 1 << iota
	// Leave is delivered when the cursor is not over any of the
	// node's shapes.
	Leave
	// Click is delivered when the button is released over
	// one of the node's shapes.
	Click
)

// Outside is the position of a cursor outside the viewport.
var Outside = Position{}

// At returns the position of a cursor at p.
func At(p f32.Point) Position {
	return Position{Point: p, Inside: true}
}

func (p Position) String() string {
	if !p.Inside {
		return "outside"
	}
	return p.Point.String()
}

func (t Kind) String() string {
	var buf strings.Builder
	for tt := Kind(1); tt > 0; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	case Click:
		return "Click"
	default:
		panic("unknown Kind")
	}
}

func (Event) ImplementsEvent() {}
