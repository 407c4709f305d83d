// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/io/event"
	"github.com/hudkit/hud/io/pointer"
	"github.com/hudkit/hud/layout"
)

// Sample is a cursor sample together with the button state of
// the previous sample.
type Sample struct {
	Position pointer.Position
	// WasDown is the button state of the previous sample.
	WasDown bool
	Down    bool
}

// Dispatch delivers the pointer events of s to the tree rooted at
// n and returns the events forwarded past n.
//
// Children observe a sample before their parent, so that the most
// deeply nested widgets, which draw on top, see input first.
// Events forwarded by a child are delivered to the parent's widget
// before the parent's own pointer events. Every node observes its
// own Enter or Leave, with event.NoChild, on every sample.
func (n *Node) Dispatch(s Sample) []event.Event {
	var up []event.Event
	for i, c := range n.Children {
		for _, e := range c.Dispatch(s) {
			up = append(up, n.deliver(e, i)...)
		}
	}
	// Containers own no shapes, so they never hit and observe a
	// Leave of their own on every sample.
	hit := n.Hit(s.Position)
	var pos f32.Point
	if s.Position.Inside {
		pos = n.Transform.Invert().Transform(s.Position.Point)
	}
	// Enter and Leave are delivered for every sample, not only
	// when the hover state changes.
	kind := pointer.Leave
	if hit {
		kind = pointer.Enter
	}
	up = append(up, n.deliver(pointer.Event{Kind: kind, Position: pos}, event.NoChild)...)
	if hit && s.WasDown && !s.Down {
		up = append(up, n.deliver(pointer.Event{Kind: pointer.Click, Position: pos}, event.NoChild)...)
	}
	return up
}

// deliver hands e to the widget of n and returns the events to
// pass on to the parent.
func (n *Node) deliver(e event.Event, from int) []event.Event {
	h, ok := n.Widget.(layout.Handler)
	if !ok {
		return []event.Event{e}
	}
	o := h.Event(e, from)
	if o.Rebuild {
		n.dirty = true
	}
	return o.Up(e)
}

// Hit reports whether pos is over one of the shapes of n.
func (n *Node) Hit(pos pointer.Position) bool {
	if !pos.Inside {
		return false
	}
	for _, s := range n.Shapes {
		if hitQuad(s.Transform.Corners(f32.Unit), pos.Point) {
			return true
		}
	}
	return false
}

// hitQuad reports whether p lies inside the convex quadrilateral
// with corners c. The point is inside if it is on the same side of
// every edge, for either winding order of the corners.
func hitQuad(c [4]f32.Point, p f32.Point) bool {
	var pos, neg bool
	for i := range c {
		a, b := c[i], c[(i+1)%len(c)]
		edge := b.Sub(a)
		// Dot product with the edge normal.
		normal := f32.Pt(-edge.Y, edge.X)
		switch d := p.Sub(a).Dot(normal); {
		case d > 0:
			pos = true
		case d < 0:
			neg = true
		}
	}
	// A degenerate quad has no inside.
	return pos != neg
}
