// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/layout"
)

// Margins are the unused parts of a node box along each edge, in
// the [-1, 1] units of the box. Each margin lies in [0, 2].
type Margins struct {
	Top, Right, Bottom, Left float32
}

// emptyMargins describes a box without content. The content
// degenerates to the center point, so that a collapsed empty
// child takes no space.
var emptyMargins = Margins{Top: 1, Right: 1, Bottom: 1, Left: 1}

// boundsMargins returns the margins left by content covering b.
func boundsMargins(b f32.Rectangle) Margins {
	return Margins{
		Top:    clamp(1 - b.Max.Y),
		Right:  clamp(1 - b.Max.X),
		Bottom: clamp(1 + b.Min.Y),
		Left:   clamp(1 + b.Min.X),
	}
}

// shapeMargins returns the margins of a terminal node.
func shapeMargins(shapes layout.Shapes) Margins {
	if len(shapes) == 0 {
		return emptyMargins
	}
	b := shapes[0].Bounds()
	for _, s := range shapes[1:] {
		b = b.Union(s.Bounds())
	}
	return boundsMargins(b)
}

// Content returns the rectangle inside the margins.
func (m Margins) Content() f32.Rectangle {
	return f32.Rectangle{
		Min: f32.Pt(-1+m.Left, -1+m.Bottom),
		Max: f32.Pt(1-m.Right, 1-m.Top),
	}
}

// empty reports whether the margins leave no content.
func (m Margins) empty() bool {
	return m.Content().Empty()
}

// inset returns the margins of the inner box mapped to the outer
// box of in, without the padding itself.
func (m Margins) inset(in layout.Inset) Margins {
	sx := 1 - in.Left - in.Right
	sy := 1 - in.Top - in.Bottom
	return Margins{
		Top:    m.Top * sy,
		Right:  m.Right * sx,
		Bottom: m.Bottom * sy,
		Left:   m.Left * sx,
	}
}

// pad returns m grown by the padding of in.
func (m Margins) pad(in layout.Inset) Margins {
	return Margins{
		Top:    m.Top + 2*in.Top,
		Right:  m.Right + 2*in.Right,
		Bottom: m.Bottom + 2*in.Bottom,
		Left:   m.Left + 2*in.Left,
	}
}

// lead returns the margin at the start of axis a. Vertical axes
// start at the top.
func (m Margins) lead(a layout.Axis) float32 {
	if a == layout.Horizontal {
		return m.Left
	}
	return m.Top
}

// trail returns the margin at the end of axis a.
func (m Margins) trail(a layout.Axis) float32 {
	if a == layout.Horizontal {
		return m.Right
	}
	return m.Bottom
}

func (m Margins) clamp() Margins {
	return Margins{
		Top:    clamp(m.Top),
		Right:  clamp(m.Right),
		Bottom: clamp(m.Bottom),
		Left:   clamp(m.Left),
	}
}

func clamp(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 2:
		return 2
	default:
		return v
	}
}
