// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/io/event"
	"github.com/hudkit/hud/op/paint"
)

// Widget is a user interface element.
//
// Layout describes how the widget arranges its content inside a box
// spanning [-1, 1] on both axes, whose height is hpw times its width
// on screen. The hint is the alignment requested by the parent.
// Layout is called by the engine whenever the presentation tree is
// rebuilt, possibly concurrently with other widget methods, and must
// not modify the widget.
type Widget interface {
	Layout(hpw float32, hint Alignment) Layout
}

// Animator is implemented by widgets whose content changes
// independently of events, for example with time. NeedsRebuild is
// polled before every draw; returning true rebuilds the tree.
// Widgets that do not implement Animator never need a rebuild.
type Animator interface {
	NeedsRebuild() bool
}

// Handler is implemented by widgets that react to events.
//
// from is the index of the child the event was forwarded from, or
// event.NoChild for events generated for the widget itself. Widgets
// that do not implement Handler pass every event on to their parent.
type Handler interface {
	Event(e event.Event, from int) event.Outcome
}

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(hpw float32, hint Alignment) Layout

// Layout is the description of a widget's content returned by
// Widget.Layout. It is one of Absolute, Bar or Shapes.
type Layout interface {
	ImplementsLayout()
}

// Absolute places each child widget with an explicit transform
// relative to the parent box.
type Absolute []Placed

// Placed is a child of an Absolute layout.
type Placed struct {
	Transform f32.Transform
	Widget    Widget
}

// Shapes is the terminal layout of a widget drawing primitives
// directly. The shape transforms are relative to the widget box.
type Shapes []paint.Shape

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Align is the alignment along a single axis.
type Align uint8

// Alignment is the independent horizontal and vertical alignment
// of content in a box. The zero value centers on both axes.
type Alignment struct {
	Horizontal Align
	Vertical   Align
}

// Direction is the alignment of widgets relative to a containing
// space.
type Direction uint8

// Inset adds space around a bar child. The values are fractions
// of the child box length on the corresponding axis.
type Inset struct {
	Top, Right, Bottom, Left float32
}

const (
	// Middle centers content.
	Middle Align = iota
	// Start aligns content to the left or top edge.
	Start
	// End aligns content to the right or bottom edge.
	End
)

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	C
)

const (
	Horizontal Axis = iota
	Vertical
)

// Center centers content on both axes.
var Center = Alignment{}

func (f WidgetFunc) Layout(hpw float32, hint Alignment) Layout {
	return f(hpw, hint)
}

func (Absolute) ImplementsLayout() {}
func (Shapes) ImplementsLayout()   {}
func (Bar) ImplementsLayout()      {}

// Offset returns the starting coordinate of a group of the given
// extent placed along an axis spanning [-1, 1] from the near
// (left or top) edge.
func (a Align) Offset(extent float32) float32 {
	switch a {
	case Start:
		return -1
	case End:
		return 1 - extent
	default:
		return -extent / 2
	}
}

// Position returns the transform of a box of size sz, measured in
// the [-1, 1] units of the containing box, placed according to a.
func (a Alignment) Position(sz f32.Point) f32.Transform {
	x := a.Horizontal.Offset(sz.X) + sz.X/2
	// Vertical offsets count from the top edge, at Y = 1.
	y := -(a.Vertical.Offset(sz.Y) + sz.Y/2)
	return f32.Offset(x, y).Mul(f32.ScaleXY(sz.X/2, sz.Y/2))
}

// Alignment converts d to the equivalent pair of axis alignments.
func (d Direction) Alignment() Alignment {
	var a Alignment
	switch d {
	case NW, W, SW:
		a.Horizontal = Start
	case NE, E, SE:
		a.Horizontal = End
	}
	switch d {
	case NW, N, NE:
		a.Vertical = Start
	case SW, S, SE:
		a.Vertical = End
	}
	return a
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Transform maps the unit box to the box left after insetting.
func (in Inset) Transform() f32.Transform {
	return f32.Offset(in.Left-in.Right, in.Bottom-in.Top).
		Mul(f32.ScaleXY(1-in.Left-in.Right, 1-in.Top-in.Bottom))
}

// Ratio returns the height per width ratio of the inset box
// of a box with ratio hpw.
func (in Inset) Ratio(hpw float32) float32 {
	return hpw * (1 - in.Top - in.Bottom) / (1 - in.Left - in.Right)
}

func (a Align) String() string {
	switch a {
	case Middle:
		return "Middle"
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case C:
		return "C"
	default:
		panic("unreachable")
	}
}
