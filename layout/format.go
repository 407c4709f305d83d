// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"strconv"
)

type formatState struct {
	current int
	orig    string
	expr    string
}

type formatError string

// Format builds a widget tree from a format string, similar to how
// fmt.Printf interpolates a string.
//
// The format string is an expression where layouts are similar to
// function calls, and the underscore denotes a widget from the
// arguments. The ith _ is the ith widget from the arguments.
//
// If the layout format is invalid, Format panics with an error where
// a cross, ✗, marks the error position.
//
// For example,
//
//	layout.Format("hbar(f(1, _), c(2, inset(0.1, _)))", a, b)
//
// is equivalent to
//
//	layout.HBar(layout.Center,
//		layout.Flexed(1, a),
//		layout.Collapsed(2, <b inset by 0.1>),
//	)
//
// Available layouts:
//
//	inset(insets, widget) insets widget. Insets are either: one
//	value for uniform insets; two values for top/bottom and
//	right/left insets; three values for top, right/left and bottom
//	insets; or four values for top, right, bottom, left insets.
//
//	<direction>(widget) passes a directed alignment hint to widget.
//	Direction is one of north, northeast, east, southeast, south,
//	southwest, west, northwest, center.
//
//	hbar/vbar(<alignment>, children...) lays out children with a
//	horizontal or vertical Bar. Each child must be on the form
//	f(<weight>, widget) or, collapsed, c(<weight>, widget). If
//	alignment is specified, it must be one of: start, middle, end.
//	The default alignment is middle.
//
//	stack(children...) lays out children on top of each other, each
//	filling the box.
func Format(format string, widgets ...Widget) Widget {
	state := formatState{
		orig: format,
		expr: format,
	}
	defer func() {
		if err := recover(); err != nil {
			if _, ok := err.(formatError); !ok {
				panic(err)
			}
			pos := len(state.orig) - len(state.expr)
			msg := state.orig[:pos] + "✗" + state.orig[pos:]
			panic(fmt.Errorf("Format: %s:%d: %s", msg, pos, err))
		}
	}()
	w := formatExpr(&state, widgets)
	skipWhitespace(&state)
	if len(state.expr) > 0 {
		errorf("unexpected %q after expression", state.expr)
	}
	if n := len(widgets); state.current != n {
		errorf("%d widgets given, %d used", n, state.current)
	}
	return w
}

// static is a widget with a fixed layout.
type static struct {
	l Layout
}

func (s static) Layout(float32, Alignment) Layout {
	return s.l
}

func formatExpr(state *formatState, widgets []Widget) Widget {
	switch peek(state) {
	case '_':
		return formatWidget(state, widgets)
	default:
		return formatLayout(state, widgets)
	}
}

func formatLayout(state *formatState, widgets []Widget) Widget {
	name := parseName(state)
	if name == "" {
		errorf("missing layout name")
	}
	expect(state, "(")
	var l Layout
	if d, ok := dirFor(name); ok {
		w := formatExpr(state, widgets)
		l = Bar{Children: []Child{{Widget: w, Weight: 1, Alignment: d.Alignment()}}}
	} else {
		switch name {
		case "inset":
			in := parseInset(state)
			w := formatExpr(state, widgets)
			l = Bar{Children: []Child{{Widget: w, Weight: 1, Inset: in}}}
		case "hbar":
			l = formatBar(Horizontal, state, widgets)
		case "vbar":
			l = formatBar(Vertical, state, widgets)
		case "stack":
			l = formatStack(state, widgets)
		default:
			errorf("invalid layout %q", name)
		}
	}
	expect(state, ")")
	return static{l}
}

func formatWidget(state *formatState, widgets []Widget) Widget {
	expect(state, "_")
	if i, max := state.current, len(widgets)-1; i > max {
		errorf("widget index %d out of bounds [0;%d]", i, max)
	}
	w := widgets[state.current]
	state.current++
	return w
}

func formatStack(state *formatState, widgets []Widget) Absolute {
	var children []Placed
	for {
		switch peek(state) {
		case ')':
			return Stack(children...)
		case ',':
			expect(state, ",")
		default:
			children = append(children, Expanded(formatExpr(state, widgets)))
		}
	}
}

func formatBar(axis Axis, state *formatState, widgets []Widget) Bar {
	b := Bar{Axis: axis}
	// Parse alignment, if present.
	switch peek(state) {
	case 'f', 'c', ')':
	default:
		name := parseName(state)
		var a Align
		switch name {
		case "start":
			a = Start
		case "middle":
			a = Middle
		case "end":
			a = End
		default:
			errorf("invalid bar alignment: %q", name)
		}
		if axis == Horizontal {
			b.Alignment.Horizontal = a
		} else {
			b.Alignment.Vertical = a
		}
		expect(state, ",")
	}
	for {
		switch peek(state) {
		case ')':
			return b
		case ',':
			expect(state, ",")
		case 'f', 'c':
			collapse := peek(state) == 'c'
			state.expr = state.expr[1:]
			expect(state, "(")
			skipWhitespace(state)
			weight := parseInt(state)
			if weight < 1 {
				errorf("invalid weight %d", weight)
			}
			expect(state, ",")
			w := formatExpr(state, widgets)
			b.Children = append(b.Children, Child{Widget: w, Weight: weight, Collapse: collapse})
			expect(state, ")")
		default:
			errorf("invalid bar child")
		}
	}
}

func parseInset(state *formatState) Inset {
	v1 := parseValue(state)
	if peek(state) == ',' {
		expect(state, ",")
		return UniformInset(v1)
	}
	v2 := parseValue(state)
	if peek(state) == ',' {
		expect(state, ",")
		return Inset{
			Top:    v1,
			Right:  v2,
			Bottom: v1,
			Left:   v2,
		}
	}
	v3 := parseValue(state)
	if peek(state) == ',' {
		expect(state, ",")
		return Inset{
			Top:    v1,
			Right:  v2,
			Bottom: v3,
			Left:   v2,
		}
	}
	v4 := parseValue(state)
	expect(state, ",")
	return Inset{
		Top:    v1,
		Right:  v2,
		Bottom: v3,
		Left:   v4,
	}
}

func parseValue(state *formatState) float32 {
	skipWhitespace(state)
	v := parseFloat(state)
	if v < 0 || v >= 0.5 {
		errorf("inset %g out of range [0;0.5)", v)
	}
	return v
}

func parseName(state *formatState) string {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		switch {
		case c == '(' || c == ',' || c == ')':
			fname := state.expr[:i]
			state.expr = state.expr[i:]
			return fname
		case c < 'a' || 'z' < c:
			errorf("invalid character '%c' in layout name", c)
		}
	}
	state.expr = state.expr[i:]
	errorf("missing ( after layout function")
	return ""
}

func parseFloat(state *formatState) float32 {
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
	}
	expr := state.expr[:i]
	v, err := strconv.ParseFloat(expr, 32)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	state.expr = state.expr[i:]
	return float32(v)
}

func parseInt(state *formatState) int {
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if c < '0' || c > '9' {
			break
		}
	}
	expr := state.expr[:i]
	v, err := strconv.Atoi(expr)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	state.expr = state.expr[i:]
	return v
}

func peek(state *formatState) rune {
	skipWhitespace(state)
	if len(state.expr) == 0 {
		errorf("unexpected end")
	}
	return rune(state.expr[0])
}

func expect(state *formatState, str string) {
	skipWhitespace(state)
	n := len(str)
	if len(state.expr) < n || state.expr[:n] != str {
		errorf("expected %q", str)
	}
	state.expr = state.expr[n:]
}

func skipWhitespace(state *formatState) {
	for len(state.expr) > 0 {
		switch state.expr[0] {
		case '\t', '\n', '\v', '\f', '\r', ' ':
			state.expr = state.expr[1:]
		default:
			return
		}
	}
}

func dirFor(name string) (Direction, bool) {
	var d Direction
	switch name {
	case "center":
		d = C
	case "northwest":
		d = NW
	case "north":
		d = N
	case "northeast":
		d = NE
	case "east":
		d = E
	case "southeast":
		d = SE
	case "south":
		d = S
	case "southwest":
		d = SW
	case "west":
		d = W
	default:
		return 0, false
	}
	return d, true
}

func errorf(f string, args ...interface{}) {
	panic(formatError(fmt.Sprintf(f, args...)))
}

func (e formatError) Error() string {
	return string(e)
}
