// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "github.com/hudkit/hud/f32"

// Stack lays out child elements on top of each other, the
// first child at the bottom.
func Stack(children ...Placed) Absolute {
	return Absolute(children)
}

// Expanded returns a stack child filling the whole box.
func Expanded(w Widget) Placed {
	return Placed{Widget: w}
}

// Stacked returns a stack child of size sz, in the [-1, 1] units
// of the box, aligned in the direction d.
func Stacked(d Direction, sz f32.Point, w Widget) Placed {
	return Placed{Transform: d.Alignment().Position(sz), Widget: w}
}
