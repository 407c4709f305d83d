// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/layout"
)

// Fit scales content with a fixed aspect ratio into a widget box.
type Fit uint8

const (
	// Contain scales content as large as possible without cropping
	// and it preserves aspect-ratio.
	Contain Fit = iota
	// Cover scales the content to cover the widget box and
	// preserves aspect-ratio. The content may extend past the box.
	Cover
	// Fill stretches the content to the box and does not
	// preserve aspect-ratio.
	Fill
)

// scale returns the transform placing content whose height is
// aspect times its width in a box with ratio hpw, positioned by pos.
func (fit Fit) scale(hpw, aspect float32, pos layout.Alignment) f32.Transform {
	if fit == Fill || aspect <= 0 || hpw <= 0 {
		return f32.Transform{}
	}
	// The content size in box lengths, at full width.
	size := f32.Pt(1, aspect/hpw)
	switch fit {
	case Contain:
		if size.Y > 1 {
			size = f32.Pt(1/size.Y, 1)
		}
	case Cover:
		if size.Y < 1 {
			size = f32.Pt(1/size.Y, 1)
		}
	}
	return pos.Position(size.Mul(2))
}

func (fit Fit) String() string {
	switch fit {
	case Contain:
		return "Contain"
	case Cover:
		return "Cover"
	case Fill:
		return "Fill"
	default:
		panic("unreachable")
	}
}
