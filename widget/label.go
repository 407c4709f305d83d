// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/hudkit/hud/layout"
	"github.com/hudkit/hud/op/paint"
	"github.com/hudkit/hud/text"
)

// Label is a widget for laying out and drawing text. The text is
// scaled to fit the box and positioned according to the alignment
// hint.
type Label struct {
	Text  string
	Color color.NRGBA
	// Shaper measures the text. The default shaper is used if
	// Shaper is nil.
	Shaper *text.Shaper
}

func (l Label) Layout(hpw float32, hint layout.Alignment) layout.Layout {
	if l.Text == "" {
		return layout.Shapes{}
	}
	t := Contain.scale(hpw, l.aspect(), hint)
	return layout.Shapes{paint.Text(t, l.Text).WithColor(l.Color)}
}

func (l Label) aspect() float32 {
	s := l.Shaper
	if s == nil {
		s = text.Default()
	}
	return s.Aspect(l.Text)
}
