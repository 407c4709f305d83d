// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/hudkit/hud/text"
)

// Theme holds the shared appearance of a user interface.
type Theme struct {
	Shaper *text.Shaper
	Color  struct {
		Primary color.NRGBA
		Text    color.NRGBA
		Hint    color.NRGBA
		InvText color.NRGBA
	}
}

// NewTheme returns a theme using the default text shaper.
func NewTheme() *Theme {
	t := &Theme{
		Shaper: text.Default(),
	}
	t.Color.Primary = rgb(0x3f51b5)
	t.Color.Text = nrgba(colornames.Black)
	t.Color.Hint = nrgba(colornames.Silver)
	t.Color.InvText = nrgba(colornames.White)
	return t
}

// Label returns a label for txt in the text color.
func (t *Theme) Label(txt string) Label {
	return Label{Text: txt, Color: t.Color.Text, Shaper: t.Shaper}
}

// Button returns a button labeled txt in the primary color.
func (t *Theme) Button(txt string) *Button {
	return &Button{
		Label: Label{Text: txt, Color: t.Color.InvText, Shaper: t.Shaper},
		Color: t.Color.Primary,
	}
}

func nrgba(c color.RGBA) color.NRGBA {
	// colornames are opaque, so premultiplication is a no-op.
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
