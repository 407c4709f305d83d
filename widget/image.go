// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/hudkit/hud/layout"
	"github.com/hudkit/hud/op/paint"
)

// Image is a widget that displays an image.
type Image struct {
	// Src names the image to display.
	Src string
	// Aspect is the height per width ratio of the image. The
	// image is stretched to the box if Aspect is zero.
	Aspect float32
	// Fit specifies how to scale the image to the box. The image
	// is positioned according to the alignment hint.
	Fit Fit
	// Color tints the image.
	Color color.NRGBA
}

func (im Image) Layout(hpw float32, hint layout.Alignment) layout.Layout {
	t := im.Fit.scale(hpw, im.Aspect, hint)
	return layout.Shapes{paint.Image(t, im.Src).WithColor(im.Color)}
}
