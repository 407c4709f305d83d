// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/layout"
	"github.com/hudkit/hud/op/paint"
	"github.com/hudkit/hud/ui"
)

// snapshot renders a single frame of root to a PNG file.
func snapshot(root layout.Widget, path string, w, h int) error {
	e := ui.New(root, float32(h)/float32(w))
	img := render(e.Draw(), image.Pt(w, h))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// render draws shapes into an image of size sz with flat colors
// and a fixed bitmap font.
func render(shapes []paint.Shape, sz image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: sz})
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.Black), image.Point{}, draw.Src)
	for _, s := range shapes {
		b := s.Bounds()
		if b.Intersect(f32.Unit).Empty() {
			continue
		}
		r := pixelBounds(b, sz)
		switch s.Kind {
		case paint.ImageShape:
			draw.Draw(img, r, image.NewUniform(colorOr(s.Color, colornames.Dimgray)), image.Point{}, draw.Over)
			drawText(img, r, s.Src, colornames.White)
		case paint.TextShape:
			drawText(img, r, s.Text, colorOr(s.Color, colornames.White))
		}
	}
	return img
}

// pixelBounds maps r from normalized device coordinates to the
// pixels of an image of size sz.
func pixelBounds(r f32.Rectangle, sz image.Point) image.Rectangle {
	px := func(x float32) int { return int((x + 1) / 2 * float32(sz.X)) }
	py := func(y float32) int { return int((1 - y) / 2 * float32(sz.Y)) }
	b := image.Rectangle{
		Min: image.Pt(px(r.Min.X), py(r.Max.Y)),
		Max: image.Pt(px(r.Max.X), py(r.Min.Y)),
	}
	return b.Intersect(image.Rectangle{Max: sz})
}

// drawText draws str centered in r.
func drawText(dst draw.Image, r image.Rectangle, str string, c color.Color) {
	if r.Empty() || str == "" {
		return
	}
	face := basicfont.Face7x13
	d := font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	adv := d.MeasureString(str)
	m := face.Metrics()
	x := fixed.I(r.Min.X+r.Max.X)/2 - adv/2
	y := fixed.I(r.Min.Y+r.Max.Y)/2 + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(str)
}

func colorOr(c color.NRGBA, def color.RGBA) color.Color {
	if c == (color.NRGBA{}) {
		return def
	}
	return c
}
