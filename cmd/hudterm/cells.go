// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/image/colornames"

	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/op/paint"
)

// canvas is the part of tcell.Screen a frame is flushed to.
type canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// cell is a terminal cell.
type cell struct {
	// text is the grapheme cluster drawn in the cell, or empty.
	text   string
	fg, bg tcell.Color
	// cont marks the second half of a wide cluster.
	cont bool
}

// frame is a grid of cells shapes are rasterized into.
type frame struct {
	cols, rows int
	cells      []cell
}

func newFrame(cols, rows int) *frame {
	f := &frame{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range f.cells {
		f.cells[i] = cell{fg: tcell.ColorDefault, bg: tcell.ColorDefault}
	}
	return f
}

// cellCenter returns the center of the cell at column x and row y
// in normalized device coordinates.
func cellCenter(x, y, cols, rows int) f32.Point {
	return f32.Pt(
		(float32(x)+0.5)/float32(cols)*2-1,
		1-(float32(y)+0.5)/float32(rows)*2,
	)
}

// bounds returns the cells whose centers lie in r.
func (f *frame) bounds(r f32.Rectangle) image.Rectangle {
	lo := func(v float32, n int) int {
		return int(math.Ceil(float64(v*float32(n) - 0.5)))
	}
	hi := func(v float32, n int) int {
		return int(math.Floor(float64(v*float32(n)-0.5))) + 1
	}
	b := image.Rectangle{
		Min: image.Pt(lo((r.Min.X+1)/2, f.cols), lo((1-r.Max.Y)/2, f.rows)),
		Max: image.Pt(hi((r.Max.X+1)/2, f.cols), hi((1-r.Min.Y)/2, f.rows)),
	}
	return b.Intersect(image.Rect(0, 0, f.cols, f.rows))
}

// draw rasterizes shapes in order, later shapes on top.
func (f *frame) draw(shapes []paint.Shape) {
	for _, s := range shapes {
		b := s.Bounds()
		if b.Intersect(f32.Unit).Empty() {
			continue
		}
		r := f.bounds(b)
		switch s.Kind {
		case paint.ImageShape:
			bg := termColor(s.Color, colornames.Dimgray)
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					f.cells[y*f.cols+x] = cell{fg: tcell.ColorDefault, bg: bg}
				}
			}
			f.text(r, s.Src, tcell.ColorDefault)
		case paint.TextShape:
			f.text(r, s.Text, termColor(s.Color, color.RGBA{}))
		}
	}
}

// text draws str centered on the middle row of r, truncated to
// its width.
func (f *frame) text(r image.Rectangle, str string, fg tcell.Color) {
	if r.Empty() || str == "" {
		return
	}
	str = runewidth.Truncate(str, r.Dx(), "…")
	y := (r.Min.Y + r.Max.Y - 1) / 2
	x := r.Min.X + (r.Dx()-runewidth.StringWidth(str))/2
	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		w := gr.Width()
		if w == 0 || x+w > r.Max.X {
			continue
		}
		c := &f.cells[y*f.cols+x]
		c.text = gr.Str()
		c.fg = fg
		c.cont = false
		for i := 1; i < w; i++ {
			next := &f.cells[y*f.cols+x+i]
			next.text = ""
			next.cont = true
		}
		x += w
		// Drop the remains of a wide cluster partially overwritten.
		if x < f.cols && f.cells[y*f.cols+x].cont {
			f.cells[y*f.cols+x].cont = false
		}
	}
}

// flush copies the frame to c.
func (f *frame) flush(c canvas) {
	for i, cl := range f.cells {
		if cl.cont {
			continue
		}
		x, y := i%f.cols, i/f.cols
		st := tcell.StyleDefault.Foreground(cl.fg).Background(cl.bg)
		if cl.text == "" {
			c.SetContent(x, y, ' ', nil, st)
			continue
		}
		runes := []rune(cl.text)
		c.SetContent(x, y, runes[0], runes[1:], st)
	}
}

// termColor converts c to a terminal color, using def for the zero
// color. A zero def maps to the terminal default.
func termColor(c color.NRGBA, def color.RGBA) tcell.Color {
	if c == (color.NRGBA{}) {
		if def == (color.RGBA{}) {
			return tcell.ColorDefault
		}
		return tcell.NewRGBColor(int32(def.R), int32(def.G), int32(def.B))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
