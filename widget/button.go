// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"sync/atomic"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/gesture"
	"github.com/hudkit/hud/io/event"
	"github.com/hudkit/hud/io/pointer"
	"github.com/hudkit/hud/layout"
	"github.com/hudkit/hud/op/paint"
)

// Button is a clickable widget drawing a label over a background.
// It is highlighted, or shows a second image, while hovered. Clicks are counted and
// forwarded to the parent as ClickEvents.
type Button struct {
	Label Label
	// Background names the background image. Renderers may draw
	// an empty name as a solid fill.
	Background string
	// HoverBackground names the image drawn instead of Background
	// while the button is hovered. If empty, the hovered
	// background is a lighter Color.
	HoverBackground string
	Color           color.NRGBA

	click gesture.Click
	// pending counts the clicks not yet consumed by Clicked.
	pending atomic.Int32
	// now reports the current time; time.Now if nil.
	now func() time.Time
}

// ClickEvent is forwarded to the parent of a Button when it is
// clicked.
type ClickEvent struct {
	Button *Button
	// NumClicks is the number of clicks in quick succession.
	NumClicks int
}

// hoverBlend is how far the background moves towards white while
// the button is hovered.
const hoverBlend = 0.3

// labelScale is the size of the label relative to the button.
const labelScale = 0.8

func (ClickEvent) ImplementsEvent() {}

// Clicked reports whether there are pending clicks. If so, Clicked
// removes the earliest click.
func (b *Button) Clicked() bool {
	for {
		n := b.pending.Load()
		if n == 0 {
			return false
		}
		if b.pending.CompareAndSwap(n, n-1) {
			return true
		}
	}
}

// Hovered reports whether the cursor is over the button.
func (b *Button) Hovered() bool {
	return b.click.Hovered()
}

func (b *Button) Layout(hpw float32, hint layout.Alignment) layout.Layout {
	src, bg := b.Background, b.Color
	if b.Hovered() {
		if b.HoverBackground != "" {
			src = b.HoverBackground
		} else {
			bg = lighten(bg, hoverBlend)
		}
	}
	shapes := layout.Shapes{paint.Image(f32.Transform{}, src).WithColor(bg)}
	for _, s := range b.Label.Layout(hpw, hint).(layout.Shapes) {
		shapes = append(shapes, s.Compose(f32.Scale(labelScale)))
	}
	return shapes
}

// Event updates the hover state and counts clicks. Hover changes
// rebuild the tree to redraw the highlight.
func (b *Button) Event(e event.Event, from int) event.Outcome {
	pe, ok := e.(pointer.Event)
	if !ok {
		return event.Propagate()
	}
	now := time.Now
	if b.now != nil {
		now = b.now
	}
	ce, ok := b.click.Update(pe, now())
	if !ok {
		return event.Outcome{}
	}
	switch ce.Type {
	case gesture.TypeClick:
		b.pending.Add(1)
		return event.Outcome{Forward: []event.Event{ClickEvent{Button: b, NumClicks: ce.NumClicks}}}
	default:
		return event.Outcome{Rebuild: true}
	}
}

// lighten blends c towards white by t in the perceptually uniform
// Lab color space.
func lighten(c color.NRGBA, t float64) color.NRGBA {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	r, g, b := cc.BlendLab(white, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: c.A}
}
