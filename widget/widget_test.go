// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"math"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/io/event"
	"github.com/hudkit/hud/io/pointer"
	"github.com/hudkit/hud/layout"
	"github.com/hudkit/hud/op/paint"
	"github.com/hudkit/hud/ui"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func rectNear(a, b f32.Rectangle) bool {
	return near(a.Min.X, b.Min.X) && near(a.Min.Y, b.Min.Y) &&
		near(a.Max.X, b.Max.X) && near(a.Max.Y, b.Max.Y)
}

func rect(x0, y0, x1, y1 float32) f32.Rectangle {
	return f32.Rectangle{Min: f32.Pt(x0, y0), Max: f32.Pt(x1, y1)}
}

func TestFit(t *testing.T) {
	top := layout.Alignment{Vertical: layout.Start}
	for _, tc := range []struct {
		fit         Fit
		hpw, aspect float32
		pos         layout.Alignment
		want        f32.Rectangle
	}{
		{Contain, 1, 0.5, layout.Center, rect(-1, -0.5, 1, 0.5)},
		{Contain, 1, 2, layout.Center, rect(-0.5, -1, 0.5, 1)},
		{Contain, 0.5, 0.5, layout.Center, rect(-1, -1, 1, 1)},
		{Contain, 1, 0.5, top, rect(-1, 0, 1, 1)},
		{Cover, 1, 0.5, layout.Center, rect(-2, -1, 2, 1)},
		{Cover, 1, 2, layout.Center, rect(-1, -2, 1, 2)},
		{Fill, 1, 0.5, layout.Center, rect(-1, -1, 1, 1)},
		{Contain, 1, 0, layout.Center, rect(-1, -1, 1, 1)},
	} {
		got := tc.fit.scale(tc.hpw, tc.aspect, tc.pos).Bounds(f32.Unit)
		if !rectNear(got, tc.want) {
			t.Errorf("%v(%v, %v, %+v): got %v, want %v", tc.fit, tc.hpw, tc.aspect, tc.pos, got, tc.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if l := (Label{}).Layout(1, layout.Center).(layout.Shapes); len(l) != 0 {
		t.Errorf("empty label drew %v", l)
	}
	l := Label{Text: "Hello, World", Color: rgb(0x102030)}
	shapes := l.Layout(1, layout.Alignment{Vertical: layout.End}).(layout.Shapes)
	if len(shapes) != 1 || shapes[0].Kind != paint.TextShape || shapes[0].Text != l.Text {
		t.Fatalf("got %v", shapes)
	}
	b := shapes[0].Bounds()
	// Wide text spans the width and sits at the bottom.
	if !near(b.Min.X, -1) || !near(b.Max.X, 1) || !near(b.Min.Y, -1) || b.Max.Y >= 0 {
		t.Errorf("label bounds: got %v", b)
	}
	if shapes[0].Color != l.Color {
		t.Errorf("label color: got %v", shapes[0].Color)
	}
}

func TestImage(t *testing.T) {
	im := Image{Src: "logo", Aspect: 1, Color: rgb(0xff0000)}
	shapes := im.Layout(0.5, layout.Alignment{Horizontal: layout.End}).(layout.Shapes)
	if len(shapes) != 1 || shapes[0].Src != "logo" {
		t.Fatalf("got %v", shapes)
	}
	if b := shapes[0].Bounds(); !rectNear(b, rect(0, -1, 1, 1)) {
		t.Errorf("image bounds: got %v", b)
	}
}

func TestLighten(t *testing.T) {
	c := color.NRGBA{R: 0x20, G: 0x20, B: 0x80, A: 0x80}
	l := lighten(c, hoverBlend)
	if l.A != c.A {
		t.Errorf("alpha changed: %v", l)
	}
	if l.R <= c.R || l.G <= c.G {
		t.Errorf("%v is not lighter than %v", l, c)
	}
	if got := lighten(color.NRGBA{}, hoverBlend); got != (color.NRGBA{}) {
		t.Errorf("transparent color changed: %v", got)
	}
}

// panel is a container recording the button clicks of its child.
type panel struct {
	child  layout.Widget
	clicks []ClickEvent
}

func (p *panel) Layout(float32, layout.Alignment) layout.Layout {
	return layout.HBar(layout.Center, layout.Flexed(1, p.child))
}

func (p *panel) Event(e event.Event, from int) event.Outcome {
	if ce, ok := e.(ClickEvent); ok {
		p.clicks = append(p.clicks, ce)
	}
	return event.Outcome{}
}

func TestButton(t *testing.T) {
	th := NewTheme()
	btn := th.Button("OK")
	btn.now = func() time.Time { return time.Unix(0, 0) }
	p := &panel{child: btn}
	e := ui.New(p, 1)
	bg := e.Draw()[0]
	if bg.Color != th.Color.Primary {
		t.Errorf("background: got %v, want %v", bg.Color, th.Color.Primary)
	}
	if label := e.Draw()[1]; label.Text != "OK" || label.Color != th.Color.InvText {
		t.Errorf("label: got %v", label)
	}

	at := pointer.At(f32.Pt(0, 0))
	e.SetCursor(at, false)
	if !btn.Hovered() {
		t.Fatal("button not hovered")
	}
	if got := e.Draw()[0].Color; got != lighten(th.Color.Primary, hoverBlend) {
		t.Errorf("hovered background: got %v", got)
	}

	e.SetCursor(at, true)
	e.SetCursor(at, false)
	e.SetCursor(at, true)
	e.SetCursor(at, false)
	if len(p.clicks) != 2 || p.clicks[0].Button != btn || p.clicks[1].NumClicks != 2 {
		t.Errorf("forwarded clicks: got %+v", p.clicks)
	}
	for i := 0; i < 2; i++ {
		if !btn.Clicked() {
			t.Errorf("click %d not pending", i)
		}
	}
	if btn.Clicked() {
		t.Error("spurious click")
	}

	e.SetCursor(pointer.Outside, false)
	if btn.Hovered() {
		t.Error("button hovered after the cursor left")
	}
	if got := e.Draw()[0].Color; got != th.Color.Primary {
		t.Errorf("background after leave: got %v", got)
	}
}

func TestSpinner(t *testing.T) {
	now := time.Unix(0, 0)
	s := &Spinner{
		Frames: []string{"a", "b", "c"},
		Delay:  time.Second,
		Now:    func() time.Time { return now },
	}
	e := ui.New(s, 1)
	if got := e.Draw()[0].Src; got != "a" {
		t.Errorf("first frame: got %q", got)
	}
	if s.NeedsRebuild() {
		t.Error("rebuild requested without a frame change")
	}
	now = now.Add(4 * time.Second)
	if got := e.Draw()[0].Src; got != "b" {
		t.Errorf("after 4s: got %q, want %q", got, "b")
	}
	if s.NeedsRebuild() {
		t.Error("frame change reported twice")
	}
	if (&Spinner{}).NeedsRebuild() {
		t.Error("empty spinner animates")
	}
}

func TestButtonHoverImage(t *testing.T) {
	btn := &Button{Background: "normal", HoverBackground: "hovered", Color: rgb(0x3f51b5)}
	e := ui.New(btn, 1)
	if got := e.Draw()[0]; got.Src != "normal" {
		t.Errorf("background: got %q", got.Src)
	}
	e.SetCursor(pointer.At(f32.Pt(0, 0)), false)
	got := e.Draw()[0]
	if got.Src != "hovered" {
		t.Errorf("hovered background: got %q", got.Src)
	}
	if got.Color != btn.Color {
		t.Errorf("hover image tinted: got %v, want %v", got.Color, btn.Color)
	}
	e.SetCursor(pointer.Outside, false)
	if got := e.Draw()[0]; got.Src != "normal" {
		t.Errorf("background after leave: got %q", got.Src)
	}
}

func TestEmpty(t *testing.T) {
	if l := (Empty{}).Layout(1, layout.Center).(layout.Shapes); len(l) != 0 {
		t.Errorf("empty widget drew %v", l)
	}
	root := layout.WidgetFunc(func(float32, layout.Alignment) layout.Layout {
		return layout.HBar(layout.Alignment{Horizontal: layout.Start},
			layout.Collapsed(1, Empty{}),
			layout.Flexed(1, Image{Src: "x"}),
		)
	})
	shapes := ui.New(root, 1).Draw()
	if len(shapes) != 1 {
		t.Fatalf("got %v", shapes)
	}
	if b := shapes[0].Bounds(); !rectNear(b, rect(-1, -1, 0, 1)) {
		t.Errorf("empty widget took space: got %v", b)
	}
}

func TestTransition(t *testing.T) {
	start := time.Unix(0, 0)
	now := start
	tr := &Transition{
		Child:    Image{Src: "x"},
		Start:    start,
		Duration: 3 * time.Second,
		Now:      func() time.Time { return now },
	}
	e := ui.New(tr, 1)
	if b := e.Draw()[0].Bounds(); !rectNear(b, rect(0, -1, 2, 1)) {
		t.Errorf("at start: got %v", b)
	}
	if !tr.NeedsRebuild() {
		t.Error("transition in progress does not animate")
	}
	now = start.Add(1500 * time.Millisecond)
	off := float32(math.Exp(-5))
	if b := e.Draw()[0].Bounds(); !rectNear(b, rect(off-1, -1, off+1, 1)) {
		t.Errorf("half way: got %v", b)
	}
	now = start.Add(3 * time.Second)
	if b := e.Draw()[0].Bounds(); !rectNear(b, f32.Unit) {
		t.Errorf("at the end: got %v", b)
	}
	if tr.NeedsRebuild() {
		t.Error("finished transition still animates")
	}

	// A finished transition forwards the needs of its child.
	spin := &Spinner{Frames: []string{"a", "b"}, Delay: time.Second, Now: func() time.Time { return now }}
	tr = &Transition{Child: spin, Start: start, Duration: time.Second, Now: func() time.Time { return now }}
	if !tr.NeedsRebuild() {
		t.Error("end of the transition not reported")
	}
	if !tr.NeedsRebuild() {
		t.Error("spinner frame change not forwarded")
	}
	if tr.NeedsRebuild() {
		t.Error("settled transition animates")
	}
}

// counter is a widget changed from outside the engine.
type counter struct {
	n int
}

func (c *counter) Layout(float32, layout.Alignment) layout.Layout {
	if c.n%2 == 0 {
		return layout.Shapes{paint.Image(f32.Transform{}, "even")}
	}
	return layout.Shapes{paint.Image(f32.Transform{}, "odd")}
}

func TestLocked(t *testing.T) {
	l := NewLocked(&counter{})
	e := ui.New(l, 1)
	var g errgroup.Group
	g.Go(func() error {
		for i := 0; i < 100; i++ {
			l.Update(func(c *counter) { c.n++ })
		}
		return nil
	})
	g.Go(func() error {
		for i := 0; i < 100; i++ {
			e.Rebuild()
			e.Draw()
			e.SetCursor(pointer.At(f32.Pt(0, 0)), i%2 == 0)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	var n int
	l.Read(func(c *counter) { n = c.n })
	if n != 100 {
		t.Errorf("got %d updates, want 100", n)
	}
	e.Rebuild()
	if got := e.Draw()[0].Src; got != "even" {
		t.Errorf("after updates: got %q", got)
	}
	if l.NeedsRebuild() {
		t.Error("static widget needs a rebuild")
	}
}
