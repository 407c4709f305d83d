// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/io/event"
	"github.com/hudkit/hud/io/pointer"
	"github.com/hudkit/hud/layout"
	"github.com/hudkit/hud/op/paint"
)

// tile is a widget drawing one image and counting its events.
type tile struct {
	src     string
	layouts atomic.Int32
	enters  atomic.Int32
	leaves  atomic.Int32
	clicks  atomic.Int32
	// fail makes Event panic.
	fail atomic.Bool
}

func (t *tile) Layout(float32, layout.Alignment) layout.Layout {
	t.layouts.Add(1)
	src := t.src
	if n := t.clicks.Load(); n > 0 {
		src = fmt.Sprintf("%s-%d", t.src, n)
	}
	return layout.Shapes{paint.Image(f32.Transform{}, src)}
}

func (t *tile) Event(e event.Event, from int) event.Outcome {
	if t.fail.Load() {
		panic("tile: broken handler")
	}
	pe, ok := e.(pointer.Event)
	if !ok {
		return event.Propagate()
	}
	switch pe.Kind {
	case pointer.Enter:
		t.enters.Add(1)
	case pointer.Leave:
		t.leaves.Add(1)
	case pointer.Click:
		t.clicks.Add(1)
		return event.Outcome{Rebuild: true}
	}
	return event.Propagate()
}

func row(children ...layout.Widget) layout.Widget {
	b := layout.HBar(layout.Center)
	for _, c := range children {
		b.Children = append(b.Children, layout.Flexed(1, c))
	}
	return layout.WidgetFunc(func(float32, layout.Alignment) layout.Layout {
		return b
	})
}

func TestDrawTwoTiles(t *testing.T) {
	a, b := &tile{src: "a"}, &tile{src: "b"}
	e := New(row(a, b), 1)
	got := e.Draw()
	want := []paint.Shape{
		paint.Image(f32.Offset(-0.5, 0).Mul(f32.ScaleXY(0.5, 1)), "a"),
		paint.Image(f32.Offset(0.5, 0).Mul(f32.ScaleXY(0.5, 1)), "b"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("draw:\n got %v\nwant %v", got, want)
	}
}

func TestDrawSingleLeaf(t *testing.T) {
	e := New(&tile{src: "a"}, 1)
	got := e.Draw()
	want := []paint.Shape{paint.Image(f32.Transform{}, "a")}
	if !slices.Equal(got, want) {
		t.Errorf("draw: got %v, want %v", got, want)
	}
}

func TestDrawIdempotent(t *testing.T) {
	a, b := &tile{src: "a"}, &tile{src: "b"}
	e := New(row(a, row(b, a)), 0.75)
	first := e.Draw()
	layouts := a.layouts.Load()
	second := e.Draw()
	if !slices.Equal(first, second) {
		t.Errorf("draw not idempotent:\n%v\n%v", first, second)
	}
	if a.layouts.Load() != layouts {
		t.Error("clean tree was rebuilt")
	}
}

func TestClick(t *testing.T) {
	a := &tile{src: "a"}
	e := New(row(a, &tile{src: "b"}), 1)
	at := pointer.At(f32.Pt(-0.5, 0))
	e.SetCursor(at, true)
	e.SetCursor(at, false)
	if n := a.clicks.Load(); n != 1 {
		t.Fatalf("got %d clicks, want 1", n)
	}
	if n := a.enters.Load(); n != 2 {
		t.Errorf("got %d enter events, want one per sample", n)
	}
	// The click requested a rebuild, visible at the next draw.
	if got := e.Draw()[0].Src; got != "a-1" {
		t.Errorf("after click: got %q, want %q", got, "a-1")
	}
	e.SetCursor(at, false)
	if n := a.clicks.Load(); n != 1 {
		t.Errorf("hover without press clicked: %d clicks", n)
	}
}

func TestLeaveOutside(t *testing.T) {
	a, b := &tile{src: "a"}, &tile{src: "b"}
	e := New(row(a, b), 1)
	e.SetCursor(pointer.At(f32.Pt(-0.5, 0)), true)
	e.SetCursor(pointer.At(f32.Pt(0.5, 0)), true)
	a.leaves.Store(0)
	b.leaves.Store(0)
	e.SetCursor(pointer.Outside, false)
	if a.leaves.Load() != 1 || b.leaves.Load() != 1 {
		t.Errorf("leave events: got %d and %d, want 1 each", a.leaves.Load(), b.leaves.Load())
	}
	if a.clicks.Load() != 0 || b.clicks.Load() != 0 {
		t.Error("release outside the viewport clicked")
	}
}

func TestViewport(t *testing.T) {
	a := &tile{src: "a"}
	e := New(a, 1)
	e.SetViewport(1)
	if n := a.layouts.Load(); n != 1 {
		t.Errorf("unchanged viewport rebuilt: %d layouts", n)
	}
	e.SetViewport(0.5)
	if n := a.layouts.Load(); n != 2 {
		t.Errorf("changed viewport: %d layouts, want 2", n)
	}
	if got := e.Viewport(); got != 0.5 {
		t.Errorf("viewport: got %v, want 0.5", got)
	}
	e.Rebuild()
	if n := a.layouts.Load(); n != 3 {
		t.Errorf("explicit rebuild: %d layouts, want 3", n)
	}
}

func TestWidget(t *testing.T) {
	a := &tile{src: "a"}
	e := New(a, 1)
	if e.Widget() != layout.Widget(a) {
		t.Error("Widget does not return the root widget")
	}
}

func TestPoisoned(t *testing.T) {
	a := &tile{src: "a"}
	e := New(a, 1)
	a.fail.Store(true)
	func() {
		defer func() {
			if r := recover(); r != "tile: broken handler" {
				t.Errorf("handler panic: got %v", r)
			}
		}()
		e.SetCursor(pointer.At(f32.Point{}), false)
	}()
	a.fail.Store(false)
	for _, tc := range []struct {
		name string
		call func()
	}{
		{"Draw", func() { e.Draw() }},
		{"Rebuild", e.Rebuild},
		{"SetViewport", func() { e.SetViewport(2) }},
		{"Viewport", func() { e.Viewport() }},
		{"SetCursor", func() { e.SetCursor(pointer.Outside, false) }},
		{"Widget", func() { e.Widget() }},
	} {
		func() {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrPoisoned) {
					t.Errorf("%s after failure: got %v, want ErrPoisoned", tc.name, err)
				}
			}()
			tc.call()
		}()
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := New(&tile{src: "a"}, 1, WithLogger(l))
	e.SetViewport(2)
	e.SetCursor(pointer.Outside, false)
	out := buf.String()
	for _, want := range []string{"reason=new", "reason=viewport", "event dropped at root"} {
		if !strings.Contains(out, want) {
			t.Errorf("log lacks %q:\n%s", want, out)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	a, b := &tile{src: "a"}, &tile{src: "b"}
	e := New(row(a, b), 1)
	var g errgroup.Group
	for i := 0; i < 4; i++ {
		i := i
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				switch (i + j) % 3 {
				case 0:
					if n := len(e.Draw()); n != 2 {
						return fmt.Errorf("draw returned %d shapes", n)
					}
				case 1:
					e.SetCursor(pointer.At(f32.Pt(-0.5, 0)), j%2 == 0)
				case 2:
					e.SetViewport(float32(1 + j%2))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
