// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ui implements the engine that turns a widget tree into
drawable shapes and dispatches cursor input to it.

The engine owns a presentation tree derived from the root widget.
The tree is rebuilt from scratch whenever it becomes stale: when an
event handler asks for it, when a widget reports that it needs a
rebuild, when the viewport aspect changes or when Rebuild is called.

All Engine methods are safe for concurrent use. They serialize on a
single lock and run to completion on the calling goroutine.
*/
package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/hudkit/hud/internal/scene"
	"github.com/hudkit/hud/io/pointer"
	"github.com/hudkit/hud/layout"
	"github.com/hudkit/hud/op/paint"
)

// ErrPoisoned is the panic value, wrapped, of every Engine method
// called after an earlier call panicked. The presentation tree can
// no longer be trusted once an update failed halfway.
var ErrPoisoned = errors.New("ui: engine poisoned by an earlier panic")

// Engine lays out a widget tree and dispatches input to it.
type Engine struct {
	mu     sync.Mutex
	root   layout.Widget
	hpw    float32
	tree   *scene.Node
	down   bool
	logger *slog.Logger
	// failure is set when a method panicked.
	failure error
}

// Option configures an Engine.
type Option func(e *Engine)

// WithLogger directs the engine's debug logging to l.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New returns an engine for the widget tree rooted at root, laid
// out in a viewport whose height is hpw times its width.
func New(root layout.Widget, hpw float32, opts ...Option) *Engine {
	e := &Engine{
		root:   root,
		hpw:    hpw,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(e)
	}
	e.rebuild("new")
	return e
}

// Draw returns the shapes of the widget tree in drawing order,
// bottom to top, with transforms in normalized device coordinates.
// The tree is rebuilt first if it is stale.
func (e *Engine) Draw() []paint.Shape {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.guard()
	e.check()
	if e.tree.Dirty() {
		e.rebuild("dirty")
	}
	return e.tree.AppendShapes(nil)
}

// Rebuild re-derives the presentation tree from the current state
// of the widgets.
func (e *Engine) Rebuild() {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.guard()
	e.check()
	e.rebuild("explicit")
}

// SetViewport sets the height per width ratio of the viewport. The
// tree is rebuilt if the ratio changed.
func (e *Engine) SetViewport(hpw float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.guard()
	e.check()
	if hpw == e.hpw {
		return
	}
	e.logger.Debug("viewport changed", "from", e.hpw, "to", hpw)
	e.hpw = hpw
	e.rebuild("viewport")
}

// Viewport returns the current height per width ratio.
func (e *Engine) Viewport() float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.check()
	return e.hpw
}

// SetCursor feeds a cursor sample to the engine and dispatches the
// resulting pointer events to the widgets.
func (e *Engine) SetCursor(pos pointer.Position, down bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.guard()
	e.check()
	s := scene.Sample{Position: pos, WasDown: e.down, Down: down}
	e.down = down
	for _, ev := range e.tree.Dispatch(s) {
		e.logger.Debug("event dropped at root", "event", ev)
	}
}

// Widget returns the root widget. Changes made to the widget tree
// outside event handlers are picked up by the next Rebuild, or
// by Draw if a widget reports it needs a rebuild.
func (e *Engine) Widget() layout.Widget {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.check()
	return e.root
}

func (e *Engine) rebuild(reason string) {
	e.tree = scene.Build(e.root, e.hpw)
	e.logger.Debug("rebuilt", "reason", reason, "viewport", e.hpw, "nodes", e.tree.Count())
}

// check panics if an earlier call failed.
func (e *Engine) check() {
	if e.failure != nil {
		panic(e.failure)
	}
}

// guard poisons the engine if the calling method panics.
func (e *Engine) guard() {
	if r := recover(); r != nil {
		if e.failure == nil {
			e.failure = fmt.Errorf("%w: %v", ErrPoisoned, r)
		}
		panic(r)
	}
}
