// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sync"

	"github.com/hudkit/hud/io/event"
	"github.com/hudkit/hud/layout"
)

// Locked guards a widget whose state is changed by goroutines other
// than the engine's callers. Layout and NeedsRebuild hold a read
// lock, Event holds the write lock.
//
// The layout returned by the wrapped widget is used after the lock
// is released; it must not share mutable state with the widget.
type Locked[W layout.Widget] struct {
	mu sync.RWMutex
	w  W
}

// NewLocked returns a Locked guarding w.
func NewLocked[W layout.Widget](w W) *Locked[W] {
	return &Locked[W]{w: w}
}

func (l *Locked[W]) Layout(hpw float32, hint layout.Alignment) layout.Layout {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.w.Layout(hpw, hint)
}

func (l *Locked[W]) NeedsRebuild() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if a, ok := any(l.w).(layout.Animator); ok {
		return a.NeedsRebuild()
	}
	return false
}

func (l *Locked[W]) Event(e event.Event, from int) event.Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	if h, ok := any(l.w).(layout.Handler); ok {
		return h.Event(e, from)
	}
	return event.Propagate()
}

// Update calls f with the widget while holding the write lock.
func (l *Locked[W]) Update(f func(w W)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f(l.w)
}

// Read calls f with the widget while holding a read lock.
func (l *Locked[W]) Read(f func(w W)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f(l.w)
}
