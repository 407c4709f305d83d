// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/layout"
)

// Transition slides its child in from the right. The child starts
// displaced by half its box and eases into place.
type Transition struct {
	Child layout.Widget
	// Start is the time the slide begins.
	Start time.Time
	// Duration is the length of the slide.
	Duration time.Duration
	// Now reports the current time; time.Now if nil.
	Now func() time.Time

	// settled is set once NeedsRebuild reported the end of the
	// slide.
	settled atomic.Bool
}

const (
	transitionDelay    = time.Second
	transitionDuration = 3 * time.Second
	// transitionDecay controls how fast the displacement shrinks.
	transitionDecay = 10
)

// NewTransition returns a Transition of child starting after a
// short delay.
func NewTransition(child layout.Widget) *Transition {
	return &Transition{
		Child:    child,
		Start:    time.Now().Add(transitionDelay),
		Duration: transitionDuration,
	}
}

func (t *Transition) Layout(hpw float32, hint layout.Alignment) layout.Layout {
	var off f32.Transform
	if p := t.progress(); p < 1 {
		off = f32.Offset(float32(math.Exp(-p*transitionDecay)), 0)
	}
	return layout.Absolute{{Transform: off, Widget: t.Child}}
}

// NeedsRebuild reports whether the slide is in progress or the
// child needs a rebuild. The end of the slide is reported once, to
// draw the child in its final place.
func (t *Transition) NeedsRebuild() bool {
	if t.progress() < 1 {
		t.settled.Store(false)
		return true
	}
	if !t.settled.Swap(true) {
		return true
	}
	a, ok := t.Child.(layout.Animator)
	return ok && a.NeedsRebuild()
}

// progress returns the completed fraction of the slide, in [0, 1].
func (t *Transition) progress() float64 {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	d := t.Duration
	if d <= 0 {
		d = transitionDuration
	}
	elapsed := now().Sub(t.Start)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= d:
		return 1
	default:
		return float64(elapsed) / float64(d)
	}
}
