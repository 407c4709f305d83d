// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"sync/atomic"
	"time"

	"github.com/hudkit/hud/layout"
)

// Spinner cycles through a sequence of images with time.
type Spinner struct {
	// Frames names the images of the animation.
	Frames []string
	// Delay is the time each frame is shown.
	Delay  time.Duration
	Aspect float32
	Fit    Fit
	Color  color.NRGBA
	// Now reports the current time; time.Now if nil.
	Now func() time.Time

	// shown is the frame index last reported by NeedsRebuild.
	shown atomic.Int64
}

const defaultDelay = 100 * time.Millisecond

func (s *Spinner) Layout(hpw float32, hint layout.Alignment) layout.Layout {
	if len(s.Frames) == 0 {
		return layout.Shapes{}
	}
	im := Image{
		Src:    s.Frames[s.frame()],
		Aspect: s.Aspect,
		Fit:    s.Fit,
		Color:  s.Color,
	}
	return im.Layout(hpw, hint)
}

// NeedsRebuild reports whether the frame changed since the last
// call.
func (s *Spinner) NeedsRebuild() bool {
	if len(s.Frames) == 0 {
		return false
	}
	f := int64(s.frame())
	return s.shown.Swap(f) != f
}

func (s *Spinner) frame() int {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	d := s.Delay
	if d <= 0 {
		d = defaultDelay
	}
	n := now().UnixNano() / int64(d)
	return int(n % int64(len(s.Frames)))
}
