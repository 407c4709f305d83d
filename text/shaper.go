// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures strings, so that widgets drawing text can
report its aspect ratio and place it inside their box.

Measurements are in ems, independent of the size the text is
eventually drawn at.
*/
package text

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Size is the extent of a text in ems.
type Size struct {
	Width, Height float32
}

// Shaper measures text set in a single font. It is safe for
// concurrent use.
type Shaper struct {
	mu    sync.Mutex
	font  *sfnt.Font
	buf   sfnt.Buffer
	ppem  fixed.Int26_6
	cache sizeCache
}

var (
	defaultOnce   sync.Once
	defaultShaper *Shaper
)

// NewShaper returns a shaper for the font f.
func NewShaper(f *sfnt.Font) *Shaper {
	// Measure at one unit per font unit to avoid rounding.
	return &Shaper{font: f, ppem: fixed.I(int(f.UnitsPerEm()))}
}

// Default returns a shaper for the Go Regular font.
func Default() *Shaper {
	defaultOnce.Do(func() {
		f, err := sfnt.Parse(goregular.TTF)
		if err != nil {
			panic(fmt.Errorf("text: parsing Go Regular: %w", err))
		}
		defaultShaper = NewShaper(f)
	})
	return defaultShaper
}

// Measure returns the size of str. Lines are separated by '\n'.
func (s *Shaper) Measure(str string) Size {
	str = norm.NFC.String(str)
	s.mu.Lock()
	defer s.mu.Unlock()
	if sz, ok := s.cache.Get(str); ok {
		return sz
	}
	m, err := s.font.Metrics(&s.buf, s.ppem, font.HintingNone)
	if err != nil {
		m = font.Metrics{Height: s.ppem}
	}
	var w fixed.Int26_6
	lines := strings.Split(str, "\n")
	for _, l := range lines {
		if lw := s.lineWidth(l); lw > w {
			w = lw
		}
	}
	sz := Size{
		Width:  s.ems(w),
		Height: s.ems(m.Height) * float32(len(lines)),
	}
	s.cache.Put(str, sz)
	return sz
}

// Aspect returns the height per width ratio of str, or zero if
// str has no width.
func (s *Shaper) Aspect(str string) float32 {
	sz := s.Measure(str)
	if sz.Width == 0 {
		return 0
	}
	return sz.Height / sz.Width
}

func (s *Shaper) lineWidth(l string) fixed.Int26_6 {
	var (
		w    fixed.Int26_6
		prev sfnt.GlyphIndex
	)
	for len(l) > 0 {
		r, n := utf8.DecodeRuneInString(l)
		l = l[n:]
		g, err := s.font.GlyphIndex(&s.buf, r)
		if err != nil {
			continue
		}
		adv, err := s.font.GlyphAdvance(&s.buf, g, s.ppem, font.HintingNone)
		if err != nil {
			continue
		}
		if prev != 0 {
			if k, err := s.font.Kern(&s.buf, prev, g, s.ppem, font.HintingNone); err == nil {
				w += k
			}
		}
		w += adv
		prev = g
	}
	return w
}

func (s *Shaper) ems(v fixed.Int26_6) float32 {
	return float32(v) / float32(s.ppem)
}
