// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strconv"
	"sync"
	"testing"
)

func TestMeasure(t *testing.T) {
	s := Default()
	if sz := s.Measure(""); sz.Width != 0 || sz.Height <= 0 {
		t.Errorf("empty string: got %+v", sz)
	}
	narrow, wide := s.Measure("ii"), s.Measure("WW")
	if narrow.Width <= 0 || narrow.Width >= wide.Width {
		t.Errorf("widths: got %v for ii and %v for WW", narrow.Width, wide.Width)
	}
	if narrow.Height != wide.Height {
		t.Errorf("line heights differ: %v and %v", narrow.Height, wide.Height)
	}
	one, two := s.Measure("abc"), s.Measure("a\nabc")
	if two.Width != one.Width {
		t.Errorf("multiline width: got %v, want %v", two.Width, one.Width)
	}
	if two.Height != 2*one.Height {
		t.Errorf("multiline height: got %v, want %v", two.Height, 2*one.Height)
	}
}

func TestAspect(t *testing.T) {
	s := Default()
	if a := s.Aspect(""); a != 0 {
		t.Errorf("empty string: got aspect %v", a)
	}
	short, long := s.Aspect("Hi"), s.Aspect("Hello, World")
	if short <= long {
		t.Errorf("longer text is not wider: %v <= %v", short, long)
	}
}

func TestNormalization(t *testing.T) {
	s := Default()
	// U+00E9 and e followed by U+0301 are canonically equivalent.
	if a, b := s.Measure("caf\u00e9"), s.Measure("cafe\u0301"); a != b {
		t.Errorf("equivalent strings measure differently: %+v and %+v", a, b)
	}
}

func TestConcurrentMeasure(t *testing.T) {
	s := Default()
	want := s.Measure("concurrent")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := s.Measure("concurrent"); got != want {
					t.Errorf("got %+v, want %+v", got, want)
				}
				s.Measure(strconv.Itoa(j))
			}
		}()
	}
	wg.Wait()
}

func TestSizeLRU(t *testing.T) {
	c := new(sizeCache)
	put := func(i int) {
		c.Put(strconv.Itoa(i), Size{Width: float32(i)})
	}
	get := func(i int) bool {
		sz, ok := c.Get(strconv.Itoa(i))
		return ok && sz.Width == float32(i)
	}
	for i := 0; i < maxSize; i++ {
		put(i)
	}
	for i := 0; i < maxSize; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	put(maxSize)
	for i := 1; i < maxSize+1; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	if i := 0; get(i) {
		t.Fatalf("key %d was not evicted", i)
	}
}
