// SPDX-License-Identifier: Unlicense OR MIT

package layout

// List lays out a sequence of elements in a bar, each element
// taking an equal share of the main axis.
type List struct {
	Axis Axis
	// Alignment positions the elements along the main axis when
	// collapsed, and is passed to every element as its hint.
	Alignment Alignment
	// Collapse shrinks every element to its content.
	Collapse bool
	// Len is the number of elements.
	Len int
	// Element returns the widget of the element at index i.
	Element func(i int) Widget
}

func (l List) Layout(hpw float32, hint Alignment) Layout {
	b := Bar{Axis: l.Axis, Alignment: l.Alignment}
	if l.Len > 0 {
		b.Children = make([]Child, l.Len)
	}
	for i := range b.Children {
		b.Children[i] = Child{
			Widget:    l.Element(i),
			Weight:    1,
			Alignment: l.Alignment,
			Collapse:  l.Collapse,
		}
	}
	return b
}
