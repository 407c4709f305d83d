// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Bar lays out child widgets in a row or column, partitioning the
// main axis according to their weights.
type Bar struct {
	// Axis is the main axis, either Horizontal or Vertical.
	// Vertical bars run from top to bottom.
	Axis Axis
	// Alignment positions the group of children along the main
	// axis when collapsed children leave space unused.
	Alignment Alignment
	Children  []Child
}

// Child is the descriptor for a Bar child.
type Child struct {
	Widget Widget
	// Weight is the share of the main axis given to the child,
	// relative to the sum of the weights of all children. It
	// must be at least 1.
	Weight int
	// Alignment is passed to the child as its alignment hint.
	Alignment Alignment
	// Collapse shrinks the space taken by the child along the
	// main axis to the extent of its visible content.
	Collapse bool
	// Inset pads the child inside its share of the bar.
	Inset Inset
}

// HBar returns a horizontal bar.
func HBar(a Alignment, children ...Child) Bar {
	return Bar{Axis: Horizontal, Alignment: a, Children: children}
}

// VBar returns a vertical bar.
func VBar(a Alignment, children ...Child) Bar {
	return Bar{Axis: Vertical, Alignment: a, Children: children}
}

// Flexed returns a bar child with the given weight.
func Flexed(weight int, w Widget) Child {
	return Child{Widget: w, Weight: weight}
}

// Collapsed returns a bar child with the given weight that
// shrinks to its content.
func Collapsed(weight int, w Widget) Child {
	return Child{Widget: w, Weight: weight, Collapse: true}
}

// WeightSum returns the sum of the children's weights.
func (b Bar) WeightSum() int {
	sum := 0
	for _, c := range b.Children {
		sum += c.Weight
	}
	return sum
}

// Along returns the alignment of b along its main axis.
func (b Bar) Along() Align {
	if b.Axis == Horizontal {
		return b.Alignment.Horizontal
	}
	return b.Alignment.Vertical
}
