// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/layout"
)

// barSlot is the scratch space for resolving a Bar child.
type barSlot struct {
	// share is the child's fraction of the bar's main axis.
	share float32
	// footprint is the length taken along the main axis, in the
	// [-1, 1] units of the bar.
	footprint float32
	// content holds the child margins in its padded box, without
	// the padding.
	content Margins
	// outer holds the child margins including padding.
	outer Margins
}

// resolve builds the subtree for w. The local transform of the
// returned node is set by the caller.
func resolve(w layout.Widget, hpw float32, hint layout.Alignment) *Node {
	if w == nil {
		panic("scene: nil widget")
	}
	n := &Node{Widget: w}
	switch l := w.Layout(hpw, hint).(type) {
	case layout.Shapes:
		n.terminal = true
		n.shapes = l
		n.Margins = shapeMargins(l)
	case layout.Absolute:
		n.resolveAbsolute(l, hpw)
	case layout.Bar:
		n.resolveBar(l, hpw)
	case nil:
		panic(fmt.Sprintf("scene: %T returned a nil layout", w))
	default:
		panic(fmt.Sprintf("scene: %T returned unsupported layout %T", w, l))
	}
	return n
}

func (n *Node) resolveAbsolute(l layout.Absolute, hpw float32) {
	if len(l) == 0 {
		n.Margins = emptyMargins
		return
	}
	n.Children = make([]*Node, len(l))
	var content f32.Rectangle
	hasContent := false
	for i, p := range l {
		b := p.Transform.Bounds(f32.Unit)
		c := resolve(p.Widget, hpw*b.Dy()/b.Dx(), layout.Center)
		c.local = p.Transform
		n.Children[i] = c
		if c.Margins.empty() {
			continue
		}
		r := p.Transform.Bounds(c.Margins.Content())
		if hasContent {
			content = content.Union(r)
		} else {
			content = r
			hasContent = true
		}
	}
	if !hasContent {
		n.Margins = emptyMargins
		return
	}
	n.Margins = boundsMargins(content)
}

func (n *Node) resolveBar(b layout.Bar, hpw float32) {
	if b.Axis != layout.Horizontal && b.Axis != layout.Vertical {
		panic(fmt.Sprintf("scene: bar with unsupported axis %d", b.Axis))
	}
	if len(b.Children) == 0 {
		n.Margins = emptyMargins
		return
	}
	inv := 1 / float32(b.WeightSum())
	n.Children = make([]*Node, len(b.Children))
	slots := make([]barSlot, len(b.Children))
	// Children are resolved first: their margins determine the
	// footprint of collapsed children and thereby every position.
	var total float32
	for i, c := range b.Children {
		s := barSlot{share: float32(c.Weight) * inv}
		ratio := hpw / s.share
		if b.Axis == layout.Vertical {
			ratio = hpw * s.share
		}
		child := resolve(c.Widget, c.Inset.Ratio(ratio), c.Alignment)
		n.Children[i] = child
		s.content = child.Margins.inset(c.Inset)
		s.outer = s.content.pad(c.Inset)
		s.footprint = 2 * s.share
		if c.Collapse {
			s.footprint = s.share * (2 - s.content.lead(b.Axis) - s.content.trail(b.Axis))
			if s.footprint < 0 {
				s.footprint = 0
			}
		}
		total += s.footprint
		slots[i] = s
	}
	offset := b.Along().Offset(total)
	for i, c := range b.Children {
		s := slots[i]
		center := offset + s.share
		if c.Collapse {
			// Move the blank lead of the child out of its slot.
			center -= s.share * s.content.lead(b.Axis)
		}
		offset += s.footprint
		var t f32.Transform
		if b.Axis == layout.Horizontal {
			t = f32.Offset(center, 0).Mul(f32.ScaleXY(s.share, 1))
		} else {
			t = f32.Offset(0, -center).Mul(f32.ScaleXY(1, s.share))
		}
		n.Children[i].local = t.Mul(c.Inset.Transform())
	}
	n.Margins = barMargins(b, slots)
}

// barMargins derives the margins of a bar from its children. The
// main axis margins come from the outermost children that are not
// collapsed; the cross axis margins are the smallest among all
// children.
func barMargins(b layout.Bar, slots []barSlot) Margins {
	notCollapsed := func(c layout.Child) bool { return !c.Collapse }
	var lead, trail float32
	if first := slices.IndexFunc(b.Children, notCollapsed); first >= 0 {
		last := first
		for i := len(b.Children) - 1; i > first; i-- {
			if notCollapsed(b.Children[i]) {
				last = i
				break
			}
		}
		lead = slots[first].outer.lead(b.Axis) * slots[first].share
		trail = slots[last].outer.trail(b.Axis) * slots[last].share
	}
	cross := slots[0].outer
	for _, s := range slots[1:] {
		cross.Top = min(cross.Top, s.outer.Top)
		cross.Right = min(cross.Right, s.outer.Right)
		cross.Bottom = min(cross.Bottom, s.outer.Bottom)
		cross.Left = min(cross.Left, s.outer.Left)
	}
	var m Margins
	if b.Axis == layout.Horizontal {
		m = Margins{Top: cross.Top, Right: trail, Bottom: cross.Bottom, Left: lead}
	} else {
		m = Margins{Top: lead, Right: cross.Right, Bottom: trail, Left: cross.Left}
	}
	return m.clamp()
}
