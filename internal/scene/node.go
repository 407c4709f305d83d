// SPDX-License-Identifier: Unlicense OR MIT

// Package scene implements the presentation tree derived from a
// widget tree: layout resolution, empty margin tracking, dirty
// tracking, hit testing and event dispatch.
//
// A tree is never patched. Any change to widget state is applied by
// building a new tree from the root widget.
package scene

import (
	"github.com/hudkit/hud/f32"
	"github.com/hudkit/hud/layout"
	"github.com/hudkit/hud/op/paint"
)

// Node is an element of the presentation tree.
type Node struct {
	// Transform maps the node box to normalized device
	// coordinates. It equals the parent's Transform composed with
	// the node's local transform.
	Transform f32.Transform
	// Widget is the widget the node was resolved from.
	Widget   layout.Widget
	Children []*Node
	// Shapes holds the drawable primitives of a terminal node,
	// with absolute transforms.
	Shapes []paint.Shape
	// Margins describes the part of the node box not covered by
	// any shape.
	Margins Margins

	local    f32.Transform
	shapes   layout.Shapes
	terminal bool
	dirty    bool
}

// Build resolves the widget tree rooted at w for a viewport whose
// height is hpw times its width.
func Build(w layout.Widget, hpw float32) *Node {
	n := resolve(w, hpw, layout.Center)
	n.place(f32.Transform{})
	return n
}

// place computes the absolute transforms of n and its descendants.
func (n *Node) place(parent f32.Transform) {
	n.Transform = parent.Mul(n.local)
	if n.terminal {
		n.Shapes = make([]paint.Shape, len(n.shapes))
		for i, s := range n.shapes {
			n.Shapes[i] = s.Compose(n.Transform)
		}
	}
	for _, c := range n.Children {
		c.place(n.Transform)
	}
}

// Terminal reports whether n was resolved from a Shapes layout.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Local returns the transform of n relative to its parent.
func (n *Node) Local() f32.Transform {
	return n.local
}

// MarkDirty schedules a rebuild of the tree containing n.
func (n *Node) MarkDirty() {
	n.dirty = true
}

// Dirty reports whether the tree rooted at n must be rebuilt,
// either because a node was marked dirty or because its widget
// needs a rebuild. The scan stops at the first positive answer.
func (n *Node) Dirty() bool {
	if n.dirty {
		return true
	}
	if a, ok := n.Widget.(layout.Animator); ok && a.NeedsRebuild() {
		return true
	}
	for _, c := range n.Children {
		if c.Dirty() {
			return true
		}
	}
	return false
}

// AppendShapes appends the shapes of the tree rooted at n to dst,
// in drawing order: a node draws below its children, and earlier
// siblings draw below later ones.
func (n *Node) AppendShapes(dst []paint.Shape) []paint.Shape {
	dst = append(dst, n.Shapes...)
	for _, c := range n.Children {
		dst = c.AppendShapes(dst)
	}
	return dst
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	count := 1
	for _, c := range n.Children {
		count += c.Count()
	}
	return count
}
