// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"fmt"
	"image/color"

	"github.com/hudkit/hud/f32"
)

// Shape is a drawable primitive. Use Text and Image to
// construct one.
type Shape struct {
	Kind Kind
	// Transform maps the [-1, 1] box of the shape to its parent.
	Transform f32.Transform
	// Text is the string drawn by a TextShape.
	Text string
	// Src names the image drawn by an ImageShape.
	Src string
	// Color tints the shape. The zero value leaves the choice
	// to the renderer.
	Color color.NRGBA
}

// Kind distinguishes the shape variants.
type Kind uint8

const (
	TextShape Kind = iota
	ImageShape
)

// Text returns a shape drawing s into the box of t.
func Text(t f32.Transform, s string) Shape {
	return Shape{Kind: TextShape, Transform: t, Text: s}
}

// Image returns a shape drawing the image named src into the
// box of t.
func Image(t f32.Transform, src string) Shape {
	return Shape{Kind: ImageShape, Transform: t, Src: src}
}

// WithColor returns s tinted with c.
func (s Shape) WithColor(c color.NRGBA) Shape {
	s.Color = c
	return s
}

// Compose returns s with its transform composed with the parent
// transform t.
func (s Shape) Compose(t f32.Transform) Shape {
	s.Transform = t.Mul(s.Transform)
	return s
}

// Bounds returns the axis-aligned bounds of the shape's box in
// its parent coordinates.
func (s Shape) Bounds() f32.Rectangle {
	return s.Transform.Bounds(f32.Unit)
}

func (s Shape) String() string {
	switch s.Kind {
	case TextShape:
		return fmt.Sprintf("text(%q, %v)", s.Text, s.Transform)
	case ImageShape:
		return fmt.Sprintf("image(%q, %v)", s.Src, s.Transform)
	default:
		return fmt.Sprintf("shape(%d)", s.Kind)
	}
}

func (k Kind) String() string {
	switch k {
	case TextShape:
		return "Text"
	case ImageShape:
		return "Image"
	default:
		panic("unreachable")
	}
}
