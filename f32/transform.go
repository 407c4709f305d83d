// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"fmt"
)

// Transform is a 3×3 projective transformation matrix. The zero
// value is the identity transform.
//
// Transforms compose by matrix multiplication: t.Mul(u) applies u
// first, then t.
type Transform struct {
	// m is the row-major matrix minus the identity, so that the
	// zero value represents the identity.
	m [9]float32
}

// Vec3 is a point in homogeneous coordinates.
type Vec3 [3]float32

// NewTransform returns the transform with the given rows.
func NewTransform(rows [3][3]float32) Transform {
	var t Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := rows[i][j]
			if i == j {
				v -= 1
			}
			t.m[i*3+j] = v
		}
	}
	return t
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{}
}

// Scale returns a transform that scales both axes by s.
func Scale(s float32) Transform {
	return ScaleXY(s, s)
}

// ScaleXY returns a transform that scales the X axis by sx
// and the Y axis by sy.
func ScaleXY(sx, sy float32) Transform {
	return Transform{m: [9]float32{
		sx - 1, 0, 0,
		0, sy - 1, 0,
		0, 0, 0,
	}}
}

// Offset returns a transform that translates by (x, y).
func Offset(x, y float32) Transform {
	return Transform{m: [9]float32{
		0, 0, x,
		0, 0, y,
		0, 0, 0,
	}}
}

// Elems returns the rows of the matrix.
func (t Transform) Elems() [3][3]float32 {
	var rows [3][3]float32
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := t.m[i*3+j]
			if i == j {
				v += 1
			}
			rows[i][j] = v
		}
	}
	return rows
}

// Mul returns t·u, the transform that applies u and then t.
func (t Transform) Mul(u Transform) Transform {
	a, b := t.Elems(), u.Elems()
	var r [3][3]float32
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return NewTransform(r)
}

// Apply transforms the homogeneous point v. The caller is
// responsible for the perspective divide.
func (t Transform) Apply(v Vec3) Vec3 {
	a := t.Elems()
	return Vec3{
		a[0][0]*v[0] + a[0][1]*v[1] + a[0][2]*v[2],
		a[1][0]*v[0] + a[1][1]*v[1] + a[1][2]*v[2],
		a[2][0]*v[0] + a[2][1]*v[1] + a[2][2]*v[2],
	}
}

// Transform applies t to p, dividing by the homogeneous
// coordinate.
func (t Transform) Transform(p Point) Point {
	v := t.Apply(Vec3{p.X, p.Y, 1})
	return Point{X: v[0] / v[2], Y: v[1] / v[2]}
}

// Corners returns the corners of r mapped through t, in
// counter-clockwise order starting at r.Min.
func (t Transform) Corners(r Rectangle) [4]Point {
	return [4]Point{
		t.Transform(r.Min),
		t.Transform(Point{X: r.Max.X, Y: r.Min.Y}),
		t.Transform(r.Max),
		t.Transform(Point{X: r.Min.X, Y: r.Max.Y}),
	}
}

// Bounds returns the axis-aligned bounds of r mapped through t.
func (t Transform) Bounds(r Rectangle) Rectangle {
	c := t.Corners(r)
	b := Rectangle{Min: c[0], Max: c[0]}
	for _, p := range c[1:] {
		b = b.Union(Rectangle{Min: p, Max: p})
	}
	return b
}

// Invert returns the inverse of t. The result is undefined if t
// is singular.
func (t Transform) Invert() Transform {
	a := t.Elems()
	c00 := a[1][1]*a[2][2] - a[1][2]*a[2][1]
	c01 := a[1][2]*a[2][0] - a[1][0]*a[2][2]
	c02 := a[1][0]*a[2][1] - a[1][1]*a[2][0]
	det := a[0][0]*c00 + a[0][1]*c01 + a[0][2]*c02
	inv := 1 / det
	return NewTransform([3][3]float32{
		{
			c00 * inv,
			(a[0][2]*a[2][1] - a[0][1]*a[2][2]) * inv,
			(a[0][1]*a[1][2] - a[0][2]*a[1][1]) * inv,
		},
		{
			c01 * inv,
			(a[0][0]*a[2][2] - a[0][2]*a[2][0]) * inv,
			(a[0][2]*a[1][0] - a[0][0]*a[1][2]) * inv,
		},
		{
			c02 * inv,
			(a[0][1]*a[2][0] - a[0][0]*a[2][1]) * inv,
			(a[0][0]*a[1][1] - a[0][1]*a[1][0]) * inv,
		},
	})
}

func (t Transform) String() string {
	a := t.Elems()
	return fmt.Sprintf("[[%g %g %g] [%g %g %g] [%g %g %g]]",
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2])
}
