// seehuhn.de/go/intersect - intersections of lines, conics and Bézier curves
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package intersect

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/intersect/poly"
)

// Shape is one of the primitives [Line], [Segment], [Circle], [Ellipse],
// [QuadBezier] or [CubicBezier].
type Shape interface {
	isShape()
}

// Line is the set of points (x, y) with A·x + B·y + C = 0.
// At least one of A and B must be non-zero.
type Line struct {
	A, B, C float64
}

// LineThrough returns the line through p and q.
// If p == q, the result is degenerate and intersects nothing.
func LineThrough(p, q vec.Vec2) Line {
	return Line{
		A: q.Y - p.Y,
		B: p.X - q.X,
		C: q.X*p.Y - p.X*q.Y,
	}
}

// Segment is the straight line segment from P0 (t=0) to P1 (t=1).
type Segment struct {
	P0, P1 vec.Vec2
}

// Eval returns the point at parameter t.
func (s Segment) Eval(t float64) vec.Vec2 {
	return s.P0.Add(s.P1.Sub(s.P0).Mul(t))
}

// Circle is the circle with the given center and radius R >= 0,
// parametrised by the angle t as Center + R·(cos t, sin t).
type Circle struct {
	Center vec.Vec2
	R      float64
}

// Eval returns the point at angle t.
func (c Circle) Eval(t float64) vec.Vec2 {
	s, co := math.Sincos(t)
	return vec.Vec2{X: c.Center.X + c.R*co, Y: c.Center.Y + c.R*s}
}

// ellipse returns c as an axis-aligned ellipse.
func (c Circle) ellipse() Ellipse {
	return Ellipse{Center: c.Center, A: c.R, B: c.R}
}

// Ellipse is an ellipse with semi-axes A and B, rotated counter-clockwise by
// the angle Rot (in radians) around its center.  The ellipse is parametrised
// by the angle t as
//
//	x = Center.X + A·cos(Rot)·cos(t) - B·sin(Rot)·sin(t)
//	y = Center.Y + A·sin(Rot)·cos(t) + B·cos(Rot)·sin(t)
type Ellipse struct {
	Center vec.Vec2
	A, B   float64
	Rot    float64
}

// Eval returns the point at angle t.
func (e Ellipse) Eval(t float64) vec.Vec2 {
	s, c := math.Sincos(t)
	return apply(e.frame(), vec.Vec2{X: c, Y: s})
}

// QuadBezier is a quadratic Bézier curve with control points P0, P1, P2.
type QuadBezier struct {
	P0, P1, P2 vec.Vec2
}

// Eval returns the point at parameter t.
func (q QuadBezier) Eval(t float64) vec.Vec2 {
	s := 1 - t
	return q.P0.Mul(s * s).Add(q.P1.Mul(2 * s * t)).Add(q.P2.Mul(t * t))
}

// coeffs returns the coordinate functions of q in the power basis.
func (q QuadBezier) coeffs() (x, y poly.Polynomial) {
	c1 := q.P1.Sub(q.P0).Mul(2)
	c2 := q.P0.Sub(q.P1.Mul(2)).Add(q.P2)
	x = poly.Polynomial{q.P0.X, c1.X, c2.X}
	y = poly.Polynomial{q.P0.Y, c1.Y, c2.Y}
	return x, y
}

func (q QuadBezier) points() []vec.Vec2 {
	return []vec.Vec2{q.P0, q.P1, q.P2}
}

// CubicBezier is a cubic Bézier curve with control points P0, ..., P3.
type CubicBezier struct {
	P0, P1, P2, P3 vec.Vec2
}

// Eval returns the point at parameter t.
func (c CubicBezier) Eval(t float64) vec.Vec2 {
	s := 1 - t
	s2 := s * s
	t2 := t * t
	return c.P0.Mul(s2 * s).Add(c.P1.Mul(3 * s2 * t)).Add(c.P2.Mul(3 * s * t2)).Add(c.P3.Mul(t2 * t))
}

// coeffs returns the coordinate functions of c in the power basis.
func (c CubicBezier) coeffs() (x, y poly.Polynomial) {
	c1 := c.P1.Sub(c.P0).Mul(3)
	c2 := c.P0.Sub(c.P1.Mul(2)).Add(c.P2).Mul(3)
	c3 := c.P3.Sub(c.P0).Add(c.P1.Sub(c.P2).Mul(3))
	x = poly.Polynomial{c.P0.X, c1.X, c2.X, c3.X}
	y = poly.Polynomial{c.P0.Y, c1.Y, c2.Y, c3.Y}
	return x, y
}

func (c CubicBezier) points() []vec.Vec2 {
	return []vec.Vec2{c.P0, c.P1, c.P2, c.P3}
}

// bezier is implemented by QuadBezier and CubicBezier.
type bezier interface {
	Eval(t float64) vec.Vec2
	coeffs() (x, y poly.Polynomial)
	points() []vec.Vec2
}

func (Line) isShape()        {}
func (Segment) isShape()     {}
func (Circle) isShape()      {}
func (Ellipse) isShape()     {}
func (QuadBezier) isShape()  {}
func (CubicBezier) isShape() {}
