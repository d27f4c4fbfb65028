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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/intersect/poly"
)

// frame returns the affine map which takes the unit circle to e.
func (e Ellipse) frame() matrix.Matrix {
	s, c := math.Sincos(e.Rot)
	return matrix.Matrix{
		e.A * c, e.A * s,
		-e.B * s, e.B * c,
		e.Center.X, e.Center.Y,
	}
}

// degenerate reports whether e has collapsed to a segment or a point.
func (e Ellipse) degenerate() bool {
	return e.A == 0 || e.B == 0
}

// invert returns the inverse of the affine map m.
// The second return value is false if m is singular.
func invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return matrix.Matrix{}, false
	}
	return matrix.Matrix{
		m[3] / det, -m[1] / det,
		-m[2] / det, m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det, (m[1]*m[4] - m[0]*m[5]) / det,
	}, true
}

// apply maps the point v using m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// applyLinear maps the vector v using the linear part of m.
func applyLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// halfAngle converts the roots of p, a polynomial in x = tan(t/2), into
// angles t.  Vanishing leading coefficients of p correspond to the root
// t = π.  If all coefficients of p are negligible compared to scale, the
// two shapes coincide and no angles are returned.
//
// The degree of p must be at most four.
func halfAngle(p poly.Polynomial, scale float64) []float64 {
	if p.MaxAbs() <= poly.Epsilon*scale {
		return nil
	}

	q := p.Trim()
	xs, _ := q.Roots(nil) // closed form, cannot fail
	ts := make([]float64, 0, len(xs)+1)
	for _, x := range xs {
		ts = append(ts, 2*math.Atan(x))
	}
	if len(q) < len(p) {
		ts = append(ts, math.Pi)
	}
	return ts
}

// lineConic returns the angles where e meets the line l.
func lineConic(l Line, e Ellipse) []float64 {
	if e.degenerate() {
		return nil
	}

	// Along the ellipse, A·x + B·y + C = R + P·cos(t) + Q·sin(t).
	s, c := math.Sincos(e.Rot)
	P := e.A * (l.A*c + l.B*s)
	Q := e.B * (l.B*c - l.A*s)
	R := l.A*e.Center.X + l.B*e.Center.Y + l.C

	p := poly.Polynomial{R + P, 2 * Q, R - P}
	return halfAngle(p, math.Abs(R)+math.Abs(P)+math.Abs(Q))
}

// LineCircle returns the intersection points of a line and a circle.
func LineCircle(l Line, c Circle) []vec.Vec2 {
	return LineEllipse(l, c.ellipse())
}

// LineEllipse returns the intersection points of a line and an ellipse.
func LineEllipse(l Line, e Ellipse) []vec.Vec2 {
	var pts []vec.Vec2
	for _, t := range lineConic(l, e) {
		pts = appendPoint(pts, e.Eval(t))
	}
	return pts
}

// SegmentCircle returns the intersection points of a segment and a circle.
func SegmentCircle(s Segment, c Circle) []vec.Vec2 {
	return SegmentEllipse(s, c.ellipse())
}

// SegmentEllipse returns the intersection points of a segment and an
// ellipse.
func SegmentEllipse(s Segment, e Ellipse) []vec.Vec2 {
	d := s.P1.Sub(s.P0)
	dd := d.Dot(d)
	if dd == 0 {
		return nil
	}

	var pts []vec.Vec2
	for _, t := range lineConic(LineThrough(s.P0, s.P1), e) {
		p := e.Eval(t)
		if _, ok := inDomain(p.Sub(s.P0).Dot(d) / dd); ok {
			pts = appendPoint(pts, p)
		}
	}
	return pts
}

// CircleCircle returns the intersection points of two circles.
// Identical circles give no points.
func CircleCircle(c1, c2 Circle) []vec.Vec2 {
	if c1.R == 0 || c2.R == 0 {
		return nil
	}

	// In coordinates where c1 is the unit circle, c2 has center p0 and
	// radius r.  Then |p0 + r·(cos t, sin t)|² = 1 becomes
	// K + r² + 2A·cos(t) + 2B·sin(t) = 0.
	p0 := c2.Center.Sub(c1.Center).Mul(1 / c1.R)
	r := c2.R / c1.R
	K := p0.Dot(p0) - 1
	A := r * p0.X
	B := r * p0.Y

	p := poly.Polynomial{K + r*r + 2*A, 4 * B, K + r*r - 2*A}
	var pts []vec.Vec2
	for _, t := range halfAngle(p, 1+math.Abs(K)+r*r) {
		pts = appendPoint(pts, c2.Eval(t))
	}
	return pts
}

// CircleEllipse returns the intersection points of a circle and an ellipse.
func CircleEllipse(c Circle, e Ellipse) []vec.Vec2 {
	return EllipseEllipse(c.ellipse(), e)
}

// EllipseEllipse returns the intersection points of two ellipses.
// Identical ellipses give no points.
func EllipseEllipse(e1, e2 Ellipse) []vec.Vec2 {
	if e1.degenerate() || e2.degenerate() {
		return nil
	}
	inv, ok := invert(e1.frame())
	if !ok {
		return nil
	}

	// Map e2 into the frame where e1 is the unit circle, giving
	// P(t) = p0 + u·cos(t) + v·sin(t), and solve |P(t)|² = 1.
	f := e2.frame()
	p0 := apply(inv, e2.Center)
	u := applyLinear(inv, vec.Vec2{X: f[0], Y: f[1]})
	v := applyLinear(inv, vec.Vec2{X: f[2], Y: f[3]})

	K := p0.Dot(p0) - 1
	U := u.Dot(u)
	V := v.Dot(v)
	A := p0.Dot(u)
	B := p0.Dot(v)
	W := u.Dot(v)

	p := poly.Polynomial{
		K + U + 2*A,
		4*B + 4*W,
		2*K - 2*U + 4*V,
		4*B - 4*W,
		K + U - 2*A,
	}
	var pts []vec.Vec2
	for _, t := range halfAngle(p, 1+math.Abs(K)+U+V) {
		pts = appendPoint(pts, e2.Eval(t))
	}
	return pts
}
