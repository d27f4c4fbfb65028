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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/intersect/poly"
)

// Bounded is implemented by all shapes except [Line].
type Bounded interface {
	Shape
	Bounds() rect.Rect
}

// Overlaps reports whether two bounding boxes have at least one point in
// common.  This can be used to skip pairs of shapes which cannot
// intersect.
func Overlaps(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx &&
		a.LLy <= b.URy && b.LLy <= a.URy
}

// Bounds returns the bounding box of the segment.
func (s Segment) Bounds() rect.Rect {
	return boxOf(s.P0, s.P1)
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() rect.Rect {
	r := math.Abs(c.R)
	return rect.Rect{
		LLx: c.Center.X - r,
		LLy: c.Center.Y - r,
		URx: c.Center.X + r,
		URy: c.Center.Y + r,
	}
}

// Bounds returns the bounding box of the ellipse.
func (e Ellipse) Bounds() rect.Rect {
	s, c := math.Sincos(e.Rot)
	hx := math.Hypot(e.A*c, e.B*s)
	hy := math.Hypot(e.A*s, e.B*c)
	return rect.Rect{
		LLx: e.Center.X - hx,
		LLy: e.Center.Y - hy,
		URx: e.Center.X + hx,
		URy: e.Center.Y + hy,
	}
}

// Bounds returns the bounding box of the curve.
// The box is tight, and is not just the hull of the control points.
func (q QuadBezier) Bounds() rect.Rect {
	return bezierBounds(q)
}

// Bounds returns the bounding box of the curve.
// The box is tight, and is not just the hull of the control points.
func (c CubicBezier) Bounds() rect.Rect {
	return bezierBounds(c)
}

// bezierBounds includes the end points and all points where one of the
// coordinate functions has a local extremum inside the curve.
func bezierBounds(b bezier) rect.Rect {
	x, y := b.coeffs()
	pts := []vec.Vec2{b.Eval(0), b.Eval(1)}
	for _, p := range []poly.Polynomial{x, y} {
		d := p.Deriv()
		for len(d) < 3 {
			d = append(d, 0)
		}
		for _, t := range poly.SolveQuadratic(d[2], d[1], d[0]) {
			if t > 0 && t < 1 {
				pts = append(pts, b.Eval(t))
			}
		}
	}
	return boxOf(pts...)
}

func boxOf(pts ...vec.Vec2) rect.Rect {
	r := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range pts {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}
