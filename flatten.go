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
)

// Flatten approximates a shape by straight line segments and calls emit for
// each of them, in order along the shape.  The distance between the shape
// and its approximation is at most tolerance, which must be > 0.
// Lines are unbounded and produce no segments.
func Flatten(s Shape, tolerance float64, emit func(from, to vec.Vec2)) {
	switch s := s.(type) {
	case Segment:
		emit(s.P0, s.P1)
	case Circle:
		flattenEllipse(s.ellipse(), tolerance, emit)
	case Ellipse:
		flattenEllipse(s, tolerance, emit)
	case QuadBezier:
		flattenQuadratic(s, tolerance, emit)
	case CubicBezier:
		flattenCubic(s, tolerance, emit)
	}
}

// flattenQuadratic uses n segments, where n is chosen from the size of the
// second difference (P0 - 2*P1 + P2) / 4.
func flattenQuadratic(q QuadBezier, tolerance float64, emit func(from, to vec.Vec2)) {
	e := q.P0.Sub(q.P1.Mul(2)).Add(q.P2).Mul(0.25)

	n := 1
	if err := e.Length(); err > tolerance {
		n = int(math.Ceil(math.Sqrt(err / tolerance)))
	}
	emitPolyline(q.Eval, n, emit)
}

// flattenCubic chooses the number of segments using Wang's formula.
func flattenCubic(c CubicBezier, tolerance float64, emit func(from, to vec.Vec2)) {
	d1 := c.P0.Sub(c.P1.Mul(2)).Add(c.P2)
	d2 := c.P1.Sub(c.P2.Mul(2)).Add(c.P3)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		if nFloat := math.Sqrt(3 * m / (4 * tolerance)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}
	emitPolyline(c.Eval, n, emit)
}

// flattenEllipse uses equal angle steps.  A chord spanning the angle θ on a
// circle of radius r deviates from the arc by r·(1 - cos(θ/2)); the larger
// semi-axis is used for r.
func flattenEllipse(e Ellipse, tolerance float64, emit func(from, to vec.Vec2)) {
	r := max(math.Abs(e.A), math.Abs(e.B))
	n := 4
	if r > tolerance {
		theta := 2 * math.Acos(1-tolerance/r)
		n = max(n, int(math.Ceil(2*math.Pi/theta)))
	}
	emitPolyline(func(t float64) vec.Vec2 {
		return e.Eval(2 * math.Pi * t)
	}, n, emit)
}

// emitPolyline evaluates f at n+1 equally spaced points in [0, 1] and emits
// the segments between them.
func emitPolyline(f func(float64) vec.Vec2, n int, emit func(from, to vec.Vec2)) {
	prev := f(0)
	for i := 1; i <= n; i++ {
		pt := f(float64(i) / float64(n))
		emit(prev, pt)
		prev = pt
	}
}
