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

const (
	// paramEps is how far a curve parameter may lie outside [0, 1] and
	// still be accepted.  Accepted parameters are clamped into the domain.
	paramEps = 1e-9

	// pointEps is the relative distance below which two intersection points
	// are considered equal.
	pointEps = 1e-9

	// detEps decides when a 2×2 system is singular, relative to the size of
	// the products forming its determinant.
	detEps = poly.Epsilon * poly.Epsilon
)

// inDomain checks whether the curve parameter t lies in [0, 1], up to
// paramEps.  The clamped value is returned.
func inDomain(t float64) (float64, bool) {
	if !(t >= -paramEps && t <= 1+paramEps) {
		return 0, false
	}
	return min(max(t, 0), 1), true
}

// appendPoint adds p to pts, unless an equal point is already present.
func appendPoint(pts []vec.Vec2, p vec.Vec2) []vec.Vec2 {
	for _, q := range pts {
		tol := pointEps * (1 + max(math.Abs(p.X), math.Abs(p.Y)))
		if math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol {
			return pts
		}
	}
	return append(pts, p)
}

// cross returns the z-component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
