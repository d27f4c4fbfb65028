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

// CubicSelf returns the self-intersection point of a cubic Bézier curve.
// The result is empty if the curve has no loop, or if the loop is not
// contained in the parameter range [0, 1].
//
// The two parameters t1 ≠ t2 of a double point are written as t1 = a+b and
// t2 = a-b.  The equation c(t1) = c(t2), divided by t1-t2, then is linear in
// a and b², and can be solved without a general polynomial solver.
func CubicSelf(c CubicBezier) []vec.Vec2 {
	// power basis: c(t) = P0 + c1·t + c2·t² + c3·t³
	c1 := c.P1.Sub(c.P0).Mul(3)
	c2 := c.P0.Sub(c.P1.Mul(2)).Add(c.P2).Mul(3)
	c3 := c.P3.Sub(c.P0).Add(c.P1.Sub(c.P2).Mul(3))

	den := cross(c2, c3)
	c3c3 := c3.Dot(c3)
	if c3c3 == 0 || math.Abs(den) <= detEps*c2.Length()*math.Sqrt(c3c3) {
		// a quadratic or a curve without a loop
		return nil
	}

	// t1 and t2 are the roots of z² - sum·z + prod.
	sum := -cross(c1, c3) / den
	prod := sum*sum + c1.Add(c2.Mul(sum)).Dot(c3)/c3c3
	disc := sum*sum - 4*prod
	if disc <= detEps*sum*sum {
		// cusp or no real double point
		return nil
	}

	a := sum / 2
	b := math.Sqrt(disc) / 2
	t1, ok1 := inDomain(a - b)
	t2, ok2 := inDomain(a + b)
	if !ok1 || !ok2 {
		return nil
	}

	p := c.Eval(t1).Add(c.Eval(t2)).Mul(0.5)
	return []vec.Vec2{p}
}
