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

// Package testcases provides named intersection problems together with
// their expected solutions.  The cases are shared between the unit tests and
// the tools which draw and export them.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/intersect"
)

type TestCase struct {
	Name string          // lowercase a-z and _ only
	A, B intersect.Shape // B == nil means the self-intersection of A
	Want []vec.Vec2      // expected intersection points, in any order
}

// Intersections computes the intersection points for the test case.
// If B is nil, A must be a cubic Bézier curve and its self-intersection is
// returned.
func (tc TestCase) Intersections() ([]vec.Vec2, error) {
	if tc.B == nil {
		c := tc.A.(intersect.CubicBezier)
		return intersect.CubicSelf(c), nil
	}
	return intersect.Intersect(tc.A, tc.B)
}

// Shapes returns the shapes of the test case.
func (tc TestCase) Shapes() []intersect.Shape {
	if tc.B == nil {
		return []intersect.Shape{tc.A}
	}
	return []intersect.Shape{tc.A, tc.B}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(xy)/2)
	for i := range res {
		res[i] = pt(xy[2*i], xy[2*i+1])
	}
	return res
}
