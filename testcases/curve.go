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

package testcases

import (
	"math"

	"seehuhn.de/go/intersect"
)

var (
	arch = intersect.QuadBezier{P0: pt(0, 0), P1: pt(1, 2), P2: pt(2, 0)}
	wave = intersect.CubicBezier{P0: pt(0, -1), P1: pt(1, 3), P2: pt(2, -3), P3: pt(3, 1)}

	r5  = math.Sqrt(0.5)
	d15 = 3 * math.Sqrt(0.15)
)

var curveCases = []TestCase{
	{
		Name: "line_quad",
		A:    intersect.Line{A: 0, B: 1, C: -0.5},
		B:    arch,
		Want: pts(1-r5, 0.5, 1+r5, 0.5),
	},
	{
		Name: "line_quad_apex",
		A:    intersect.Line{A: 0, B: 1, C: -1},
		B:    arch,
		Want: pts(1, 1),
	},
	{
		Name: "line_cubic",
		A:    intersect.Line{A: 0, B: 1, C: 0},
		B:    wave,
		Want: pts(1.5-d15, 0, 1.5, 0, 1.5+d15, 0),
	},
	{
		Name: "segment_quad",
		A:    intersect.Segment{P0: pt(0, 0.5), P1: pt(1, 0.5)},
		B:    arch,
		Want: pts(1-r5, 0.5),
	},
	{
		Name: "segment_cubic",
		A:    intersect.Segment{P0: pt(1, -1), P1: pt(1, 1)},
		B:    wave,
		Want: pts(1, 11.0/27),
	},
	{
		Name: "circle_quad",
		A:    intersect.Circle{Center: pt(1, 0), R: 1},
		B:    arch,
		Want: pts(0, 0, 2, 0, 1, 1),
	},
	{
		Name: "circle_cubic",
		A:    intersect.Circle{Center: pt(1.5, 0), R: 1},
		B:    wave,
		Want: pts(0.5513167019494858, 0.3162277660168378, 2.4486832980504722, -0.3162277660168805),
	},
	{
		Name: "ellipse_cubic",
		A:    intersect.Ellipse{Center: pt(1.5, 0), A: 1.2, B: 0.3, Rot: 0.3},
		B:    wave,
		Want: pts(1.2540395198985819, 0.2349384338836289, 1.74596048010142, -0.23493843388363056),
	},
	{
		Name: "quad_quad",
		A:    arch,
		B:    intersect.QuadBezier{P0: pt(0, 1), P1: pt(1, -1), P2: pt(2, 1)},
		Want: pts(1-r5, 0.5, 1+r5, 0.5),
	},
	{
		Name: "quad_cubic",
		A:    intersect.QuadBezier{P0: pt(0, 0), P1: pt(1.5, 3), P2: pt(3, 0)},
		B:    wave,
		Want: pts(2.810149260495846, 0.3556726101481267),
	},
	{
		Name: "cubic_cubic",
		A:    intersect.CubicBezier{P0: pt(0, 0), P1: pt(3, 4), P2: pt(5, -3), P3: pt(8, 2)},
		B:    intersect.CubicBezier{P0: pt(0, 2), P1: pt(6, -4), P2: pt(2, 6), P3: pt(8, -1)},
		Want: pts(
			1.05847975607277, 1.0154847221348133,
			3.8883929839223708, 0.681056559761051,
			6.661882026919936, 0.44908826087895326,
		),
	},
	{
		Name: "cubic_cubic_mirror",
		A:    wave,
		B:    intersect.CubicBezier{P0: pt(0, 1), P1: pt(1, -3), P2: pt(2, 3), P3: pt(3, -1)},
		Want: pts(1.5-d15, 0, 1.5, 0, 1.5+d15, 0),
	},
	{
		Name: "cubic_cubic_identical",
		A:    wave,
		B:    wave,
	},
}
