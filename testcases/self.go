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

import "seehuhn.de/go/intersect"

var selfCases = []TestCase{
	{
		Name: "loop",
		A:    intersect.CubicBezier{P0: pt(0, 0), P1: pt(2, 2), P2: pt(-1, 2), P3: pt(1, 0)},
		Want: pts(0.5, 0.6),
	},
	{
		Name: "closed_loop",
		A:    intersect.CubicBezier{P0: pt(0, 0), P1: pt(1, 1), P2: pt(-1, 1), P3: pt(0, 0)},
		Want: pts(0, 0),
	},
	{
		Name: "half_loop",
		A:    intersect.CubicBezier{P0: pt(0, 0), P1: pt(1, 1), P2: pt(0.75, 1.5), P3: pt(0.5, 1.5)},
	},
	{
		Name: "s_curve",
		A:    intersect.CubicBezier{P0: pt(0, 0), P1: pt(1, 2), P2: pt(2, -2), P3: pt(3, 0)},
	},
}
