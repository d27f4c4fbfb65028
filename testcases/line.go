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

var lineCases = []TestCase{
	{
		Name: "line_line",
		A:    intersect.Line{A: 1, B: 1, C: -2},
		B:    intersect.Line{A: 1, B: -1, C: 0},
		Want: pts(1, 1),
	},
	{
		Name: "line_line_parallel",
		A:    intersect.Line{A: 1, B: 1, C: 0},
		B:    intersect.Line{A: 2, B: 2, C: -1},
	},
	{
		Name: "line_line_identical",
		A:    intersect.Line{A: 1, B: -2, C: 3},
		B:    intersect.Line{A: -2, B: 4, C: -6},
	},
	{
		Name: "line_segment",
		A:    intersect.Line{A: 0, B: 1, C: -1},
		B:    intersect.Segment{P0: pt(0, 0), P1: pt(2, 2)},
		Want: pts(1, 1),
	},
	{
		Name: "line_segment_miss",
		A:    intersect.Line{A: 0, B: 1, C: -3},
		B:    intersect.Segment{P0: pt(0, 0), P1: pt(2, 2)},
	},
	{
		Name: "segment_segment",
		A:    intersect.Segment{P0: pt(0, 0), P1: pt(2, 2)},
		B:    intersect.Segment{P0: pt(0, 2), P1: pt(2, 0)},
		Want: pts(1, 1),
	},
	{
		Name: "segment_segment_touch",
		A:    intersect.Segment{P0: pt(0, 0), P1: pt(1, 1)},
		B:    intersect.Segment{P0: pt(1, 1), P1: pt(2, 0)},
		Want: pts(1, 1),
	},
	{
		Name: "segment_segment_short",
		A:    intersect.Segment{P0: pt(0, 0), P1: pt(0.9, 0.9)},
		B:    intersect.Segment{P0: pt(0, 2), P1: pt(2, 0)},
	},
}
