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
	h3 = math.Sqrt(3) / 2
	k8 = math.Sqrt(0.8)
	k2 = math.Sqrt(0.2)
)

var conicCases = []TestCase{
	{
		Name: "line_circle",
		A:    intersect.Line{A: 0, B: 1, C: 0},
		B:    intersect.Circle{R: 1},
		Want: pts(1, 0, -1, 0),
	},
	{
		Name: "line_circle_tangent",
		A:    intersect.Line{A: 0, B: 1, C: -1},
		B:    intersect.Circle{R: 1},
		Want: pts(0, 1),
	},
	{
		Name: "line_circle_miss",
		A:    intersect.Line{A: 0, B: 1, C: -2},
		B:    intersect.Circle{R: 1},
	},
	{
		Name: "line_ellipse",
		A:    intersect.Line{A: 1, B: 0, C: 0},
		B:    intersect.Ellipse{A: 2, B: 1, Rot: math.Pi / 2},
		Want: pts(0, 2, 0, -2),
	},
	{
		Name: "segment_circle",
		A:    intersect.Segment{P0: pt(-2, 0), P1: pt(0, 0)},
		B:    intersect.Circle{R: 1},
		Want: pts(-1, 0),
	},
	{
		Name: "segment_ellipse",
		A:    intersect.Segment{P0: pt(0, 0), P1: pt(0, 5)},
		B:    intersect.Ellipse{A: 2, B: 1, Rot: math.Pi / 2},
		Want: pts(0, 2),
	},
	{
		Name: "circle_circle",
		A:    intersect.Circle{Center: pt(0, 0), R: 1},
		B:    intersect.Circle{Center: pt(1, 0), R: 1},
		Want: pts(0.5, h3, 0.5, -h3),
	},
	{
		Name: "circle_circle_tangent",
		A:    intersect.Circle{Center: pt(0, 0), R: 1},
		B:    intersect.Circle{Center: pt(2, 0), R: 1},
		Want: pts(1, 0),
	},
	{
		Name: "circle_circle_concentric",
		A:    intersect.Circle{Center: pt(1, 1), R: 1},
		B:    intersect.Circle{Center: pt(1, 1), R: 2},
	},
	{
		Name: "circle_ellipse",
		A:    intersect.Circle{R: 1},
		B:    intersect.Ellipse{A: 2, B: 0.5},
		Want: pts(k8, k2, -k8, k2, k8, -k2, -k8, -k2),
	},
	{
		Name: "ellipse_ellipse",
		A:    intersect.Ellipse{A: 2, B: 1},
		B:    intersect.Ellipse{A: 2, B: 1, Rot: math.Pi / 2},
		Want: pts(k8, k8, -k8, k8, k8, -k8, -k8, -k8),
	},
	{
		Name: "ellipse_ellipse_identical",
		A:    intersect.Ellipse{Center: pt(1, 0), A: 2, B: 1, Rot: 0.5},
		B:    intersect.Ellipse{Center: pt(1, 0), A: 2, B: 1, Rot: 0.5},
	},
}
