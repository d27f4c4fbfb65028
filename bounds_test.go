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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func closeRect(a, b rect.Rect, tol float64) bool {
	return math.Abs(a.LLx-b.LLx) <= tol && math.Abs(a.LLy-b.LLy) <= tol &&
		math.Abs(a.URx-b.URx) <= tol && math.Abs(a.URy-b.URy) <= tol
}

func TestBounds(t *testing.T) {
	cases := []struct {
		name string
		s    Bounded
		want rect.Rect
	}{
		{"segment", Segment{pt(2, -1), pt(0, 3)}, rect.Rect{LLx: 0, LLy: -1, URx: 2, URy: 3}},
		{"circle", Circle{Center: pt(1, 2), R: 3}, rect.Rect{LLx: -2, LLy: -1, URx: 4, URy: 5}},
		{"ellipse", Ellipse{Center: pt(1, 1), A: 2, B: 1}, rect.Rect{LLx: -1, LLy: 0, URx: 3, URy: 2}},
		{"rotated ellipse", Ellipse{A: 2, B: 1, Rot: math.Pi / 2}, rect.Rect{LLx: -1, LLy: -2, URx: 1, URy: 2}},
		{"arch", arch, rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 1}},
		{"wave", wave, rect.Rect{LLx: 0, LLy: -1, URx: 3, URy: 1}},
		{"loop", CubicBezier{pt(0, 0), pt(2, 2), pt(-1, 2), pt(1, 0)}, rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1.5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.s.Bounds(); !closeRect(got, c.want, 1e-6) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestBoundsContainCurve(t *testing.T) {
	shapes := []Bounded{
		QuadBezier{pt(1, 2), pt(-3, 0), pt(5, 5)},
		CubicBezier{pt(0, 0), pt(3, 4), pt(5, -3), pt(8, 2)},
		Ellipse{Center: pt(1, -2), A: 3, B: 1, Rot: 0.7},
	}
	for _, s := range shapes {
		box := s.Bounds()
		Flatten(s, 0.01, func(a, _ vec.Vec2) {
			if a.X < box.LLx-1e-12 || a.X > box.URx+1e-12 || a.Y < box.LLy-1e-12 || a.Y > box.URy+1e-12 {
				t.Errorf("%v: point %v outside %v", s, a, box)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	a := rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 2}
	cases := []struct {
		b    rect.Rect
		want bool
	}{
		{rect.Rect{LLx: 1, LLy: 1, URx: 3, URy: 3}, true},
		{rect.Rect{LLx: 2, LLy: 0, URx: 3, URy: 1}, true},
		{rect.Rect{LLx: 0.5, LLy: 0.5, URx: 1, URy: 1}, true},
		{rect.Rect{LLx: 3, LLy: 0, URx: 4, URy: 2}, false},
		{rect.Rect{LLx: 0, LLy: -2, URx: 2, URy: -1}, false},
	}
	for _, c := range cases {
		if got := Overlaps(a, c.b); got != c.want {
			t.Errorf("Overlaps(%v, %v) = %t, want %t", a, c.b, got, c.want)
		}
		if got := Overlaps(c.b, a); got != c.want {
			t.Errorf("Overlaps(%v, %v) = %t, want %t", c.b, a, got, c.want)
		}
	}
}
