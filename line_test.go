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

	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// checkPoints verifies that got and want contain the same points, up to
// order and the given tolerance.
func checkPoints(t *testing.T, got, want []vec.Vec2, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Errorf("got %d points %v, want %d points %v", len(got), got, len(want), want)
		return
	}
	used := make([]bool, len(got))
outer:
	for _, w := range want {
		for i, g := range got {
			if !used[i] && g.Sub(w).Length() <= tol {
				used[i] = true
				continue outer
			}
		}
		t.Errorf("missing point %v in %v", w, got)
	}
}

func TestLineThrough(t *testing.T) {
	p, q := pt(1, 2), pt(4, -1)
	l := LineThrough(p, q)
	for _, v := range []vec.Vec2{p, q, pt(2.5, 0.5)} {
		if r := l.A*v.X + l.B*v.Y + l.C; math.Abs(r) > 1e-12 {
			t.Errorf("%v not on line: residual %g", v, r)
		}
	}
}

func TestLineLine(t *testing.T) {
	cases := []struct {
		name   string
		l1, l2 Line
		want   []vec.Vec2
	}{
		{"crossing", Line{1, 1, -2}, Line{1, -1, 0}, []vec.Vec2{pt(1, 1)}},
		{"axes", Line{1, 0, 0}, Line{0, 1, 0}, []vec.Vec2{pt(0, 0)}},
		{"steep", Line{1000, 1, -1000}, Line{0, 1, -5}, []vec.Vec2{pt(0.995, 5)}},
		{"parallel", Line{1, 1, 0}, Line{2, 2, -1}, nil},
		{"identical", Line{1, -2, 3}, Line{1, -2, 3}, nil},
		{"identical scaled", Line{1, -2, 3}, Line{-2, 4, -6}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkPoints(t, LineLine(c.l1, c.l2), c.want, 1e-12)
		})
	}
}

func TestLineSegment(t *testing.T) {
	cases := []struct {
		name string
		l    Line
		s    Segment
		want []vec.Vec2
	}{
		{"hit", Line{0, 1, -1}, Segment{pt(0, 0), pt(2, 2)}, []vec.Vec2{pt(1, 1)}},
		{"end point", Line{0, 1, -2}, Segment{pt(0, 0), pt(2, 2)}, []vec.Vec2{pt(2, 2)}},
		{"miss", Line{0, 1, -3}, Segment{pt(0, 0), pt(2, 2)}, nil},
		{"parallel", Line{1, -1, 1}, Segment{pt(0, 0), pt(2, 2)}, nil},
		{"on line", Line{1, -1, 0}, Segment{pt(0, 0), pt(2, 2)}, nil},
		{"zero length", Line{1, 0, -1}, Segment{pt(1, 1), pt(1, 1)}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkPoints(t, LineSegment(c.l, c.s), c.want, 1e-12)
		})
	}
}

func TestSegmentSegment(t *testing.T) {
	cases := []struct {
		name   string
		s1, s2 Segment
		want   []vec.Vec2
	}{
		{"cross", Segment{pt(0, 0), pt(2, 2)}, Segment{pt(0, 2), pt(2, 0)}, []vec.Vec2{pt(1, 1)}},
		{"touch", Segment{pt(0, 0), pt(1, 1)}, Segment{pt(1, 1), pt(2, 0)}, []vec.Vec2{pt(1, 1)}},
		{"T junction", Segment{pt(0, 0), pt(4, 0)}, Segment{pt(1, 0), pt(1, 3)}, []vec.Vec2{pt(1, 0)}},
		{"short", Segment{pt(0, 0), pt(0.9, 0.9)}, Segment{pt(0, 2), pt(2, 0)}, nil},
		{"outside second", Segment{pt(0, 0), pt(2, 2)}, Segment{pt(3, -1), pt(5, -3)}, nil},
		{"parallel", Segment{pt(0, 0), pt(2, 2)}, Segment{pt(0, 1), pt(2, 3)}, nil},
		{"overlapping", Segment{pt(0, 0), pt(2, 2)}, Segment{pt(1, 1), pt(3, 3)}, nil},
		{"zero length", Segment{pt(1, 1), pt(1, 1)}, Segment{pt(0, 2), pt(2, 0)}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkPoints(t, SegmentSegment(c.s1, c.s2), c.want, 1e-12)
			checkPoints(t, SegmentSegment(c.s2, c.s1), c.want, 1e-12)
		})
	}
}
