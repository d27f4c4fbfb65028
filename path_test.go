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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// polyline builds a path through the given points.
func polyline(closed bool, pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

func TestPathShapes(t *testing.T) {
	square := polyline(true, pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2))
	shapes := PathShapes(square)
	if len(shapes) != 4 {
		t.Fatalf("got %d shapes, want 4", len(shapes))
	}
	if s, ok := shapes[3].(Segment); !ok || s.P0 != pt(0, 2) || s.P1 != pt(0, 0) {
		t.Errorf("wrong closing segment %v", shapes[3])
	}

	var curves path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdLineTo, []vec.Vec2{pt(9, 9)}) && // ignored, no current point
			yield(path.CmdMoveTo, []vec.Vec2{pt(0, 0)}) &&
			yield(path.CmdQuadTo, []vec.Vec2{pt(1, 2), pt(2, 0)}) &&
			yield(path.CmdCubeTo, []vec.Vec2{pt(3, -2), pt(4, 2), pt(5, 0)}) &&
			yield(path.CmdClose, nil)
	}
	shapes = PathShapes(curves)
	if len(shapes) != 3 {
		t.Fatalf("got %d shapes, want 3", len(shapes))
	}
	if q, ok := shapes[0].(QuadBezier); !ok || q != arch {
		t.Errorf("got %v, want %v", shapes[0], arch)
	}
	if c, ok := shapes[1].(CubicBezier); !ok || c.P0 != pt(2, 0) || c.P3 != pt(5, 0) {
		t.Errorf("got %v", shapes[1])
	}
	if s, ok := shapes[2].(Segment); !ok || s.P0 != pt(5, 0) || s.P1 != pt(0, 0) {
		t.Errorf("got %v", shapes[2])
	}
}

func TestPathIntersections(t *testing.T) {
	square := polyline(true, pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2))

	cases := []struct {
		name  string
		other path.Path
		want  []vec.Vec2
	}{
		{"horizontal", polyline(false, pt(-1, 1), pt(3, 1)), []vec.Vec2{pt(0, 1), pt(2, 1)}},
		{"diagonal", polyline(false, pt(-1, -1), pt(3, 3)), []vec.Vec2{pt(0, 0), pt(2, 2)}},
		{"inside", polyline(false, pt(0.5, 0.5), pt(1.5, 1.5)), nil},
		{"far away", polyline(true, pt(5, 5), pt(6, 5), pt(6, 6)), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := PathIntersections(square, c.other)
			if err != nil {
				t.Fatal(err)
			}
			checkPoints(t, got, c.want, 1e-12)
		})
	}
}
