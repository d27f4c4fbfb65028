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

// LineLine returns the intersection point of two lines.
// Parallel and identical lines have no intersection points.
func LineLine(l1, l2 Line) []vec.Vec2 {
	det := l1.A*l2.B - l2.A*l1.B
	scale := (math.Abs(l1.A) + math.Abs(l1.B)) * (math.Abs(l2.A) + math.Abs(l2.B))
	if math.Abs(det) <= detEps*scale {
		return nil
	}
	p := vec.Vec2{
		X: (l1.B*l2.C - l2.B*l1.C) / det,
		Y: (l1.C*l2.A - l2.C*l1.A) / det,
	}
	return []vec.Vec2{p}
}

// LineSegment returns the intersection point of a line and a segment.
// A segment which lies on the line, or has length zero, gives no points.
func LineSegment(l Line, s Segment) []vec.Vec2 {
	d := s.P1.Sub(s.P0)
	den := l.A*d.X + l.B*d.Y
	scale := (math.Abs(l.A) + math.Abs(l.B)) * (math.Abs(d.X) + math.Abs(d.Y))
	if scale == 0 || math.Abs(den) <= detEps*scale {
		return nil
	}
	t, ok := inDomain(-(l.A*s.P0.X + l.B*s.P0.Y + l.C) / den)
	if !ok {
		return nil
	}
	return []vec.Vec2{s.Eval(t)}
}

// SegmentSegment returns the intersection point of two segments.
// Parallel and overlapping segments give no points.
func SegmentSegment(s1, s2 Segment) []vec.Vec2 {
	d1 := s1.P1.Sub(s1.P0)
	d2 := s2.P1.Sub(s2.P0)
	det := cross(d1, d2)
	scale := (math.Abs(d1.X) + math.Abs(d1.Y)) * (math.Abs(d2.X) + math.Abs(d2.Y))
	if scale == 0 || math.Abs(det) <= detEps*scale {
		return nil
	}

	w := s2.P0.Sub(s1.P0)
	t1, ok1 := inDomain(cross(w, d2) / det)
	_, ok2 := inDomain(cross(w, d1) / det)
	if !ok1 || !ok2 {
		return nil
	}
	return []vec.Vec2{s1.Eval(t1)}
}
