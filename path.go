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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PathShapes splits a path into its pieces: a [Segment] for every
// straight line, a [QuadBezier] or [CubicBezier] for every curve, and a
// closing [Segment] for every closed subpath whose end point differs from
// its start point.  Commands before the first MoveTo are ignored.
func PathShapes(p path.Path) []Bounded {
	var res []Bounded

	var current, start vec.Vec2
	inSubpath := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			res = append(res, Segment{P0: current, P1: pts[0]})
			current = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			res = append(res, QuadBezier{P0: current, P1: pts[0], P2: pts[1]})
			current = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			res = append(res, CubicBezier{P0: current, P1: pts[0], P2: pts[1], P3: pts[2]})
			current = pts[2]

		case path.CmdClose:
			if inSubpath && current != start {
				res = append(res, Segment{P0: current, P1: start})
			}
			current = start
		}
	}
	return res
}

// PathIntersections returns the points where the path p crosses the path q.
// Every piece of p is intersected with every piece of q whose bounding box
// overlaps its own.  Points where consecutive pieces join are found twice
// but reported once.
func PathIntersections(p, q path.Path) ([]vec.Vec2, error) {
	as := PathShapes(p)
	bs := PathShapes(q)

	var res []vec.Vec2
	for _, a := range as {
		boxA := a.Bounds()
		for _, b := range bs {
			if !Overlaps(boxA, b.Bounds()) {
				continue
			}
			pts, err := Intersect(a, b)
			if err != nil {
				return nil, err
			}
			for _, pt := range pts {
				res = appendPoint(res, pt)
			}
		}
	}
	return res, nil
}
