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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Intersect returns the intersection points of two shapes, by calling the
// function for the corresponding pair of primitive kinds.  The arguments
// may be given in either order.
//
// An error is returned if one of the shapes is nil, or if the iterative
// solver fails to converge (see [poly.ErrNoConvergence]).
// Intersect(c, c) for a cubic Bézier curve c does not compute the
// self-intersection; use [CubicSelf] for this.
func Intersect(a, b Shape) ([]vec.Vec2, error) {
	ka, kb := kind(a), kind(b)
	if ka < 0 || kb < 0 {
		return nil, fmt.Errorf("intersect: unsupported shapes %T and %T", a, b)
	}
	if ka > kb {
		a, b = b, a
	}

	switch a := a.(type) {
	case Line:
		switch b := b.(type) {
		case Line:
			return LineLine(a, b), nil
		case Segment:
			return LineSegment(a, b), nil
		case Circle:
			return LineCircle(a, b), nil
		case Ellipse:
			return LineEllipse(a, b), nil
		case QuadBezier:
			return LineQuad(a, b), nil
		case CubicBezier:
			return LineCubic(a, b), nil
		}
	case Segment:
		switch b := b.(type) {
		case Segment:
			return SegmentSegment(a, b), nil
		case Circle:
			return SegmentCircle(a, b), nil
		case Ellipse:
			return SegmentEllipse(a, b), nil
		case QuadBezier:
			return SegmentQuad(a, b), nil
		case CubicBezier:
			return SegmentCubic(a, b), nil
		}
	case Circle:
		switch b := b.(type) {
		case Circle:
			return CircleCircle(a, b), nil
		case Ellipse:
			return CircleEllipse(a, b), nil
		case QuadBezier:
			return CircleQuad(a, b), nil
		case CubicBezier:
			return CircleCubic(a, b)
		}
	case Ellipse:
		switch b := b.(type) {
		case Ellipse:
			return EllipseEllipse(a, b), nil
		case QuadBezier:
			return EllipseQuad(a, b), nil
		case CubicBezier:
			return EllipseCubic(a, b)
		}
	case QuadBezier:
		switch b := b.(type) {
		case QuadBezier:
			return QuadQuad(a, b), nil
		case CubicBezier:
			return QuadCubic(a, b)
		}
	case CubicBezier:
		if b, ok := b.(CubicBezier); ok {
			return CubicCubic(a, b)
		}
	}
	panic("unreachable")
}

// kind orders the primitive types.  Intersect calls the pair function
// with the lower kind first.
func kind(s Shape) int {
	switch s.(type) {
	case Line:
		return 0
	case Segment:
		return 1
	case Circle:
		return 2
	case Ellipse:
		return 3
	case QuadBezier:
		return 4
	case CubicBezier:
		return 5
	default:
		return -1
	}
}
