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

// Package intersect computes the intersection points of pairs of planar
// primitives: lines, line segments, circles, ellipses, and quadratic and
// cubic Bézier curves.
//
// Every pairing is reduced to a polynomial equation in one curve parameter.
// The real roots of this polynomial, found by package
// [seehuhn.de/go/intersect/poly], are checked against the parameter domains
// of both primitives and are then turned back into points.  There is one
// function per pair of primitive kinds, for example [LineCircle] or
// [QuadCubic], and [Intersect] dispatches on the dynamic types of its
// arguments.  [CubicSelf] finds the self-intersection of a cubic Bézier
// curve.
//
// Points are returned in the order in which the roots were processed, not
// in spatial order.  Degenerate configurations, for example parallel lines,
// zero-length segments or coincident curves, yield no points rather than an
// error.  The only error reported is [poly.ErrNoConvergence], for pairs
// which require the iterative solver.
//
// All functions in this package are free of side effects and can be called
// concurrently.
package intersect

//go:generate go run ./testcases/export
