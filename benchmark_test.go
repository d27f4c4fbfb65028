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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/intersect/poly"
)

func BenchmarkLineCircle(b *testing.B) {
	l := Line{A: 1, B: 2, C: -1}
	c := Circle{Center: pt(0.5, 0.5), R: 2}
	b.ReportAllocs()
	for b.Loop() {
		LineCircle(l, c)
	}
}

func BenchmarkEllipseEllipse(b *testing.B) {
	e1 := Ellipse{Center: pt(0.3, 0.1), A: 3, B: 1, Rot: 0.2}
	e2 := Ellipse{Center: pt(-0.4, 0.5), A: 2.5, B: 0.8, Rot: 1.3}
	b.ReportAllocs()
	for b.Loop() {
		EllipseEllipse(e1, e2)
	}
}

func BenchmarkCurves(b *testing.B) {
	q := QuadBezier{pt(0, 1), pt(1.5, -2), pt(3, 1)}
	c1 := CubicBezier{pt(0, 0), pt(3, 4), pt(5, -3), pt(8, 2)}
	c2 := CubicBezier{pt(0, 2), pt(6, -4), pt(2, 6), pt(8, -1)}

	b.Run("QuadQuad", func(b *testing.B) {
		for b.Loop() {
			QuadQuad(arch, q)
		}
	})
	b.Run("QuadCubic", func(b *testing.B) {
		for b.Loop() {
			QuadCubic(q, wave)
		}
	})
	b.Run("CubicCubic", func(b *testing.B) {
		for b.Loop() {
			CubicCubic(c1, c2)
		}
	})
}

func BenchmarkSolvePolynomial(b *testing.B) {
	p := poly.Polynomial{1}
	for _, r := range []float64{-4, -3, -2, -1, 0.5, 1, 2, 3, 4} {
		p = p.Mul(poly.Polynomial{-r, 1})
	}
	b.ReportAllocs()
	for b.Loop() {
		poly.SolvePolynomial(p, nil)
	}
}

// BenchmarkPathIntersections intersects two overlapping "O" shapes,
// each made of eight cubic Bézier curves.
func BenchmarkPathIntersections(b *testing.B) {
	sizes := []float64{1, 100}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%g", size), func(b *testing.B) {
			p := makeOPath(0, 0, 0.45*size, 0.30*size)
			q := makeOPath(0.4*size, 0.1*size, 0.45*size, 0.30*size)

			b.ReportAllocs()
			for b.Loop() {
				if _, err := PathIntersections(p, q); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// makeOPath creates an "O" shape path.
// Outer circle is counter-clockwise, inner circle is clockwise.
func makeOPath(cx, cy, outerR, innerR float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = addCircleToPath(yield, cx, cy, outerR, false) &&
			addCircleToPath(yield, cx, cy, innerR, true)
	}
}

// addCircleToPath adds a circle to a path using cubic Bézier curves.
// The return value is false if the consumer stopped the iteration.
func addCircleToPath(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, clockwise bool) bool {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r
	center := vec.Vec2{X: cx, Y: cy}

	var buf [3]vec.Vec2 // reused for each yield

	// start at the right, then go around in four quarter circles
	a := vec.Vec2{X: 1, Y: 0}
	buf[0] = center.Add(a.Mul(r))
	if !yield(path.CmdMoveTo, buf[:1]) {
		return false
	}
	for range 4 {
		b := vec.Vec2{X: -a.Y, Y: a.X}
		if clockwise {
			b = vec.Vec2{X: a.Y, Y: -a.X}
		}
		buf[0] = center.Add(a.Mul(r)).Add(b.Mul(kr))
		buf[1] = center.Add(b.Mul(r)).Add(a.Mul(kr))
		buf[2] = center.Add(b.Mul(r))
		if !yield(path.CmdCubeTo, buf[:3]) {
			return false
		}
		a = b
	}
	return yield(path.CmdClose, nil)
}
