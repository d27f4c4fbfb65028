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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/intersect/poly"
)

const (
	// degreeEps is the size below which a power basis coefficient of a
	// normalised curve is treated as zero.
	degreeEps = 1e-9

	// coincidentEps decides when the resultant of two curves vanishes
	// identically, relative to a bound for its coefficients.
	coincidentEps = 1e-12

	// matchEps is the largest distance, in normalised coordinates, between
	// the two curves at a recovered pair of parameters.
	matchEps = 1e-6
)

// lineCurve returns the parameters in [0, 1] where b meets the line l.
func lineCurve(l Line, b bezier) []float64 {
	x, y := b.coeffs()
	p := x.Scale(l.A).Add(y.Scale(l.B))
	p[0] += l.C

	scale := (math.Abs(l.A)+math.Abs(l.B))*(x.MaxAbs()+y.MaxAbs()) + math.Abs(l.C)
	if p.MaxAbs() <= poly.Epsilon*scale {
		// b lies on l
		return nil
	}

	ts, _ := p.Roots(nil) // degree <= 3
	var res []float64
	for _, t := range ts {
		if t, ok := inDomain(t); ok {
			res = append(res, t)
		}
	}
	return res
}

func lineBezier(l Line, b bezier) []vec.Vec2 {
	var pts []vec.Vec2
	for _, t := range lineCurve(l, b) {
		pts = appendPoint(pts, b.Eval(t))
	}
	return pts
}

func segmentBezier(s Segment, b bezier) []vec.Vec2 {
	d := s.P1.Sub(s.P0)
	dd := d.Dot(d)
	if dd == 0 {
		return nil
	}

	var pts []vec.Vec2
	for _, t := range lineCurve(LineThrough(s.P0, s.P1), b) {
		p := b.Eval(t)
		if _, ok := inDomain(p.Sub(s.P0).Dot(d) / dd); ok {
			pts = appendPoint(pts, p)
		}
	}
	return pts
}

// LineQuad returns the intersection points of a line and a quadratic Bézier
// curve.
func LineQuad(l Line, q QuadBezier) []vec.Vec2 {
	return lineBezier(l, q)
}

// LineCubic returns the intersection points of a line and a cubic Bézier
// curve.
func LineCubic(l Line, c CubicBezier) []vec.Vec2 {
	return lineBezier(l, c)
}

// SegmentQuad returns the intersection points of a segment and a quadratic
// Bézier curve.
func SegmentQuad(s Segment, q QuadBezier) []vec.Vec2 {
	return segmentBezier(s, q)
}

// SegmentCubic returns the intersection points of a segment and a cubic
// Bézier curve.
func SegmentCubic(s Segment, c CubicBezier) []vec.Vec2 {
	return segmentBezier(s, c)
}

// conicBezier intersects the ellipse e with the curve b.  The curve is
// mapped into the frame where e is the unit circle, and the equation
// u(t)² + v(t)² = 1 is solved for the curve parameter.
func conicBezier(e Ellipse, b bezier) ([]vec.Vec2, error) {
	if e.degenerate() {
		return nil, nil
	}
	inv, ok := invert(e.frame())
	if !ok {
		return nil, nil
	}

	x, y := b.coeffs()
	u := x.Scale(inv[0]).Add(y.Scale(inv[2]))
	u[0] += inv[4]
	v := x.Scale(inv[1]).Add(y.Scale(inv[3]))
	v[0] += inv[5]

	p := u.Mul(u).Add(v.Mul(v))
	p[0] -= 1
	uMax, vMax := u.MaxAbs(), v.MaxAbs()
	if p.MaxAbs() <= poly.Epsilon*(1+uMax*uMax+vMax*vMax) {
		// b has collapsed to a point on e
		return nil, nil
	}

	ts, err := p.Roots(nil)
	if err != nil {
		return nil, err
	}
	var pts []vec.Vec2
	for _, t := range ts {
		if t, ok := inDomain(t); ok {
			pts = appendPoint(pts, b.Eval(t))
		}
	}
	return pts, nil
}

// CircleQuad returns the intersection points of a circle and a quadratic
// Bézier curve.
func CircleQuad(c Circle, q QuadBezier) []vec.Vec2 {
	return EllipseQuad(c.ellipse(), q)
}

// EllipseQuad returns the intersection points of an ellipse and a quadratic
// Bézier curve.
func EllipseQuad(e Ellipse, q QuadBezier) []vec.Vec2 {
	pts, _ := conicBezier(e, q) // quartic, closed form
	return pts
}

// CircleCubic returns the intersection points of a circle and a cubic
// Bézier curve.  This requires the iterative solver; if it fails to converge,
// an error wrapping [poly.ErrNoConvergence] is returned.
func CircleCubic(c Circle, b CubicBezier) ([]vec.Vec2, error) {
	return EllipseCubic(c.ellipse(), b)
}

// EllipseCubic returns the intersection points of an ellipse and a cubic
// Bézier curve.  This requires the iterative solver; if it fails to converge,
// an error wrapping [poly.ErrNoConvergence] is returned.
func EllipseCubic(e Ellipse, c CubicBezier) ([]vec.Vec2, error) {
	pts, err := conicBezier(e, c)
	if err != nil {
		return nil, fmt.Errorf("ellipse-cubic: %w", err)
	}
	return pts, nil
}

// QuadQuad returns the intersection points of two quadratic Bézier curves.
// Overlapping curves give no points.
func QuadQuad(q1, q2 QuadBezier) []vec.Vec2 {
	pts, _ := bezierBezier(q1, q2) // quartic, closed form
	return pts
}

// QuadCubic returns the intersection points of a quadratic and a cubic
// Bézier curve.  Overlapping curves give no points.  If the iterative
// solver fails to converge, an error wrapping [poly.ErrNoConvergence] is
// returned.
func QuadCubic(q QuadBezier, c CubicBezier) ([]vec.Vec2, error) {
	pts, err := bezierBezier(q, c)
	if err != nil {
		return nil, fmt.Errorf("quad-cubic: %w", err)
	}
	return pts, nil
}

// CubicCubic returns the intersection points of two cubic Bézier curves.
// Overlapping curves give no points.  If the iterative solver fails to
// converge, an error wrapping [poly.ErrNoConvergence] is returned.
//
// Use [CubicSelf] to find the self-intersection of a single curve.
func CubicCubic(c1, c2 CubicBezier) ([]vec.Vec2, error) {
	pts, err := bezierBezier(c1, c2)
	if err != nil {
		return nil, fmt.Errorf("cubic-cubic: %w", err)
	}
	return pts, nil
}

// bezierBezier intersects two Bézier curves.
//
// The parameter t of the curve with lower degree n is eliminated from the
// equations a(t) = b(s) using the n×n Bézout matrix, whose determinant is
// a polynomial in s.  For each root s, the matching t is recovered by
// inverting a at the point b(s), and the point is only accepted if both
// parameters lie in [0, 1].
func bezierBezier(a, b bezier) ([]vec.Vec2, error) {
	center, scale := normalization(a.points(), b.points())
	ax, ay := normalize(a, center, scale)
	bx, by := normalize(b, center, scale)

	na := effectiveDegree(ax, ay)
	nb := effectiveDegree(bx, by)
	if nb < na {
		a, b = b, a
		ax, ay, bx, by = bx, by, ax, ay
		na, nb = nb, na
	}
	if na == 0 {
		return nil, nil
	}
	ax, ay = ax[:na+1], ay[:na+1]
	bx, by = bx[:nb+1], by[:nb+1]

	res, bound := bezoutResultant(ax, ay, bx, by)
	if res.MaxAbs() <= coincidentEps*bound {
		Logger().Debug("coincident curves", "degree", [2]int{na, nb})
		return nil, nil
	}

	ss, err := res.Roots(nil)
	if err != nil {
		return nil, err
	}

	var pts []vec.Vec2
	for _, s := range ss {
		s, ok := inDomain(s)
		if !ok {
			continue
		}
		q := vec.Vec2{X: bx.Eval(s), Y: by.Eval(s)}
		if _, ok := invertCurve(ax, ay, q); !ok {
			continue
		}
		pts = appendPoint(pts, b.Eval(s))
	}
	return pts, nil
}

// bezoutResultant eliminates t from the equations
// ax(t) = bx(s) and ay(t) = by(s).  The returned polynomial in s vanishes
// where the two equations have a common solution t.  The second return
// value is an upper bound for the size of the coefficients, used to detect
// a resultant which vanishes identically.
func bezoutResultant(ax, ay, bx, by poly.Polynomial) (poly.Polynomial, float64) {
	n := len(ax) - 1

	// ax(t) - bx(s) = Σ p_i·t^i, and similarly for y.  Only p_0 and q_0
	// depend on s.
	p := make([]poly.Polynomial, n+1)
	q := make([]poly.Polynomial, n+1)
	for i := 1; i <= n; i++ {
		p[i] = poly.Polynomial{ax[i]}
		q[i] = poly.Polynomial{ay[i]}
	}
	p[0] = poly.Polynomial{ax[0]}.Sub(bx)
	q[0] = poly.Polynomial{ay[0]}.Sub(by)

	m := func(i, j int) poly.Polynomial {
		return p[i].Mul(q[j]).Sub(p[j].Mul(q[i]))
	}

	bez := make([][]poly.Polynomial, n)
	bound := 1.0
	for i := range n {
		bez[i] = make([]poly.Polynomial, n)
		rowSum := 0.0
		for j := range n {
			for k := 0; k <= min(i, j); k++ {
				if l := i + j + 1 - k; l <= n {
					bez[i][j] = bez[i][j].Add(m(k, l))
				}
			}
			rowSum += bez[i][j].MaxAbs()
		}
		bound *= rowSum
	}

	return det(bez), bound
}

// det computes the determinant of a small square matrix of polynomials,
// by expansion along the first row.
func det(a [][]poly.Polynomial) poly.Polynomial {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}

	var res poly.Polynomial
	minor := make([][]poly.Polynomial, n-1)
	for j := range n {
		for i := range minor {
			row := a[i+1]
			minor[i] = append(append([]poly.Polynomial(nil), row[:j]...), row[j+1:]...)
		}
		term := a[0][j].Mul(det(minor))
		if j%2 == 0 {
			res = res.Add(term)
		} else {
			res = res.Sub(term)
		}
	}
	return res
}

// invertCurve finds the parameter t in [0, 1] where the curve (x(t), y(t))
// is closest to q.  Candidates are the solutions of x(t) = q.X and
// y(t) = q.Y, and the two end points.  The second return value is false if
// the curve does not pass through q.
func invertCurve(x, y poly.Polynomial, q vec.Vec2) (float64, bool) {
	cand := []float64{0, 1}
	xs, _ := x.Sub(poly.Polynomial{q.X}).Roots(nil)
	ys, _ := y.Sub(poly.Polynomial{q.Y}).Roots(nil)
	cand = append(cand, xs...)
	cand = append(cand, ys...)

	best := math.Inf(1)
	var bestT float64
	for _, t := range cand {
		t, ok := inDomain(t)
		if !ok {
			continue
		}
		d := math.Hypot(x.Eval(t)-q.X, y.Eval(t)-q.Y)
		if d < best {
			best, bestT = d, t
		}
	}
	return bestT, best <= matchEps
}

// normalization returns the center and half-size of the bounding box of the
// given control points.
func normalization(a, b []vec.Vec2) (vec.Vec2, float64) {
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for _, pts := range [][]vec.Vec2{a, b} {
		for _, p := range pts {
			xMin, xMax = min(xMin, p.X), max(xMax, p.X)
			yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
		}
	}
	center := vec.Vec2{X: (xMin + xMax) / 2, Y: (yMin + yMax) / 2}
	scale := max(xMax-xMin, yMax-yMin) / 2
	if scale == 0 {
		scale = 1
	}
	return center, scale
}

// normalize returns the power basis coefficients of b after translating by
// -center and scaling by 1/scale.
func normalize(b bezier, center vec.Vec2, scale float64) (x, y poly.Polynomial) {
	x, y = b.coeffs()
	x[0] -= center.X
	y[0] -= center.Y
	return x.Scale(1 / scale), y.Scale(1 / scale)
}

// effectiveDegree returns the degree of the curve (x(t), y(t)), ignoring
// negligible leading coefficients.
func effectiveDegree(x, y poly.Polynomial) int {
	n := len(x) - 1
	for n > 0 && math.Abs(x[n]) <= degreeEps && math.Abs(y[n]) <= degreeEps {
		n--
	}
	return n
}
