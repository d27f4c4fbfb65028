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

package poly

import "math"

// SolveQuadratic returns the real roots of a·x² + b·x + c = 0 in ascending
// order.
//
// If a is negligible compared to b and c, the linear equation b·x + c = 0 is
// solved instead.  A double root is reported once.  The equation 0 = 0 has
// no isolated roots and yields nil.
func SolveQuadratic(a, b, c float64) []float64 {
	if a == 0 || isZero(a, max(math.Abs(b), math.Abs(c))) {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}

	disc := b*b - 4*a*c
	if isZero(disc, b*b+math.Abs(4*a*c)) {
		return []float64{-b / (2 * a)}
	}
	if disc < 0 {
		return nil
	}

	// Avoid cancellation, see e.g.
	// https://math.stackexchange.com/questions/866331
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	x1 := q / a
	x2 := c / q
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	return []float64{x1, x2}
}

// SolveCubic returns the real roots of a0 + a1·x + a2·x² + a3·x³ = 0.
//
// The equation is divided by a3 and solved with Cardano's formula if there is
// a single real root, or with the trigonometric form if there are three.
// Multiple roots are reported once.  If a3 is negligible, the quadratic
// equation is solved instead.
func SolveCubic(a0, a1, a2, a3 float64) []float64 {
	if a3 == 0 || isZero(a3, max(math.Abs(a0), math.Abs(a1), math.Abs(a2))) {
		return SolveQuadratic(a2, a1, a0)
	}
	p := Polynomial{a0 / a3, a1 / a3, a2 / a3, 1}
	a0, a1, a2 = p[0], p[1], p[2]

	q := (3*a1 - a2*a2) / 9
	r := (9*a2*a1 - 27*a0 - 2*a2*a2*a2) / 54
	q3 := q * q * q
	disc := q3 + r*r
	shift := -a2 / 3

	var xs []float64
	switch {
	case isZero(disc, math.Abs(q3)+r*r):
		// a double or triple root
		s := math.Cbrt(r)
		xs = []float64{shift + 2*s, shift - s}
	case disc > 0:
		// one real root, the two complex roots are discarded
		sq := math.Sqrt(disc)
		xs = []float64{shift + math.Cbrt(r+sq) + math.Cbrt(r-sq)}
	default:
		m := 2 * math.Sqrt(-q)
		theta := math.Acos(clamp(r/math.Sqrt(-q3), -1, 1))
		xs = []float64{
			m*math.Cos(theta/3) + shift,
			m*math.Cos((theta+2*math.Pi)/3) + shift,
			m*math.Cos((theta+4*math.Pi)/3) + shift,
		}
	}
	return unique(polish(p, xs))
}

// cubicRoot returns one real root of the monic cubic a0 + a1·x + a2·x² + x³.
// If there are three real roots, the largest one is returned.
func cubicRoot(a0, a1, a2 float64) float64 {
	q := (3*a1 - a2*a2) / 9
	r := (9*a2*a1 - 27*a0 - 2*a2*a2*a2) / 54
	q3 := q * q * q
	disc := q3 + r*r
	shift := -a2 / 3

	if disc >= 0 || isZero(disc, math.Abs(q3)+r*r) {
		sq := math.Sqrt(max(disc, 0))
		return shift + math.Cbrt(r+sq) + math.Cbrt(r-sq)
	}
	theta := math.Acos(clamp(r/math.Sqrt(-q3), -1, 1))
	return 2*math.Sqrt(-q)*math.Cos(theta/3) + shift
}

// SolveQuartic returns the real roots of
// a0 + a1·x + a2·x² + a3·x³ + a4·x⁴ = 0.
//
// The equation is solved using Ferrari's method: one real root of the
// resolvent cubic splits the quartic into two quadratic factors.  A factor
// with negative discriminant contributes no roots, a factor with zero
// discriminant contributes its double root once.  If a4 is negligible, the
// cubic equation is solved instead.
func SolveQuartic(a0, a1, a2, a3, a4 float64) []float64 {
	if a4 == 0 || isZero(a4, max(math.Abs(a0), math.Abs(a1), math.Abs(a2), math.Abs(a3))) {
		return SolveCubic(a0, a1, a2, a3)
	}
	p := Polynomial{a0 / a4, a1 / a4, a2 / a4, a3 / a4, 1}
	a0, a1, a2, a3 = p[0], p[1], p[2], p[3]

	y1 := cubicRoot(4*a2*a0-a1*a1-a3*a3*a0, a1*a3-4*a0, -a2)

	rSq := a3*a3/4 - a2 + y1
	var r, dSq, eSq, scale float64
	if rSq <= 0 || isZero(rSq, a3*a3/4+math.Abs(a2)+math.Abs(y1)) {
		inner := y1*y1 - 4*a0
		if isZero(inner, y1*y1+4*math.Abs(a0)) {
			inner = 0
		} else if inner < 0 {
			return nil
		}
		front := a3*a3*3/4 - 2*a2
		back := 2 * math.Sqrt(inner)
		dSq = front + back
		eSq = front - back
		scale = a3*a3*3/4 + 2*math.Abs(a2) + back
	} else {
		r = math.Sqrt(rSq)
		front := a3*a3*3/4 - rSq - 2*a2
		back := (4*a3*a2 - 8*a1 - a3*a3*a3) / (4 * r)
		dSq = front + back
		eSq = front - back
		scale = a3*a3*3/4 + rSq + 2*math.Abs(a2) + math.Abs(back)
	}

	var xs []float64
	xs = appendPair(xs, -a3/4+r/2, dSq, scale)
	xs = appendPair(xs, -a3/4-r/2, eSq, scale)
	return unique(polish(p, xs))
}

// appendPair appends the roots base ± sqrt(dSq)/2 to xs.
func appendPair(xs []float64, base, dSq, scale float64) []float64 {
	switch {
	case isZero(dSq, scale):
		return append(xs, base)
	case dSq > 0:
		d := math.Sqrt(dSq) / 2
		return append(xs, base+d, base-d)
	default:
		return xs
	}
}

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}
