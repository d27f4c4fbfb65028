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

// Package poly finds the real roots of polynomials with real coefficients.
//
// Equations up to degree four are solved in closed form, see
// [SolveQuadratic], [SolveCubic] and [SolveQuartic]. Higher degrees use
// Bairstow's method, see [SolvePolynomial]. Only real roots are reported;
// complex roots are discarded.
//
// All functions are pure and safe for concurrent use.
package poly

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the default convergence tolerance of the iterative solver.
//
// The same value controls all discriminant tests: a discriminant d which is
// computed from terms of magnitude s is treated as zero if |d| <= Epsilon²·s.
// Since a discriminant is a squared quantity, this merges roots which are
// closer than about Epsilon relative to their size.
const Epsilon = 1e-7

// isZero reports whether d is zero, relative to the magnitude s of the terms
// it was computed from.
func isZero(d, s float64) bool {
	return math.Abs(d) <= Epsilon*Epsilon*s
}

// Polynomial holds the coefficients of a polynomial in ascending order:
// p[0] + p[1]·x + p[2]·x² + ...
type Polynomial []float64

// Degree returns the degree of p, ignoring exactly zero leading
// coefficients. The zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	n := len(p) - 1
	for n >= 0 && p[n] == 0 {
		n--
	}
	return n
}

// Eval evaluates p at x, using Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// Deriv returns the derivative of p.
func (p Polynomial) Deriv() Polynomial {
	if len(p) <= 1 {
		return Polynomial{0}
	}
	d := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}
	return d
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	res := make(Polynomial, max(len(p), len(q)))
	copy(res, p)
	for i, c := range q {
		res[i] += c
	}
	return res
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	res := make(Polynomial, max(len(p), len(q)))
	copy(res, p)
	for i, c := range q {
		res[i] -= c
	}
	return res
}

// Mul returns the product p·q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	res := make(Polynomial, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			res[i+j] += a * b
		}
	}
	return res
}

// Scale returns c·p.
func (p Polynomial) Scale(c float64) Polynomial {
	res := make(Polynomial, len(p))
	copy(res, p)
	floats.Scale(c, res)
	return res
}

// MaxAbs returns the largest absolute value of the coefficients of p.
func (p Polynomial) MaxAbs() float64 {
	if len(p) == 0 {
		return 0
	}
	return floats.Norm(p, math.Inf(1))
}

// Trim returns p without its negligible leading coefficients.
// A coefficient is negligible if it is zero relative to the largest
// coefficient of p.  The result shares storage with p.
// Trim returns nil for the zero polynomial.
func (p Polynomial) Trim() Polynomial {
	s := p.MaxAbs()
	if s == 0 {
		return nil
	}
	n := len(p)
	for n > 0 && isZero(p[n-1], s) {
		n--
	}
	return p[:n]
}

// Roots returns the real roots of p.
//
// After negligible leading coefficients have been removed, equations up to
// degree four are solved in closed form and higher degrees use
// [SolvePolynomial] with the given options.  An error is only returned
// if Bairstow's method fails to converge.
// The zero polynomial and non-zero constants have no roots.
func (p Polynomial) Roots(opt *Options) ([]float64, error) {
	q := p.Trim()
	switch len(q) {
	case 0, 1:
		return nil, nil
	case 2:
		return []float64{-q[0] / q[1]}, nil
	case 3:
		return SolveQuadratic(q[2], q[1], q[0]), nil
	case 4:
		return SolveCubic(q[0], q[1], q[2], q[3]), nil
	case 5:
		return SolveQuartic(q[0], q[1], q[2], q[3], q[4]), nil
	}
	return SolvePolynomial(q, opt)
}

// polish refines the roots xs of p with a few Newton steps.
// A step is only kept if it reduces the residual.
func polish(p Polynomial, xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	dp := p.Deriv()
	for i, x := range xs {
		fx := math.Abs(p.Eval(x))
		for range 4 {
			if fx == 0 {
				break
			}
			d := dp.Eval(x)
			if d == 0 {
				break
			}
			x1 := x - p.Eval(x)/d
			f1 := math.Abs(p.Eval(x1))
			if !(f1 < fx) {
				break
			}
			x, fx = x1, f1
		}
		xs[i] = x
	}
	return xs
}

// unique removes roots which coincide with an earlier root, up to the
// relative tolerance Epsilon.  The order of the remaining roots is kept.
func unique(xs []float64) []float64 {
	res := xs[:0]
outer:
	for _, x := range xs {
		for _, y := range res {
			if scalar.EqualWithinAbsOrRel(x, y, Epsilon, Epsilon) {
				continue outer
			}
		}
		res = append(res, x)
	}
	if len(res) == 0 {
		return nil
	}
	return res
}
