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

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrNoConvergence is returned by [SolvePolynomial] if Bairstow's method
// fails to extract a quadratic factor within the iteration limit.
// It indicates loss of precision, not the absence of roots.
var ErrNoConvergence = errors.New("poly: Bairstow iteration did not converge")

// Options control the iterative solver used by [SolvePolynomial].
type Options struct {
	// Tolerance is the convergence threshold for the corrections of the
	// quadratic factor x² - Alpha1·x - Alpha0.
	Tolerance float64

	// MaxIterations bounds the number of corrections per attempt.
	MaxIterations int

	// Restarts is the number of additional attempts, each from a different
	// starting factor, before a factor is given up.
	Restarts int

	// Alpha0 and Alpha1 define the starting factor x² - Alpha1·x - Alpha0
	// of the first attempt.
	Alpha0, Alpha1 float64
}

// DefaultOptions are used when nil is passed for the options.
var DefaultOptions = Options{
	Tolerance:     Epsilon,
	MaxIterations: 100,
	Restarts:      8,
	Alpha0:        -1,
	Alpha1:        0.25,
}

// SolvePolynomial returns the real roots of the polynomial with the given
// coefficients, in ascending order of degree.  If opt is nil,
// [DefaultOptions] are used.
//
// Real quadratic factors are extracted using Bairstow's method until at most
// a quadratic remains.  Roots are reported in the order in which the factors
// were found, each root once.  If a factor does not converge from any of the
// starting values, [ErrNoConvergence] is returned.
func SolvePolynomial(coeffs []float64, opt *Options) ([]float64, error) {
	if opt == nil {
		opt = &DefaultOptions
	}
	tol := opt.Tolerance
	if tol <= 0 {
		tol = Epsilon
	}

	orig := Polynomial(coeffs).Trim()
	if len(orig) <= 1 {
		return nil, nil
	}

	var xs []float64

	// roots at zero
	c := orig
	scale := c.MaxAbs()
	for len(c) > 1 && isZero(c[0], scale) {
		if len(xs) == 0 {
			xs = append(xs, 0)
		}
		c = c[1:]
	}

	// work on a monic copy
	c = append(Polynomial(nil), c...)
	floats.Scale(1/c[len(c)-1], c)

	alpha0, alpha1 := opt.Alpha0, opt.Alpha1
	for n := len(c) - 1; n > 2; n -= 2 {
		var d Polynomial
		var ok bool
		for attempt := 0; attempt <= opt.Restarts; attempt++ {
			a0, a1 := startFactor(alpha0, alpha1, attempt)
			d, a0, a1, ok = bairstow(c, a0, a1, tol, opt.MaxIterations)
			if ok {
				alpha0, alpha1 = a0, a1
				break
			}
			logger().Debug("Bairstow restart",
				"degree", n, "attempt", attempt)
		}
		if !ok {
			logger().Debug("Bairstow failed", "degree", n,
				"iterations", opt.MaxIterations, "restarts", opt.Restarts)
			return nil, fmt.Errorf("degree %d factor: %w", n, ErrNoConvergence)
		}

		disc := alpha1*alpha1 + 4*alpha0
		switch {
		case isZero(disc, alpha1*alpha1+4*math.Abs(alpha0)):
			xs = append(xs, alpha1/2)
		case disc > 0:
			sq := math.Sqrt(disc)
			xs = append(xs, (alpha1-sq)/2, (alpha1+sq)/2)
		}

		c = d[2:]
	}

	switch len(c) {
	case 2:
		xs = append(xs, -c[0]/c[1])
	case 3:
		xs = append(xs, SolveQuadratic(c[2], c[1], c[0])...)
	}

	return unique(polish(orig, xs)), nil
}

// bairstow extracts a quadratic factor x² - a1·x - a0 from the polynomial c,
// of degree n >= 3.  On success, d holds the synthetic division of c by the
// factor: d[2:] are the coefficients of the quotient.
func bairstow(c Polynomial, a0, a1, tol float64, maxIter int) (d Polynomial, alpha0, alpha1 float64, ok bool) {
	n := len(c) - 1
	d = make(Polynomial, n+1)
	delta := make(Polynomial, n+1)

	for range maxIter {
		d[n] = c[n]
		d[n-1] = c[n-1] + a1*d[n]
		delta[n-1] = d[n]
		for j := n - 2; j >= 0; j-- {
			d[j] = c[j] + a1*d[j+1] + a0*d[j+2]
		}
		delta[n-2] = d[n-1] + a1*delta[n-1]
		for j := n - 3; j >= 0; j-- {
			delta[j] = d[j+1] + a1*delta[j+1] + a0*delta[j+2]
		}

		det := delta[1]*delta[1] - delta[0]*delta[2]
		inc0 := (d[1]*delta[0] - d[0]*delta[1]) / det
		inc1 := (d[0]*delta[2] - d[1]*delta[1]) / det
		if math.IsNaN(inc0) || math.IsNaN(inc1) || math.IsInf(inc0, 0) || math.IsInf(inc1, 0) {
			return nil, 0, 0, false
		}
		a0 += inc0
		a1 += inc1

		if math.Abs(inc0) <= tol*max(1, math.Abs(a0)) &&
			math.Abs(inc1) <= tol*max(1, math.Abs(a1)) {
			// refresh the division for the final factor
			d[n] = c[n]
			d[n-1] = c[n-1] + a1*d[n]
			for j := n - 2; j >= 0; j-- {
				d[j] = c[j] + a1*d[j+1] + a0*d[j+2]
			}
			return d, a0, a1, true
		}
	}
	return nil, 0, 0, false
}

// startFactor returns the starting factor for the given attempt.
// The first attempt uses the configured values.  Later attempts start from
// factors whose complex roots lie on growing circles at varying angles.
func startFactor(alpha0, alpha1 float64, attempt int) (float64, float64) {
	if attempt == 0 {
		return alpha0, alpha1
	}
	rho := 0.5 + 0.5*float64(attempt)
	theta := float64(attempt) * 2 * math.Pi / 7
	return -rho * rho, 2 * rho * math.Cos(theta)
}
