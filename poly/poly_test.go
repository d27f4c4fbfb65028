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
	"math"
	"slices"
	"testing"
)

// fromRoots returns the monic polynomial with the given roots.
func fromRoots(roots ...float64) Polynomial {
	p := Polynomial{1}
	for _, r := range roots {
		p = p.Mul(Polynomial{-r, 1})
	}
	return p
}

// checkRoots compares the roots found with the expected ones, ignoring order.
func checkRoots(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Errorf("got %d roots %v, want %d roots %v", len(got), got, len(want), want)
		return
	}
	got = slices.Sorted(slices.Values(got))
	want = slices.Sorted(slices.Values(want))
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("root %d: got %g, want %g (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestEval(t *testing.T) {
	p := Polynomial{1, -2, 3} // 1 - 2x + 3x²
	cases := []struct{ x, y float64 }{
		{0, 1},
		{1, 2},
		{-1, 6},
		{2, 9},
	}
	for _, c := range cases {
		if y := p.Eval(c.x); y != c.y {
			t.Errorf("p(%g) = %g, want %g", c.x, y, c.y)
		}
	}
	if y := Polynomial(nil).Eval(3); y != 0 {
		t.Errorf("empty polynomial evaluates to %g", y)
	}
}

func TestArithmetic(t *testing.T) {
	p := Polynomial{1, 1}  // 1 + x
	q := Polynomial{-1, 1} // -1 + x

	if got, want := p.Mul(q), (Polynomial{-1, 0, 1}); !slices.Equal(got, want) {
		t.Errorf("p·q = %v, want %v", got, want)
	}
	if got, want := p.Add(Polynomial{0, 0, 2}), (Polynomial{1, 1, 2}); !slices.Equal(got, want) {
		t.Errorf("p+q = %v, want %v", got, want)
	}
	if got, want := p.Sub(q), (Polynomial{2, 0}); !slices.Equal(got, want) {
		t.Errorf("p-q = %v, want %v", got, want)
	}
	if got, want := (Polynomial{5, 3, 2, 1}).Deriv(), (Polynomial{3, 4, 3}); !slices.Equal(got, want) {
		t.Errorf("p' = %v, want %v", got, want)
	}
	if got, want := q.Scale(-2), (Polynomial{2, -2}); !slices.Equal(got, want) {
		t.Errorf("-2q = %v, want %v", got, want)
	}
	if q[0] != -1 {
		t.Error("Scale modified its receiver")
	}
}

func TestDegreeAndTrim(t *testing.T) {
	cases := []struct {
		p       Polynomial
		degree  int
		trimmed int
	}{
		{nil, -1, 0},
		{Polynomial{0, 0}, -1, 0},
		{Polynomial{3}, 0, 1},
		{Polynomial{1, 2, 0}, 1, 2},
		{Polynomial{1, 2, 1e-20}, 2, 2},
		{Polynomial{1, 2, 1e-3}, 2, 3},
	}
	for i, c := range cases {
		if d := c.p.Degree(); d != c.degree {
			t.Errorf("%d: degree %d, want %d", i, d, c.degree)
		}
		if n := len(c.p.Trim()); n != c.trimmed {
			t.Errorf("%d: trimmed length %d, want %d", i, n, c.trimmed)
		}
	}
}

func TestRootsDispatch(t *testing.T) {
	cases := []struct {
		name string
		p    Polynomial
		want []float64
	}{
		{"zero", Polynomial{0, 0, 0}, nil},
		{"constant", Polynomial{4}, nil},
		{"linear", Polynomial{-3, 2}, []float64{1.5}},
		{"quadratic", fromRoots(-1, 4), []float64{-1, 4}},
		{"cubic", fromRoots(-1, 0.5, 2), []float64{-1, 0.5, 2}},
		{"quartic", fromRoots(-2, -1, 1, 3), []float64{-2, -1, 1, 3}},
		{"quintic", fromRoots(-2, -1, 0.5, 1, 3), []float64{-2, -1, 0.5, 1, 3}},
		{"negligible lead", append(fromRoots(1, 2), 1e-30), []float64{1, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.p.Roots(nil)
			if err != nil {
				t.Fatal(err)
			}
			checkRoots(t, got, c.want, 1e-9)
		})
	}
}
