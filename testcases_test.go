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

package intersect_test

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/intersect"
	"seehuhn.de/go/intersect/testcases"
)

func TestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				got, err := tc.Intersections()
				if err != nil {
					t.Fatal(err)
				}
				if msg := comparePoints(got, tc.Want, 1e-6); msg != "" {
					t.Error(msg)
				}

				if tc.B == nil {
					return
				}
				rev, err := intersect.Intersect(tc.B, tc.A)
				if err != nil {
					t.Fatal(err)
				}
				if msg := comparePoints(rev, tc.Want, 1e-6); msg != "" {
					t.Errorf("reversed: %s", msg)
				}
			})
		}
	}
}

// comparePoints returns a description of the difference between got and
// want, or the empty string if they agree up to order.
func comparePoints(got, want []vec.Vec2, tol float64) string {
	if len(got) != len(want) {
		return fmt.Sprintf("got %d points %v, want %d points %v", len(got), got, len(want), want)
	}
	used := make([]bool, len(got))
outer:
	for _, w := range want {
		for i, g := range got {
			if !used[i] && g.Sub(w).Length() <= tol {
				used[i] = true
				continue outer
			}
		}
		return fmt.Sprintf("got %v, want %v", got, want)
	}
	return ""
}
