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

// Command export writes all test cases, together with the intersection
// points computed for them, to testdata/testcases.json.  The file can be
// used to compare against other implementations.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/intersect"
	"seehuhn.de/go/intersect/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string       `json:"name"`
	Shapes []jsonShape  `json:"shapes"`
	Want   [][2]float64 `json:"want"`
	Got    [][2]float64 `json:"got"`
}

type jsonShape struct {
	Kind   string       `json:"kind"`
	Points [][2]float64 `json:"points,omitempty"` // segment ends, center, or control points
	Params []float64    `json:"params,omitempty"` // line coefficients, radius, or axes and rotation
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	got, err := tc.Intersections()
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name: category + "_" + tc.Name,
		Want: pointsToJSON(tc.Want),
		Got:  pointsToJSON(got),
	}
	for _, s := range tc.Shapes() {
		jtc.Shapes = append(jtc.Shapes, shapeToJSON(s))
	}
	return jtc, nil
}

func shapeToJSON(s intersect.Shape) jsonShape {
	switch s := s.(type) {
	case intersect.Line:
		return jsonShape{Kind: "line", Params: []float64{s.A, s.B, s.C}}
	case intersect.Segment:
		return jsonShape{Kind: "segment", Points: pointsToJSON([]vec.Vec2{s.P0, s.P1})}
	case intersect.Circle:
		return jsonShape{Kind: "circle", Points: pointsToJSON([]vec.Vec2{s.Center}), Params: []float64{s.R}}
	case intersect.Ellipse:
		return jsonShape{Kind: "ellipse", Points: pointsToJSON([]vec.Vec2{s.Center}), Params: []float64{s.A, s.B, s.Rot}}
	case intersect.QuadBezier:
		return jsonShape{Kind: "quad", Points: pointsToJSON([]vec.Vec2{s.P0, s.P1, s.P2})}
	case intersect.CubicBezier:
		return jsonShape{Kind: "cubic", Points: pointsToJSON([]vec.Vec2{s.P0, s.P1, s.P2, s.P3})}
	}
	panic(fmt.Sprintf("unexpected shape %T", s))
}

func pointsToJSON(pts []vec.Vec2) [][2]float64 {
	res := make([][2]float64, len(pts))
	for i, p := range pts {
		res[i] = [2]float64{p.X, p.Y}
	}
	return res
}
