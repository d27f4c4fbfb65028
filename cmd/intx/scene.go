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


package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/intersect"
)

// sceneFile is the TOML representation of a scene.  Example:
//
//	[[shape]]
//	name = "unit"
//	kind = "circle"
//	points = [[0, 0]]
//	params = [1]
//
// Lines are given either by two points or by the coefficients A, B, C of
// A·x + B·y + C = 0.  Ellipses take the semi-axes and an optional rotation
// angle as parameters.
type sceneFile struct {
	Shape []sceneShape `toml:"shape"`
}

type sceneShape struct {
	Name   string      `toml:"name"`
	Kind   string      `toml:"kind"`
	Points [][]float64 `toml:"points"`
	Params []float64   `toml:"params"`
}

type namedShape struct {
	Name  string
	Shape intersect.Shape
}

// pairResult holds the intersections of shapes A and B.
// B is empty for the self-intersection of a cubic.
type pairResult struct {
	A, B   string
	Points []vec.Vec2
}

func readScene(fname string) ([]namedShape, error) {
	var f sceneFile
	md, err := toml.DecodeFile(fname, &f)
	if err != nil {
		return nil, err
	}
	shapes, err := f.shapes(md)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return shapes, nil
}

func parseScene(data string) ([]namedShape, error) {
	var f sceneFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, err
	}
	return f.shapes(md)
}

func (f *sceneFile) shapes(md toml.MetaData) ([]namedShape, error) {
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("unknown key %q", keys[0].String())
	}

	seen := make(map[string]bool)
	res := make([]namedShape, 0, len(f.Shape))
	for i, s := range f.Shape {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("%s%d", s.Kind, i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate shape name %q", name)
		}
		seen[name] = true

		shape, err := s.decode()
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}
		res = append(res, namedShape{Name: name, Shape: shape})
	}
	return res, nil
}

func (s sceneShape) decode() (intersect.Shape, error) {
	pts := make([]vec.Vec2, len(s.Points))
	for i, p := range s.Points {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d has %d coordinates", i+1, len(p))
		}
		pts[i] = vec.Vec2{X: p[0], Y: p[1]}
	}

	switch strings.ToLower(s.Kind) {
	case "line":
		switch {
		case len(pts) == 2 && len(s.Params) == 0:
			return intersect.LineThrough(pts[0], pts[1]), nil
		case len(pts) == 0 && len(s.Params) == 3:
			return intersect.Line{A: s.Params[0], B: s.Params[1], C: s.Params[2]}, nil
		}
		return nil, fmt.Errorf("line needs two points or three parameters")
	case "segment":
		if err := s.check(pts, 2, 0, 0); err != nil {
			return nil, err
		}
		return intersect.Segment{P0: pts[0], P1: pts[1]}, nil
	case "circle":
		if err := s.check(pts, 1, 1, 1); err != nil {
			return nil, err
		}
		return intersect.Circle{Center: pts[0], R: s.Params[0]}, nil
	case "ellipse":
		if err := s.check(pts, 1, 2, 3); err != nil {
			return nil, err
		}
		e := intersect.Ellipse{Center: pts[0], A: s.Params[0], B: s.Params[1]}
		if len(s.Params) == 3 {
			e.Rot = s.Params[2]
		}
		return e, nil
	case "quad":
		if err := s.check(pts, 3, 0, 0); err != nil {
			return nil, err
		}
		return intersect.QuadBezier{P0: pts[0], P1: pts[1], P2: pts[2]}, nil
	case "cubic":
		if err := s.check(pts, 4, 0, 0); err != nil {
			return nil, err
		}
		return intersect.CubicBezier{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}, nil
	}
	return nil, fmt.Errorf("unknown kind %q", s.Kind)
}

func (s sceneShape) check(pts []vec.Vec2, nPoints, minParams, maxParams int) error {
	if len(pts) != nPoints {
		return fmt.Errorf("%s needs %d points, got %d", s.Kind, nPoints, len(pts))
	}
	if len(s.Params) < minParams || len(s.Params) > maxParams {
		return fmt.Errorf("%s: wrong number of parameters (%d)", s.Kind, len(s.Params))
	}
	return nil
}

// sceneIntersections intersects every pair of shapes, in the order in which
// they appear in the scene, followed by the self-intersections of all cubic
// Bézier curves.
func sceneIntersections(shapes []namedShape) ([]pairResult, error) {
	var res []pairResult
	for i, a := range shapes {
		for _, b := range shapes[i+1:] {
			pts, err := intersect.Intersect(a.Shape, b.Shape)
			if err != nil {
				return nil, fmt.Errorf("%s and %s: %w", a.Name, b.Name, err)
			}
			res = append(res, pairResult{A: a.Name, B: b.Name, Points: pts})
		}
	}
	for _, a := range shapes {
		if c, ok := a.Shape.(intersect.CubicBezier); ok {
			res = append(res, pairResult{A: a.Name, Points: intersect.CubicSelf(c)})
		}
	}
	return res, nil
}

func printResults(w io.Writer, res []pairResult) {
	for _, r := range res {
		if r.B == "" {
			fmt.Fprintf(w, "%s (self):", r.A)
		} else {
			fmt.Fprintf(w, "%s × %s:", r.A, r.B)
		}
		if len(r.Points) == 0 {
			fmt.Fprint(w, " none")
		}
		for _, p := range r.Points {
			fmt.Fprintf(w, " (%.9g, %.9g)", p.X, p.Y)
		}
		fmt.Fprintln(w)
	}
}
