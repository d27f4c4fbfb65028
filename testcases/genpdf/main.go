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

// Command genpdf draws every test case, as a PDF file and as a PNG preview.
// The shapes are drawn in black and the computed intersection points are
// marked by grey squares.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/intersect"
	"seehuhn.de/go/intersect/testcases"
)

const (
	outDir = "testdata/scenes"

	pageSize = 200.0 // in PDF points, which are also PNG pixels
	margin   = 10.0
	marker   = 2.5 // half-width of the intersection markers
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pts, err := tc.Intersections()
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			s := newScene(tc, pts)

			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := s.writePDF(pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			pngPath := filepath.Join(outDir, name+".png")
			if err := s.writePNG(pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// scene holds the flattened geometry of a test case, in page coordinates.
type scene struct {
	lines  [][2]vec.Vec2
	points []vec.Vec2
}

func newScene(tc testcases.TestCase, pts []vec.Vec2) *scene {
	box := sceneBox(tc.Shapes(), pts)
	scale := (pageSize - 2*margin) / max(box.URx-box.LLx, box.URy-box.LLy)
	m := matrix.Matrix{
		scale, 0, 0, scale,
		margin - scale*box.LLx, margin - scale*box.LLy,
	}
	toPage := func(v vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: m[0]*v.X + m[4], Y: m[3]*v.Y + m[5]}
	}

	s := &scene{}
	emit := func(a, b vec.Vec2) {
		s.lines = append(s.lines, [2]vec.Vec2{toPage(a), toPage(b)})
	}
	for _, shape := range tc.Shapes() {
		if l, ok := shape.(intersect.Line); ok {
			clipLine(l, box, emit)
			continue
		}
		intersect.Flatten(shape, 0.1/scale, emit)
	}
	for _, p := range pts {
		s.points = append(s.points, toPage(p))
	}
	return s
}

// sceneBox returns a square containing all bounded shapes and all points,
// with some room around it.
func sceneBox(shapes []intersect.Shape, pts []vec.Vec2) rect.Rect {
	box := rect.Rect{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
	extend := func(r rect.Rect) {
		box.LLx = min(box.LLx, r.LLx)
		box.LLy = min(box.LLy, r.LLy)
		box.URx = max(box.URx, r.URx)
		box.URy = max(box.URy, r.URy)
	}
	for _, shape := range shapes {
		if b, ok := shape.(intersect.Bounded); ok {
			extend(b.Bounds())
		}
	}
	for _, p := range pts {
		extend(rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y})
	}
	if box.LLx > box.URx {
		// lines only, and no intersection
		return rect.Rect{LLx: -2, LLy: -2, URx: 2, URy: 2}
	}

	cx, cy := (box.LLx+box.URx)/2, (box.LLy+box.URy)/2
	r := 0.6 * max(box.URx-box.LLx, box.URy-box.LLy, 1)
	return rect.Rect{LLx: cx - r, LLy: cy - r, URx: cx + r, URy: cy + r}
}

// clipLine emits the part of l which lies inside box.
func clipLine(l intersect.Line, box rect.Rect, emit func(a, b vec.Vec2)) {
	corners := []vec.Vec2{
		{X: box.LLx, Y: box.LLy},
		{X: box.URx, Y: box.LLy},
		{X: box.URx, Y: box.URy},
		{X: box.LLx, Y: box.URy},
	}
	var ends []vec.Vec2
	for i, c := range corners {
		side := intersect.Segment{P0: c, P1: corners[(i+1)%4]}
		for _, p := range intersect.LineSegment(l, side) {
			if !slices.Contains(ends, p) {
				ends = append(ends, p)
			}
		}
	}
	if len(ends) >= 2 {
		emit(ends[0], ends[1])
	}
}

func (s *scene) writePDF(pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: pageSize,
		URy: pageSize,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for i, l := range s.lines {
		if i == 0 || l[0] != s.lines[i-1][1] {
			page.MoveTo(l[0].X, l[0].Y)
		}
		page.LineTo(l[1].X, l[1].Y)
	}
	page.Stroke()

	page.SetFillColor(color.DeviceGray(0.5))
	for _, p := range s.points {
		page.Rectangle(p.X-marker, p.Y-marker, 2*marker, 2*marker)
	}
	if len(s.points) > 0 {
		page.Fill()
	}

	return page.Close()
}
