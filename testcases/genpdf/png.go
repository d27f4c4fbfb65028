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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// writePNG renders a preview of the scene.  Lines are drawn as thin
// rectangles, since the rasterizer can only fill paths.
func (s *scene) writePNG(pngPath string) error {
	const size = int(pageSize)

	dst := image.NewGray(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	// PNG rows go down, PDF coordinates go up
	flip := func(v vec.Vec2) (float32, float32) {
		return float32(v.X), float32(pageSize - v.Y)
	}

	r := vector.NewRasterizer(size, size)
	for _, l := range s.lines {
		d := l[1].Sub(l[0])
		n := d.Length()
		if n == 0 {
			continue
		}
		// half the line width, perpendicular to the line
		w := vec.Vec2{X: -d.Y, Y: d.X}.Mul(0.5 / n)
		r.MoveTo(flip(l[0].Add(w)))
		r.LineTo(flip(l[1].Add(w)))
		r.LineTo(flip(l[1].Sub(w)))
		r.LineTo(flip(l[0].Sub(w)))
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.Black, image.Point{})

	r.Reset(size, size)
	for _, p := range s.points {
		x, y := flip(p)
		r.MoveTo(x-marker, y-marker)
		r.LineTo(x+marker, y-marker)
		r.LineTo(x+marker, y+marker)
		r.LineTo(x-marker, y+marker)
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Gray{Y: 128}), image.Point{})

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
