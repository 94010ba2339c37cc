// seehuhn.de/go/stardrift - a software-rendered star field
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

// Package export writes snapshots of a star field to image files.
//
// PNG snapshots copy the pixel buffer. PDF snapshots redraw the scene as
// vector graphics, with every star as a solid disc in the gray level
// matching its color.
package export

import (
	"image/png"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stardrift/raster"
	"seehuhn.de/go/stardrift/starfield"
)

// WritePNG encodes buf as a PNG image.
func WritePNG(w io.Writer, buf *raster.Buffer) error {
	return png.Encode(w, buf.ToImage())
}

// SavePNG writes buf to a PNG file.
func SavePNG(path string, buf *raster.Buffer) error {
	return buf.SavePNG(path)
}

// SavePDF writes the current state of f to a single-page PDF file. One
// pixel corresponds to one PDF point.
func SavePDF(path string, f *starfield.Field) error {
	width, height := f.Size()
	cfg := f.Config()

	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(Gray(cfg.Background))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left, device coordinates start at the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	page.SetFillColor(Gray(cfg.Color))
	for _, s := range f.Stars() {
		start, segs := Disc(s.Origin, float64(s.Radius))
		page.MoveTo(start.X, start.Y)
		for _, c := range segs {
			page.CurveTo(c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
		}
		page.ClosePath()
	}
	if len(f.Stars()) > 0 {
		page.Fill()
	}

	return page.Close()
}

// Gray converts c to a gray level using the Rec. 601 luma weights.
func Gray(c raster.Color) color.DeviceGray {
	y := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return color.DeviceGray(y / 255)
}

// Disc approximates the circle of radius r around center by four cubic
// Bézier segments, one per quadrant. Each segment holds two control points
// and its end point; the last end point equals start.
func Disc(center vec.Vec2, r float64) (start vec.Vec2, segs [4][3]vec.Vec2) {
	kr := k * r
	pt := func(dx, dy float64) vec.Vec2 {
		return center.Add(vec.Vec2{X: dx, Y: dy})
	}
	start = pt(0, -r)
	segs = [4][3]vec.Vec2{
		{pt(kr, -r), pt(r, -kr), pt(r, 0)},
		{pt(r, kr), pt(kr, r), pt(0, r)},
		{pt(-kr, r), pt(-r, kr), pt(-r, 0)},
		{pt(-r, -kr), pt(-kr, -r), start},
	}
	return start, segs
}

// k is the control point distance for approximating a quarter circle by a
// cubic Bézier curve.
const k = 0.5522847498
