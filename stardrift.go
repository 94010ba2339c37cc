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

// Package stardrift renders the drawing test cases in testcases with the
// software rasterizer from package raster.
//
// The program itself lives in cmd/stardrift.
package stardrift

//go:generate go run ./testcases/export

import (
	"seehuhn.de/go/stardrift/raster"
	"seehuhn.de/go/stardrift/testcases"
)

// RenderExample renders a test case into buf. The buffer is cleared to
// the background color of the test case first.
func RenderExample(tc testcases.TestCase, buf *raster.Buffer) {
	buf.Clear(tc.Background)
	p := raster.NewPainter(buf)
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Rect:
			p.FillRect(op.Origin, op.Width, op.Height, op.Color)
		case testcases.SoftCircle:
			p.FillSoftCircle(op.Center, op.Radius, op.Color)
		case testcases.Blit:
			p.BlitBilinear(op.Origin, op.XCorner, op.YCorner, op.Texture.Bitmap())
		}
	}
}
