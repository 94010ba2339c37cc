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

package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stardrift/raster"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name       string       // lowercase a-z, 0-9 and _ only
	Width      int          // canvas width in pixels
	Height     int          // canvas height in pixels
	Background raster.Color // initial color of every pixel
	Ops        []Operation  // drawing operations, applied in order
}

// Operation is a single drawing operation.
type Operation interface {
	isOperation()
}

// Rect specifies a rectangle fill.
type Rect struct {
	Origin vec.Vec2
	Width  int
	Height int
	Color  raster.Color
}

func (Rect) isOperation() {}

// SoftCircle specifies a soft-edged disc.
type SoftCircle struct {
	Center vec.Vec2
	Radius int
	Color  raster.Color
}

func (SoftCircle) isOperation() {}

// Blit specifies a bilinear bitmap blit. The corners are absolute device
// positions.
type Blit struct {
	Origin  vec.Vec2
	XCorner vec.Vec2
	YCorner vec.Vec2
	Texture Texture
}

func (Blit) isOperation() {}

// Texture describes a procedurally generated bitmap.
type Texture struct {
	Pattern Pattern
	Width   int
	Height  int
	Order   raster.RowOrder
}

// Pattern selects the texel values of a Texture.
type Pattern int

// Supported texture patterns.
const (
	// Checker alternates opaque black and white texels.
	Checker Pattern = iota

	// Gradient runs from transparent black on the left to opaque
	// white on the right, with a red ramp from top to bottom.
	Gradient
)

func (p Pattern) String() string {
	switch p {
	case Checker:
		return "checker"
	case Gradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// Bitmap generates the texture.
func (t Texture) Bitmap() *raster.Bitmap {
	bm := raster.NewBitmap(t.Width, t.Height, t.Order)
	for y := range t.Height {
		for x := range t.Width {
			var c raster.Color
			switch t.Pattern {
			case Checker:
				if (x+y)%2 == 0 {
					c = raster.Color{R: 255, G: 255, B: 255, A: 255}
				} else {
					c = raster.Color{A: 255}
				}
			case Gradient:
				v := uint8(255 * x / max(t.Width-1, 1))
				c = raster.Color{
					R: uint8(255 * y / max(t.Height-1, 1)),
					G: v,
					B: v,
					A: v,
				}
			}
			bm.SetTexel(x, y, c)
		}
	}
	return bm
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

var (
	black  = raster.Color{A: 255}
	white  = raster.Color{R: 255, G: 255, B: 255, A: 255}
	purple = raster.Color{R: 64, G: 18, B: 139, A: 255}
	yellow = raster.Color{R: 249, G: 217, B: 73, A: 255}
)
