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

package starfield

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stardrift/raster"
)

// Sprite renders a single soft star of the given diameter into a bitmap.
//
// The color channels of every texel equal c; the soft edge is carried
// by the alpha channel alone. The bitmap rows are stored bottom-up, as
// in a BMP file.
func Sprite(diameter int, c raster.Color) *raster.Bitmap {
	radius := max(diameter/2, 1)
	size := 2 * radius

	buf := raster.NewBuffer(size, size, 0)
	buf.Clear(raster.Color{R: c.R, G: c.G, B: c.B})
	p := raster.NewPainter(buf)
	p.FillSoftCircle(vec.Vec2{X: float64(radius), Y: float64(radius)}, radius, c)

	bm := raster.NewBitmap(size, size, raster.BottomUp)
	for y := range size {
		for x := range size {
			bm.SetTexel(x, y, buf.Pixel(x, y))
		}
	}
	return bm
}
