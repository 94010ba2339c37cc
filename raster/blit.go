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

package raster

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// BlitBilinear draws bm into the box spanned by origin and the two axis
// corners, which are absolute device positions. The fourth corner is
// xCorner + yCorner - origin.
//
// The destination box is the integer bounding box of the four corners,
// inclusive on all sides. Every destination pixel samples the bitmap with
// bilinear interpolation; the color channels are blended by the sampled
// alpha and the destination alpha is replaced by it. Bitmaps smaller than
// 2×2 and boxes of zero width or height draw nothing.
//
// The bitmap is not mirrored: its first column lands at the left edge of
// the box and its first image row at the top.
func (p *Painter) BlitBilinear(origin, xCorner, yCorner vec.Vec2, bm *Bitmap) {
	p.forEachSample(origin, xCorner, yCorner, bm, func(x, y int, tx, ty float64) {
		s, ok := bm.sampleBilinear(tx, ty)
		if !ok {
			return
		}
		i := p.Dst.PixOffset(x, y)
		d := p.Dst.Pix[i : i+BytesPerPixel]
		t := s[3] / 255
		d[0] = uint8(lerp(float64(d[0]), t, s[0]))
		d[1] = uint8(lerp(float64(d[1]), t, s[1]))
		d[2] = uint8(lerp(float64(d[2]), t, s[2]))
		d[3] = uint8(s[3])
	})
}

// forEachSample calls fn for every destination pixel of a bitmap blit,
// together with the continuous texel coordinates to sample. The texel
// coordinates satisfy 0 ≤ tx ≤ Width-2 and 0 ≤ ty ≤ Height-2.
func (p *Painter) forEachSample(origin, xCorner, yCorner vec.Vec2, bm *Bitmap, fn func(x, y int, tx, ty float64)) {
	if bm == nil || bm.Width < 2 || bm.Height < 2 {
		return
	}

	corners := [4]vec.Vec2{origin, xCorner, xCorner.Add(yCorner).Sub(origin), yCorner}
	fx0, fy0 := math.Inf(1), math.Inf(1)
	fx1, fy1 := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		fx0 = min(fx0, math.Floor(c.X))
		fy0 = min(fy0, math.Floor(c.Y))
		fx1 = max(fx1, math.Ceil(c.X))
		fy1 = max(fy1, math.Ceil(c.Y))
	}
	if !(fx1 > fx0) || !(fy1 > fy0) {
		return
	}
	bx0, by0, bx1, by1 := int(fx0), int(fy0), int(fx1), int(fy1)

	// The box is inclusive, the clip rectangle half-open.
	xMin, yMin, xMax, yMax, ok := p.Raster.clipBox(bx0, by0, bx1+1, by1+1)
	if !ok {
		return
	}

	boxW := float64(bx1 - bx0)
	boxH := float64(by1 - by0)
	texW := float64(bm.Width - 2)
	texH := float64(bm.Height - 2)
	for y := yMin; y < yMax; y++ {
		v := float64(y-by0) / boxH
		for x := xMin; x < xMax; x++ {
			u := float64(x-bx0) / boxW
			if u < 0 || u > 1 || v < 0 || v > 1 {
				panic(fmt.Sprintf("raster: sample (%g, %g) outside the unit square", u, v))
			}
			fn(x, y, u*texW, v*texH)
		}
	}
}

// sampleBilinear interpolates the 2×2 texel neighbourhood at (tx, ty),
// first along x and then along y. The result is in B, G, R, A order.
// The second return value is false if the neighbourhood is not fully
// backed by pixel data.
func (bm *Bitmap) sampleBilinear(tx, ty float64) ([4]float64, bool) {
	var s [4]float64

	ix, iy := int(tx), int(ty)
	if ix < 0 || iy < 0 || ix+1 >= bm.Width || iy+1 >= bm.Height {
		return s, false
	}
	dx := tx - math.Floor(tx)
	dy := ty - math.Floor(ty)

	i0 := bm.rowStart(iy) + ix*BytesPerPixel
	i1 := bm.rowStart(iy+1) + ix*BytesPerPixel
	n := len(bm.Pix)
	if i0 < 0 || i1 < 0 || i0+2*BytesPerPixel > n || i1+2*BytesPerPixel > n {
		return s, false
	}

	pix := bm.Pix
	for ch := range 4 {
		top := lerp(float64(pix[i0+ch]), dx, float64(pix[i0+BytesPerPixel+ch]))
		bottom := lerp(float64(pix[i1+ch]), dx, float64(pix[i1+BytesPerPixel+ch]))
		s[ch] = lerp(top, dy, bottom)
	}
	return s, true
}
