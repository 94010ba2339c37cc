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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Painter composites rasterizer output into a Buffer.
//
// Raster.Clip must not extend beyond Dst; NewPainter sets it to the whole
// buffer. A Painter is not safe for concurrent use.
type Painter struct {
	Dst    *Buffer
	Raster *Rasterizer

	src Color // color of the shape being drawn
}

// NewPainter returns a Painter drawing into dst.
func NewPainter(dst *Buffer) *Painter {
	return &Painter{
		Dst:    dst,
		Raster: NewRasterizer(dst.Clip()),
	}
}

// FillRect overwrites the width×height box at origin with c.
// Pixels outside the clip rectangle are skipped.
func (p *Painter) FillRect(origin vec.Vec2, width, height int, c Color) {
	p.src = c
	p.Raster.Rect(origin, width, height, p.replaceSpan)
}

// FillSoftCircle blends a soft-edged disc of color c into the buffer.
//
// For every covered pixel the effective alpha is c.A scaled by the pixel
// opacity and rounded; the color channels move toward c by alpha/255 and
// the alpha channel is set to the effective alpha. Pixels with zero
// opacity are left unchanged.
func (p *Painter) FillSoftCircle(center vec.Vec2, radius int, c Color) {
	p.src = c
	p.Raster.SoftCircle(center, radius, p.blendSpan)
}

func (p *Painter) replaceSpan(y, xMin int, coverage []float32) {
	row := p.Dst.Pix[p.Dst.PixOffset(xMin, y):]
	c := p.src
	for i := range coverage {
		j := i * BytesPerPixel
		row[j+0] = c.B
		row[j+1] = c.G
		row[j+2] = c.R
		row[j+3] = c.A
	}
}

func (p *Painter) blendSpan(y, xMin int, coverage []float32) {
	row := p.Dst.Pix[p.Dst.PixOffset(xMin, y):]
	c := p.src
	for i, cov := range coverage {
		if cov <= 0 {
			continue
		}
		a := math.Round(float64(c.A) * float64(cov))
		t := a / 255
		j := i * BytesPerPixel
		row[j+0] = uint8(lerp(float64(row[j+0]), t, float64(c.B)))
		row[j+1] = uint8(lerp(float64(row[j+1]), t, float64(c.G)))
		row[j+2] = uint8(lerp(float64(row[j+2]), t, float64(c.R)))
		row[j+3] = uint8(a)
	}
}
