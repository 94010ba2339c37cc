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

import "fmt"

// RowOrder describes how the rows of a Bitmap are laid out in memory.
type RowOrder int

// Supported row orders.
const (
	// BottomUp stores the last image row first, as in BMP files with a
	// positive height field.
	BottomUp RowOrder = iota

	// TopDown stores the first image row first.
	TopDown
)

func (o RowOrder) String() string {
	switch o {
	case BottomUp:
		return "bottom-up"
	case TopDown:
		return "top-down"
	default:
		return fmt.Sprintf("RowOrder(%d)", int(o))
	}
}

// ParseRowOrder converts "bottom-up" or "top-down" to a RowOrder.
func ParseRowOrder(s string) (RowOrder, error) {
	switch s {
	case "bottom-up":
		return BottomUp, nil
	case "top-down":
		return TopDown, nil
	}
	return 0, fmt.Errorf("raster: unknown row order %q", s)
}

// Bitmap is a read-only source image in BGRA layout.
//
// Pixel data starts at Pix[Offset]. Image rows are numbered from the top;
// Order determines where each row lives in memory.
type Bitmap struct {
	Width  int
	Height int
	Stride int
	Offset int
	Order  RowOrder
	Pix    []byte
}

// NewBitmap allocates a transparent bitmap with packed rows.
func NewBitmap(width, height int, order RowOrder) *Bitmap {
	stride := width * BytesPerPixel
	return &Bitmap{
		Width:  width,
		Height: height,
		Stride: stride,
		Order:  order,
		Pix:    make([]byte, stride*height),
	}
}

// rowStart returns the index of the first byte of image row y.
func (bm *Bitmap) rowStart(y int) int {
	if bm.Order == BottomUp {
		y = bm.Height - 1 - y
	}
	return bm.Offset + y*bm.Stride
}

// Texel returns the pixel in column x of image row y.
// Texels outside the bitmap read as the zero Color.
func (bm *Bitmap) Texel(x, y int) Color {
	if x < 0 || x >= bm.Width || y < 0 || y >= bm.Height {
		return Color{}
	}
	i := bm.rowStart(y) + x*BytesPerPixel
	if i < 0 || i+BytesPerPixel > len(bm.Pix) {
		return Color{}
	}
	return Color{B: bm.Pix[i], G: bm.Pix[i+1], R: bm.Pix[i+2], A: bm.Pix[i+3]}
}

// SetTexel overwrites the pixel in column x of image row y.
func (bm *Bitmap) SetTexel(x, y int, c Color) {
	if x < 0 || x >= bm.Width || y < 0 || y >= bm.Height {
		return
	}
	i := bm.rowStart(y) + x*BytesPerPixel
	bm.Pix[i+0] = c.B
	bm.Pix[i+1] = c.G
	bm.Pix[i+2] = c.R
	bm.Pix[i+3] = c.A
}
