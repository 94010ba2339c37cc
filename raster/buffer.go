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
	"image"
	"image/color"
	"image/png"
	"os"

	"seehuhn.de/go/geom/rect"
)

// BytesPerPixel is the size of one pixel in a Buffer or Bitmap.
// Pixels are stored in memory order B, G, R, A.
const BytesPerPixel = 4

// Color is a non-premultiplied 8-bit color.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Buffer is a packed BGRA pixel buffer.
//
// Rows may be padded: Stride is the distance in bytes between the starts
// of two consecutive rows and is at least Width*BytesPerPixel.
type Buffer struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// NewBuffer allocates a zero-filled buffer.
// If stride is zero, rows are packed without padding.
func NewBuffer(width, height, stride int) *Buffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: invalid buffer size %dx%d", width, height))
	}
	if stride == 0 {
		stride = width * BytesPerPixel
	}
	if stride < width*BytesPerPixel {
		panic(fmt.Sprintf("raster: stride %d too small for width %d", stride, width))
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]byte, stride*height),
	}
}

// PixOffset returns the index of the first byte of pixel (x, y).
// The caller must check that the pixel lies inside the buffer.
func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Stride + x*BytesPerPixel
}

// Clip returns the device rectangle covered by the buffer.
func (b *Buffer) Clip() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(b.Width),
		URy: float64(b.Height),
	}
}

// Clear sets every pixel of the buffer to c.
// Row padding is left untouched.
func (b *Buffer) Clear(c Color) {
	for y := range b.Height {
		row := b.Pix[y*b.Stride : y*b.Stride+b.Width*BytesPerPixel]
		for i := 0; i < len(row); i += BytesPerPixel {
			row[i+0] = c.B
			row[i+1] = c.G
			row[i+2] = c.R
			row[i+3] = c.A
		}
	}
}

// Pixel returns the color stored at (x, y).
// Pixels outside the buffer read as the zero Color.
func (b *Buffer) Pixel(x, y int) Color {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Color{}
	}
	i := b.PixOffset(x, y)
	return Color{B: b.Pix[i], G: b.Pix[i+1], R: b.Pix[i+2], A: b.Pix[i+3]}
}

// SetPixel overwrites the pixel at (x, y).
// Writes outside the buffer are ignored.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	i := b.PixOffset(x, y)
	b.Pix[i+0] = c.B
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.R
	b.Pix[i+3] = c.A
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.Pixel(x, y)
}

// Set implements the draw.Image interface.
func (b *Buffer) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	b.SetPixel(x, y, Color{R: n.R, G: n.G, B: n.B, A: n.A})
}

// ToImage copies the buffer into a new image.NRGBA.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := range b.Height {
		src := b.Pix[y*b.Stride:]
		dst := img.Pix[y*img.Stride:]
		for x := range b.Width {
			i := x * BytesPerPixel
			dst[i+0] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+0]
			dst[i+3] = src[i+3]
		}
	}
	return img
}

// SavePNG writes the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, b.ToImage())
}
