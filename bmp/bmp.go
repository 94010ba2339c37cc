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

// Package bmp reads and writes the minimal subset of the BMP file format
// needed for sprite assets: uncompressed 32-bit pixels in B, G, R, A
// order.
//
// Only three header fields are interpreted. The row order of the pixel
// data is not taken from the file; callers state it explicitly.
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	xbmp "golang.org/x/image/bmp"

	"seehuhn.de/go/stardrift/raster"
)

// Decode interprets data as a 32-bit BMP file.
//
// The returned bitmap shares its pixel memory with data.
func Decode(data []byte, order raster.RowOrder) (*raster.Bitmap, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}

	offset := int64(int32(binary.LittleEndian.Uint32(data[offPixelData:])))
	width := int64(int32(binary.LittleEndian.Uint32(data[offWidth:])))
	height := int64(int32(binary.LittleEndian.Uint32(data[offHeight:])))
	if height < 0 {
		height = -height
	}
	if width <= 0 || height == 0 || offset < 0 ||
		width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d at offset %d", ErrGeometry, width, height, offset)
	}

	stride := width * raster.BytesPerPixel
	if offset+stride*height > int64(len(data)) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d",
			ErrTruncated, offset+stride*height, len(data))
	}

	return &raster.Bitmap{
		Width:  int(width),
		Height: int(height),
		Stride: int(stride),
		Offset: int(offset),
		Order:  order,
		Pix:    data,
	}, nil
}

// Load reads and decodes a BMP file.
func Load(path string, order raster.RowOrder) (*raster.Bitmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	bm, err := Decode(data, order)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bm, nil
}

// Encode writes bm as a bottom-up 32-bit BMP file which Decode can read
// back with raster.BottomUp.
//
// Bitmaps without any transparent pixel are rejected with ErrOpaque,
// since they would be written with 24 bits per pixel.
func Encode(w io.Writer, bm *raster.Bitmap) error {
	img := image.NewNRGBA(image.Rect(0, 0, bm.Width, bm.Height))
	for y := range bm.Height {
		for x := range bm.Width {
			c := bm.Texel(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	if img.Opaque() {
		return ErrOpaque
	}
	return xbmp.Encode(w, img)
}

// Save writes bm to a file, see Encode.
func Save(path string, bm *raster.Bitmap) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, bm)
}

// Header field positions.
const (
	offPixelData = 10
	offWidth     = 18
	offHeight    = 22
	headerSize   = 26

	maxDimension = 1 << 24
)

var (
	// ErrShortHeader is returned for files too short to hold the header
	// fields.
	ErrShortHeader = errors.New("bmp: file too short")

	// ErrGeometry is returned for impossible image dimensions.
	ErrGeometry = errors.New("bmp: invalid image geometry")

	// ErrTruncated is returned when the pixel data extends beyond the
	// end of the file.
	ErrTruncated = errors.New("bmp: pixel data truncated")

	// ErrOpaque is returned by Encode for fully opaque bitmaps.
	ErrOpaque = errors.New("bmp: cannot write opaque bitmap as 32-bit")
)
