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

package bmp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	xbmp "golang.org/x/image/bmp"

	"seehuhn.de/go/stardrift/raster"
)

// header returns a minimal BMP header with the three fields Decode reads.
func header(offset, width, height int32) []byte {
	data := make([]byte, headerSize)
	data[0], data[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(data[offPixelData:], uint32(offset))
	binary.LittleEndian.PutUint32(data[offWidth:], uint32(width))
	binary.LittleEndian.PutUint32(data[offHeight:], uint32(height))
	return data
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrShortHeader},
		{"short", make([]byte, 25), ErrShortHeader},
		{"truncated", header(30, 4, 4), ErrTruncated},
		{"zero width", header(26, 0, 4), ErrGeometry},
		{"negative width", header(26, -4, 4), ErrGeometry},
		{"zero height", header(26, 4, 0), ErrGeometry},
		{"negative offset", header(-1, 1, 1), ErrGeometry},
		{"huge", header(26, 1<<30, 1<<30), ErrGeometry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bm, err := Decode(tc.data, raster.BottomUp)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
			if bm != nil {
				t.Error("bitmap returned together with an error")
			}
		})
	}
}

func TestDecodeGeometry(t *testing.T) {
	data := header(26, 2, -3)
	data = append(data, make([]byte, 2*3*4)...)
	data[26+4*4+2] = 0xAB // red channel of memory row 2, column 0

	for _, order := range []raster.RowOrder{raster.BottomUp, raster.TopDown} {
		bm, err := Decode(data, order)
		if err != nil {
			t.Fatal(err)
		}
		if bm.Width != 2 || bm.Height != 3 || bm.Stride != 8 || bm.Offset != 26 {
			t.Fatalf("%s: geometry %+v", order, bm)
		}

		// The row order is taken from the caller, not from the sign of
		// the height field.
		y := 2
		if order == raster.BottomUp {
			y = 0
		}
		if got := bm.Texel(0, y); got.R != 0xAB {
			t.Errorf("%s: texel (0, %d) = %v", order, y, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	src := raster.NewBitmap(5, 3, raster.TopDown)
	for y := range 3 {
		for x := range 5 {
			src.SetTexel(x, y, raster.Color{
				R: uint8(40 * x),
				G: uint8(80 * y),
				B: uint8(x + y),
				A: uint8(50*x + 10*y),
			})
		}
	}

	buf := &bytes.Buffer{}
	if err := Encode(buf, src); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	cfg, err := xbmp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 5 || cfg.Height != 3 {
		t.Errorf("x/image/bmp reads %dx%d", cfg.Width, cfg.Height)
	}

	got, err := Decode(data, raster.BottomUp)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 3 {
		for x := range 5 {
			if a, b := got.Texel(x, y), src.Texel(x, y); a != b {
				t.Errorf("texel (%d, %d) = %v, want %v", x, y, a, b)
			}
		}
	}
}

func TestEncodeOpaque(t *testing.T) {
	bm := raster.NewBitmap(2, 2, raster.TopDown)
	for y := range 2 {
		for x := range 2 {
			bm.SetTexel(x, y, raster.Color{R: 1, A: 255})
		}
	}
	if err := Encode(&bytes.Buffer{}, bm); !errors.Is(err, ErrOpaque) {
		t.Errorf("got %v, want %v", err, ErrOpaque)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.bmp"), raster.BottomUp); err == nil {
		t.Error("missing file: no error")
	}

	bad := filepath.Join(dir, "bad.bmp")
	if err := os.WriteFile(bad, header(30, 4, 4), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad, raster.BottomUp); !errors.Is(err, ErrTruncated) {
		t.Errorf("got %v, want %v", err, ErrTruncated)
	}

	bm := raster.NewBitmap(3, 2, raster.BottomUp)
	bm.SetTexel(1, 1, raster.Color{R: 9, G: 8, B: 7, A: 6})
	good := filepath.Join(dir, "good.bmp")
	if err := Save(good, bm); err != nil {
		t.Fatal(err)
	}
	got, err := Load(good, raster.BottomUp)
	if err != nil {
		t.Fatal(err)
	}
	if c := got.Texel(1, 1); c != (raster.Color{R: 9, G: 8, B: 7, A: 6}) {
		t.Errorf("texel (1, 1) = %v", c)
	}
}
