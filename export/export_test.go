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

package export

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stardrift/raster"
	"seehuhn.de/go/stardrift/starfield"
)

func TestWritePNG(t *testing.T) {
	buf := raster.NewBuffer(6, 4, 32)
	buf.Clear(raster.Color{R: 64, G: 18, B: 139, A: 255})
	buf.SetPixel(5, 3, raster.Color{R: 249, G: 217, B: 73, A: 102})

	out := &bytes.Buffer{}
	if err := WritePNG(out, buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("size %v", b)
	}
	got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if got != (color.NRGBA{R: 64, G: 18, B: 139, A: 255}) {
		t.Errorf("pixel (0, 0) = %v", got)
	}
	got = color.NRGBAModel.Convert(img.At(5, 3)).(color.NRGBA)
	if got != (color.NRGBA{R: 249, G: 217, B: 73, A: 102}) {
		t.Errorf("pixel (5, 3) = %v", got)
	}
}

func TestSavePDF(t *testing.T) {
	f, err := starfield.New(starfield.DefaultConfig(), 120, 80, rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "snapshot.pdf")
	if err := SavePDF(path, f); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("not a PDF file: %q", data[:min(len(data), 16)])
	}
}

func TestGray(t *testing.T) {
	cases := []struct {
		in   raster.Color
		want float64
	}{
		{raster.Color{}, 0},
		{raster.Color{R: 255, G: 255, B: 255}, 1},
	}
	for _, tc := range cases {
		got := float64(Gray(tc.in))
		if d := got - tc.want; d < -1e-9 || d > 1e-9 {
			t.Errorf("Gray(%v) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestDisc(t *testing.T) {
	center := vec.Vec2{X: 10, Y: -4}
	const r = 8.0
	start, segs := Disc(center, r)

	if d := start.Sub(center).Length(); math.Abs(d-r) > 1e-9 {
		t.Errorf("start at distance %g", d)
	}
	prev := start
	for i, c := range segs {
		if d := c[2].Sub(center).Length(); math.Abs(d-r) > 1e-9 {
			t.Errorf("segment %d ends at distance %g", i, d)
		}
		// The midpoint of a quarter circle approximation lies within
		// 0.03% of the radius.
		mid := prev.Mul(0.125).Add(c[0].Mul(0.375)).Add(c[1].Mul(0.375)).Add(c[2].Mul(0.125))
		if d := mid.Sub(center).Length(); math.Abs(d-r) > 3e-4*r {
			t.Errorf("segment %d: midpoint at distance %g", i, d)
		}
		prev = c[2]
	}
	if prev != start {
		t.Errorf("path ends at %v, want %v", prev, start)
	}
}
