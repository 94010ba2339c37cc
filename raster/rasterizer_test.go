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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

type span struct {
	y, xMin  int
	coverage []float32
}

// collect records all spans emitted during a call to draw.
func collect(draw func(emit func(y, xMin int, coverage []float32))) []span {
	var res []span
	draw(func(y, xMin int, coverage []float32) {
		res = append(res, span{y, xMin, append([]float32(nil), coverage...)})
	})
	return res
}

func TestRectCoverage(t *testing.T) {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	r := NewRasterizer(clip)

	spans := collect(func(emit func(int, int, []float32)) {
		r.Rect(vec.Vec2{X: -2.5, Y: 3}, 5, 2, emit)
	})

	// ⌊-2.5⌋ = -3, so columns -3, ..., 1 are candidates and 0, 1 survive.
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	for i, s := range spans {
		if s.y != 3+i {
			t.Errorf("span %d: y = %d, want %d", i, s.y, 3+i)
		}
		if s.xMin != 0 || len(s.coverage) != 2 {
			t.Errorf("span %d: x range [%d, %d), want [0, 2)", i, s.xMin, s.xMin+len(s.coverage))
		}
		for _, c := range s.coverage {
			if c != 1 {
				t.Errorf("span %d: coverage %g, want 1", i, c)
			}
		}
	}
}

func TestRectOutside(t *testing.T) {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	r := NewRasterizer(clip)

	cases := []struct {
		origin vec.Vec2
		w, h   int
	}{
		{vec.Vec2{X: -5, Y: 0}, 5, 5},
		{vec.Vec2{X: 10, Y: 0}, 5, 5},
		{vec.Vec2{X: 0, Y: -5}, 5, 5},
		{vec.Vec2{X: 0, Y: 10}, 5, 5},
		{vec.Vec2{X: 2, Y: 2}, 0, 5},
		{vec.Vec2{X: 2, Y: 2}, 5, -1},
	}
	for _, tc := range cases {
		spans := collect(func(emit func(int, int, []float32)) {
			r.Rect(tc.origin, tc.w, tc.h, emit)
		})
		if len(spans) != 0 {
			t.Errorf("%v %dx%d: got %d spans, want none", tc.origin, tc.w, tc.h, len(spans))
		}
	}
}

func TestSoftCircleCoverage(t *testing.T) {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 20}
	r := NewRasterizer(clip)

	cov := make(map[[2]int]float32)
	r.SoftCircle(vec.Vec2{X: 5, Y: 5}, 5, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			cov[[2]int{xMin + i, y}] = c
		}
	})

	cases := []struct {
		x, y int
		want float64
	}{
		{5, 5, 1},   // center
		{6, 5, 0.8}, // below the snap threshold
		{9, 5, 0.2},
		{5, 1, 0.2},
		{8, 9, 0},  // distance 5
		{0, 0, 0},  // corner of the square
		{10, 5, 0}, // outside the square
	}
	for _, tc := range cases {
		got := cov[[2]int{tc.x, tc.y}]
		if math.Abs(float64(got)-tc.want) > 1e-6 {
			t.Errorf("coverage at (%d, %d) = %g, want %g", tc.x, tc.y, got, tc.want)
		}
	}

	for p, c := range cov {
		if p[0] < 0 || p[0] >= 10 || p[1] < 0 || p[1] >= 10 {
			t.Errorf("pixel %v outside the bounding square", p)
		}
		if c < 0 || c > 1 {
			t.Errorf("coverage %g at %v out of range", c, p)
		}
	}
}

func TestSoftCircleSnap(t *testing.T) {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 20}
	center := vec.Vec2{X: 5.5, Y: 5}

	at := func(r *Rasterizer, x, y int) float32 {
		var res float32
		r.SoftCircle(center, 5, func(yy, xMin int, coverage []float32) {
			if yy == y && x >= xMin && x < xMin+len(coverage) {
				res = coverage[x-xMin]
			}
		})
		return res
	}

	// Pixel (5, 5) is half a pixel from the center: opacity 0.9.
	r := NewRasterizer(clip)
	if got := at(r, 5, 5); got != 1 {
		t.Errorf("snapped coverage = %g, want 1", got)
	}

	r.SnapOpacity = 2
	if got := at(r, 5, 5); math.Abs(float64(got)-0.9) > 1e-6 {
		t.Errorf("unsnapped coverage = %g, want 0.9", got)
	}
}

func TestSoftCircleRowsTrimmed(t *testing.T) {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 40, URy: 40}
	r := NewRasterizer(clip)

	spans := collect(func(emit func(int, int, []float32)) {
		r.SoftCircle(vec.Vec2{X: 20, Y: 20}, 8, emit)
	})
	if len(spans) == 0 {
		t.Fatal("no spans emitted")
	}
	for _, s := range spans {
		if len(s.coverage) == 0 {
			t.Errorf("row %d: empty span", s.y)
			continue
		}
		if s.coverage[0] == 0 || s.coverage[len(s.coverage)-1] == 0 {
			t.Errorf("row %d: span not trimmed: %v", s.y, s.coverage)
		}
	}
}

func TestTrimZeros(t *testing.T) {
	cases := []struct {
		in     []float32
		want   []float32
		offset int
	}{
		{nil, nil, 0},
		{[]float32{0, 0, 0}, nil, 0},
		{[]float32{1}, []float32{1}, 0},
		{[]float32{0, 0.5, 0}, []float32{0.5}, 1},
		{[]float32{0, 0.5, 0, 1, 0, 0}, []float32{0.5, 0, 1}, 1},
		{[]float32{0.1, 0, 0.2}, []float32{0.1, 0, 0.2}, 0},
	}
	for _, tc := range cases {
		got, offset := trimZeros(tc.in)
		if offset != tc.offset || len(got) != len(tc.want) {
			t.Errorf("trimZeros(%v) = %v, %d, want %v, %d", tc.in, got, offset, tc.want, tc.offset)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("trimZeros(%v) = %v, want %v", tc.in, got, tc.want)
				break
			}
		}
	}
}

func TestLerp(t *testing.T) {
	for a := 0.0; a <= 255; a += 17 {
		for b := 0.0; b <= 255; b += 15 {
			if got := lerp(a, 0, b); got != a {
				t.Errorf("lerp(%g, 0, %g) = %g", a, b, got)
			}
			if got := lerp(a, 1, b); got != b {
				t.Errorf("lerp(%g, 1, %g) = %g", a, b, got)
			}
		}
		if got := lerp(a, 0.37, a); got != a {
			t.Errorf("lerp(%g, 0.37, %g) = %g", a, a, got)
		}
	}
}
