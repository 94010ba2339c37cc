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

// Package raster implements the software drawing primitives used by the
// star field: rectangle fills, soft-edged circles and a bilinear bitmap
// blitter, all operating on packed BGRA buffers.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer converts shapes to per-pixel coverage values in the range 0
// (untouched) to 1 (fully covered). Create one instance and reuse it for
// many shapes. Internal buffers grow as needed but never shrink, so that
// drawing a frame does not allocate in steady state.
//
// Shape coordinates are rounded down to find the first candidate pixel,
// and every candidate pixel outside Clip is dropped.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// SnapOpacity is the soft circle opacity at and above which a pixel
	// is treated as fully opaque. Values above 1 disable snapping.
	SnapOpacity float64

	cover []float32 // coverage for the current row
}

// NewRasterizer returns a Rasterizer with the given clip rectangle and
// default values for the other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		Clip:        clip,
		SnapOpacity: DefaultSnapOpacity,
	}
}

// Reset changes the clip rectangle, keeping the internal buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
}

// clipBox intersects the half-open pixel box [x0, x1) × [y0, y1) with the
// clip rectangle.
func (r *Rasterizer) clipBox(x0, y0, x1, y1 int) (xMin, yMin, xMax, yMax int, ok bool) {
	xMin = max(x0, int(r.Clip.LLx))
	yMin = max(y0, int(r.Clip.LLy))
	xMax = min(x1, int(r.Clip.URx))
	yMax = min(y1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, yMin, xMax, yMax, true
}

// row returns the coverage buffer resized to n entries.
func (r *Rasterizer) row(n int) []float32 {
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	return r.cover
}

// Rect emits full coverage for the width×height pixel box whose top-left
// candidate pixel is (⌊origin.X⌋, ⌊origin.Y⌋). The emit callback
// receives coverage row-by-row; its slice argument is valid only during
// the call.
func (r *Rasterizer) Rect(origin vec.Vec2, width, height int, emit func(y, xMin int, coverage []float32)) {
	if width <= 0 || height <= 0 {
		return
	}
	x0, y0 := int(math.Floor(origin.X)), int(math.Floor(origin.Y))
	xMin, yMin, xMax, yMax, ok := r.clipBox(x0, y0, x0+width, y0+height)
	if !ok {
		return
	}

	coverage := r.row(xMax - xMin)
	for i := range coverage {
		coverage[i] = 1
	}
	for y := yMin; y < yMax; y++ {
		emit(y, xMin, coverage)
	}
}

// SoftCircle emits the coverage of a disc whose opacity falls off
// linearly from 1 at the center to 0 at the given radius. Opacity values
// at or above SnapOpacity are raised to 1.
//
// The candidate pixels form the square of side 2*radius whose top-left
// pixel is center-(radius, radius), rounded down. Each pixel is
// sampled at its integer coordinates. Rows without coverage are skipped
// and zero coverage at either end of a row is trimmed.
func (r *Rasterizer) SoftCircle(center vec.Vec2, radius int, emit func(y, xMin int, coverage []float32)) {
	if radius <= 0 {
		return
	}
	rf := float64(radius)
	side := 2 * radius
	x0 := int(math.Floor(center.X - rf))
	y0 := int(math.Floor(center.Y - rf))
	xMin, yMin, xMax, yMax, ok := r.clipBox(x0, y0, x0+side, y0+side)
	if !ok {
		return
	}

	coverage := r.row(xMax - xMin)
	for y := yMin; y < yMax; y++ {
		for i := range coverage {
			p := vec.Vec2{X: float64(xMin + i), Y: float64(y)}
			coverage[i] = float32(r.opacity(p.Sub(center).Length() / rf))
		}
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// opacity maps a distance, measured in radii, to soft circle opacity.
func (r *Rasterizer) opacity(dist float64) float64 {
	// Pixels in the corners of the bounding square are further away
	// than one radius and get zero opacity.
	o := min(max(1-dist, 0), 1)
	if o >= r.SnapOpacity {
		o = 1
	}
	return o
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// lerp interpolates linearly from a (t = 0) to b (t = 1).
// The result is exact at both ends and when a == b.
func lerp(a, t, b float64) float64 {
	return a + t*(b-a)
}

// Default values for rasterizer parameters.
const (
	// DefaultSnapOpacity removes the visible ring at the boundary of the
	// solid core of a soft circle.
	DefaultSnapOpacity = 0.85
)
