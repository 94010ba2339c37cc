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

// Package starfield simulates soft-edged stars falling down a pixel
// buffer.
//
// Every star moves down at a speed proportional to its radius. Once a
// star has left the bottom of the buffer it is recycled at the top with a
// new random size and column.
package starfield

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stardrift/raster"
)

// Config holds the parameters of a star field.
type Config struct {
	// Count is the number of stars.
	Count int

	// MinRadius and MaxRadius bound the star radius in pixels. Radii are
	// chosen uniformly from the half-open range [MinRadius, MaxRadius).
	MinRadius int
	MaxRadius int

	// Speed is the fall speed in radii per second.
	Speed float64

	Background raster.Color
	Color      raster.Color
}

// DefaultConfig returns the standard star field parameters.
func DefaultConfig() Config {
	return Config{
		Count:      60,
		MinRadius:  2,
		MaxRadius:  12,
		Speed:      4,
		Background: raster.Color{R: 64, G: 18, B: 139, A: 255},
		Color:      raster.Color{R: 249, G: 217, B: 73, A: 255},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: negative star count %d", ErrConfig, c.Count)
	}
	if c.MinRadius < 1 {
		return fmt.Errorf("%w: minimum radius %d < 1", ErrConfig, c.MinRadius)
	}
	if c.MaxRadius <= c.MinRadius {
		return fmt.Errorf("%w: radius range [%d, %d) is empty",
			ErrConfig, c.MinRadius, c.MaxRadius)
	}
	if c.Speed < 0 {
		return fmt.Errorf("%w: negative speed %g", ErrConfig, c.Speed)
	}
	return nil
}

// Star is a single falling star.
type Star struct {
	Origin vec.Vec2 // center, in device coordinates
	Radius int
}

// Field is a collection of stars moving over a buffer of fixed size.
//
// A Field is not safe for concurrent use.
type Field struct {
	cfg    Config
	width  int
	height int
	rng    *rand.Rand
	stars  []Star
}

// New places cfg.Count stars at random positions.
//
// The random number generator is used for all later recycling as well and
// must not be used concurrently by the caller.
func New(cfg Config, width, height int, rng *rand.Rand) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}

	f := &Field{
		cfg:    cfg,
		width:  width,
		height: height,
		rng:    rng,
		stars:  make([]Star, cfg.Count),
	}
	for i := range f.stars {
		r := f.randomRadius()
		f.stars[i] = Star{
			Origin: vec.Vec2{
				X: f.randomColumn(r),
				Y: uniform(rng, float64(-r), float64(height-r)),
			},
			Radius: r,
		}
	}
	return f, nil
}

// Stars returns the current stars. The slice is owned by the Field.
func (f *Field) Stars() []Star {
	return f.stars
}

// Config returns the parameters the field was created with, including
// any later color changes.
func (f *Field) Config() Config {
	return f.cfg
}

// Size returns the dimensions of the area the stars move in.
func (f *Field) Size() (width, height int) {
	return f.width, f.height
}

// Recolor changes the colors used for later frames.
// The caller is responsible for repainting the background.
func (f *Field) Recolor(background, star raster.Color) {
	f.cfg.Background = background
	f.cfg.Color = star
}

// Step advances the animation by dt and repaints the stars.
//
// All stars are erased before any star is drawn, so that overlapping
// stars never erase each other.
func (f *Field) Step(p *raster.Painter, dt time.Duration) {
	f.Erase(p)
	f.Advance(dt)
	f.Draw(p)
}

// Erase paints the bounding square of every star with the background
// color.
func (f *Field) Erase(p *raster.Painter) {
	for _, s := range f.stars {
		r := float64(s.Radius)
		topLeft := s.Origin.Sub(vec.Vec2{X: r, Y: r})
		p.FillRect(topLeft, 2*s.Radius, 2*s.Radius, f.cfg.Background)
	}
}

// Advance moves every star down and recycles stars which have left the
// bottom of the area.
func (f *Field) Advance(dt time.Duration) {
	sec := dt.Seconds()
	for i := range f.stars {
		s := &f.stars[i]
		s.Origin.Y += f.cfg.Speed * float64(s.Radius) * sec
		if s.Origin.Y-float64(s.Radius) >= float64(f.height) {
			r := f.randomRadius()
			s.Radius = r
			s.Origin.X = f.randomColumn(r)
			s.Origin.Y = float64(-r)
		}
	}
}

// Draw paints all stars.
func (f *Field) Draw(p *raster.Painter) {
	for _, s := range f.stars {
		p.FillSoftCircle(s.Origin, s.Radius, f.cfg.Color)
	}
}

func (f *Field) randomRadius() int {
	return f.cfg.MinRadius + f.rng.IntN(f.cfg.MaxRadius-f.cfg.MinRadius)
}

// randomColumn returns an x coordinate in [-r/2, width - r/2), where r/2
// is rounded toward zero.
func (f *Field) randomColumn(r int) float64 {
	half := float64(r / 2)
	return uniform(f.rng, -half, float64(f.width)-half)
}

// uniform returns a number in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	v := lo + rng.Float64()*(hi-lo)
	if v >= hi {
		v = math.Nextafter(hi, lo)
	}
	return v
}

var (
	// ErrConfig is returned for inconsistent star field parameters.
	ErrConfig = errors.New("starfield: invalid configuration")

	// ErrSize is returned when the area is empty.
	ErrSize = errors.New("starfield: invalid size")
)
