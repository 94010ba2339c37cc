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

// Package frame drives the render loop: it drains input, updates the
// scene, presents the pixel buffer and paces frames to a fixed refresh
// rate.
package frame

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Clock abstracts the wall clock, so that frame pacing can be tested
// without sleeping.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the Clock backed by the time package.
type SystemClock struct{}

// Now implements the Clock interface.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep implements the Clock interface.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Pacer limits the frame rate by sleeping for the remainder of each
// frame period.
type Pacer struct {
	// Target is the duration of one frame.
	Target time.Duration

	clock Clock
}

// NewPacer returns a Pacer for the given refresh rate in Hz.
// If clock is nil, SystemClock is used.
func NewPacer(refresh float64, clock Clock) (*Pacer, error) {
	if !(refresh > 0) || math.IsInf(refresh, 0) {
		return nil, fmt.Errorf("%w: %g", ErrRefreshRate, refresh)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	target := time.Duration(float64(time.Second) / refresh)
	if target <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrRefreshRate, refresh)
	}
	return &Pacer{Target: target, clock: clock}, nil
}

// Now returns the current time of the pacer's clock.
func (p *Pacer) Now() time.Time {
	return p.clock.Now()
}

// Wait sleeps until Target has passed since start. If the frame already
// took longer than Target, Wait returns without sleeping.
//
// The return value is the total time since start, measured after the
// sleep.
func (p *Pacer) Wait(start time.Time) time.Duration {
	elapsed := p.clock.Now().Sub(start)
	if elapsed < p.Target {
		p.clock.Sleep(p.Target - elapsed)
		elapsed = p.clock.Now().Sub(start)
	}
	return elapsed
}

// ErrRefreshRate is returned by NewPacer for refresh rates which are not
// positive.
var ErrRefreshRate = errors.New("frame: invalid refresh rate")
