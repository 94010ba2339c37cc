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

package frame

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"seehuhn.de/go/stardrift/raster"
)

// State is the run state of a Loop.
type State int32

// Possible values of State.
const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Input is a source of user input. Poll consumes all pending events
// without blocking and reports whether the user asked to quit.
type Input interface {
	Poll() bool
}

// Scene is updated once per frame. The argument is the duration of the
// previous frame.
type Scene interface {
	Update(dt time.Duration)
}

// Presenter makes the contents of a buffer visible.
type Presenter interface {
	Present(buf *raster.Buffer) error
}

// Stats summarizes the frames rendered so far.
type Stats struct {
	Frames    int
	LastFrame time.Duration // total duration of the last frame, including sleep
	FPS       float64       // frame rate implied by LastFrame
}

// Loop runs the per-frame sequence of input, update, present and pacing
// on the calling goroutine.
type Loop struct {
	Input     Input // may be nil
	Scene     Scene
	Presenter Presenter
	Buffer    *raster.Buffer
	Pacer     *Pacer

	// MaxFrames stops the loop after this many frames. Zero means no
	// limit.
	MaxFrames int

	Logger zerolog.Logger

	state atomic.Int32
	last  time.Duration
	stats Stats
}

// Run calls Tick until the loop is stopped, the context is cancelled or
// an error occurs. Context cancellation is not reported as an error.
func (l *Loop) Run(ctx context.Context) error {
	if l.Scene == nil || l.Presenter == nil || l.Buffer == nil || l.Pacer == nil {
		return ErrIncomplete
	}
	l.Logger.Debug().
		Dur("target", l.Pacer.Target).
		Int("width", l.Buffer.Width).
		Int("height", l.Buffer.Height).
		Msg("frame loop started")

	for l.State() == Running {
		if ctx.Err() != nil {
			l.Stop()
			break
		}
		if err := l.Tick(); err != nil {
			l.Stop()
			return err
		}
	}

	l.Logger.Debug().Int("frames", l.stats.Frames).Msg("frame loop stopped")
	return nil
}

// Tick renders a single frame. The first frame is updated with the
// target frame duration.
func (l *Loop) Tick() error {
	if l.State() != Running {
		return nil
	}

	start := l.Pacer.Now()
	if l.Input != nil && l.Input.Poll() {
		l.Logger.Debug().Msg("quit requested")
		l.Stop()
		return nil
	}

	dt := l.last
	if dt <= 0 {
		dt = l.Pacer.Target
	}
	l.Scene.Update(dt)

	if err := l.Presenter.Present(l.Buffer); err != nil {
		return fmt.Errorf("present frame %d: %w", l.stats.Frames, err)
	}

	l.last = l.Pacer.Wait(start)

	l.stats.Frames++
	l.stats.LastFrame = l.last
	if l.last > 0 {
		l.stats.FPS = float64(time.Second) / float64(l.last)
	}
	if e := l.Logger.Debug(); e.Enabled() {
		e.Int("frame", l.stats.Frames).
			Float64("fps", l.stats.FPS).
			Float64("ms", float64(l.last)/float64(time.Millisecond)).
			Msg("frame")
	}

	if l.MaxFrames > 0 && l.stats.Frames >= l.MaxFrames {
		l.Stop()
	}
	return nil
}

// Stop makes the loop exit after the current frame.
// Stop may be called from any goroutine.
func (l *Loop) Stop() {
	l.state.Store(int32(Stopped))
}

// State returns the current run state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Stats returns the frame statistics.
func (l *Loop) Stats() Stats {
	return l.stats
}

// ErrIncomplete is returned by Run when a required collaborator is
// missing.
var ErrIncomplete = errors.New("frame: loop is missing a collaborator")
