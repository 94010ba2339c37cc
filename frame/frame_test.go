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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"seehuhn.de/go/stardrift/raster"
)

// fakeClock advances only when Sleep is called or work is simulated.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

// busyScene simulates work by advancing the clock.
type busyScene struct {
	clock *fakeClock
	work  []time.Duration
	dts   []time.Duration
}

func (s *busyScene) Update(dt time.Duration) {
	s.dts = append(s.dts, dt)
	if i := len(s.dts) - 1; i < len(s.work) {
		s.clock.now = s.clock.now.Add(s.work[i])
	}
}

type countingPresenter struct {
	n   int
	err error
}

func (p *countingPresenter) Present(*raster.Buffer) error {
	p.n++
	return p.err
}

type quitAfter struct {
	polls, limit int
}

func (q *quitAfter) Poll() bool {
	q.polls++
	return q.polls > q.limit
}

func TestNewPacer(t *testing.T) {
	for _, refresh := range []float64{0, -60} {
		if _, err := NewPacer(refresh, nil); !errors.Is(err, ErrRefreshRate) {
			t.Errorf("refresh %g: got %v, want %v", refresh, err, ErrRefreshRate)
		}
	}

	p, err := NewPacer(50, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Target != 20*time.Millisecond {
		t.Errorf("target = %s, want 20ms", p.Target)
	}
}

func TestPacerWait(t *testing.T) {
	cases := []struct {
		work      time.Duration
		wantSleep time.Duration
		wantTotal time.Duration
	}{
		{0, 20 * time.Millisecond, 20 * time.Millisecond},
		{5 * time.Millisecond, 15 * time.Millisecond, 20 * time.Millisecond},
		{19 * time.Millisecond, time.Millisecond, 20 * time.Millisecond},
		{20 * time.Millisecond, 0, 20 * time.Millisecond},
		{35 * time.Millisecond, 0, 35 * time.Millisecond},
	}
	for _, tc := range cases {
		clock := newFakeClock()
		p, err := NewPacer(50, clock)
		if err != nil {
			t.Fatal(err)
		}

		start := clock.Now()
		clock.now = clock.now.Add(tc.work)
		total := p.Wait(start)

		var slept time.Duration
		for _, d := range clock.sleeps {
			slept += d
		}
		if tc.wantSleep == 0 && len(clock.sleeps) != 0 {
			t.Errorf("work %s: slept %v, want no sleep", tc.work, clock.sleeps)
		}
		if slept != tc.wantSleep {
			t.Errorf("work %s: slept %s, want %s", tc.work, slept, tc.wantSleep)
		}
		if total != tc.wantTotal {
			t.Errorf("work %s: total %s, want %s", tc.work, total, tc.wantTotal)
		}
	}
}

func TestLoopFrameDurations(t *testing.T) {
	clock := newFakeClock()
	pacer, err := NewPacer(50, clock)
	if err != nil {
		t.Fatal(err)
	}
	scene := &busyScene{
		clock: clock,
		work:  []time.Duration{5 * time.Millisecond, 30 * time.Millisecond, 10 * time.Millisecond},
	}
	pres := &countingPresenter{}
	l := &Loop{
		Scene:     scene,
		Presenter: pres,
		Buffer:    raster.NewBuffer(4, 4, 0),
		Pacer:     pacer,
		MaxFrames: 4,
	}

	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	want := []time.Duration{
		20 * time.Millisecond, // first frame: target
		20 * time.Millisecond, // after 5ms of work and 15ms of sleep
		30 * time.Millisecond, // slow frame, no sleep
		20 * time.Millisecond,
	}
	if len(scene.dts) != len(want) {
		t.Fatalf("got %d updates, want %d", len(scene.dts), len(want))
	}
	for i := range want {
		if scene.dts[i] != want[i] {
			t.Errorf("frame %d: dt = %s, want %s", i, scene.dts[i], want[i])
		}
	}
	if pres.n != 4 {
		t.Errorf("presented %d frames, want 4", pres.n)
	}
	if l.State() != Stopped {
		t.Errorf("state = %s, want %s", l.State(), Stopped)
	}
	if st := l.Stats(); st.Frames != 4 || st.FPS != 50 {
		t.Errorf("stats = %+v", st)
	}
}

func TestLoopQuit(t *testing.T) {
	clock := newFakeClock()
	pacer, err := NewPacer(60, clock)
	if err != nil {
		t.Fatal(err)
	}
	scene := &busyScene{clock: clock}
	pres := &countingPresenter{}
	l := &Loop{
		Input:     &quitAfter{limit: 3},
		Scene:     scene,
		Presenter: pres,
		Buffer:    raster.NewBuffer(1, 1, 0),
		Pacer:     pacer,
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(scene.dts) != 3 || pres.n != 3 {
		t.Errorf("updates %d, presents %d, want 3 each", len(scene.dts), pres.n)
	}
}

func TestLoopContext(t *testing.T) {
	clock := newFakeClock()
	pacer, err := NewPacer(60, clock)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scene := &busyScene{clock: clock}
	l := &Loop{Scene: scene, Presenter: &countingPresenter{}, Buffer: raster.NewBuffer(1, 1, 0), Pacer: pacer}
	if err := l.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if len(scene.dts) != 0 {
		t.Errorf("%d updates after cancellation", len(scene.dts))
	}
	if l.State() != Stopped {
		t.Errorf("state = %s", l.State())
	}
}

func TestLoopPresentError(t *testing.T) {
	clock := newFakeClock()
	pacer, err := NewPacer(60, clock)
	if err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	l := &Loop{
		Scene:     &busyScene{clock: clock},
		Presenter: &countingPresenter{err: boom},
		Buffer:    raster.NewBuffer(1, 1, 0),
		Pacer:     pacer,
	}
	if err := l.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("got %v, want %v", err, boom)
	}

	if err := (&Loop{}).Run(context.Background()); !errors.Is(err, ErrIncomplete) {
		t.Errorf("got %v, want %v", err, ErrIncomplete)
	}
}

func TestLoopLogging(t *testing.T) {
	clock := newFakeClock()
	pacer, err := NewPacer(50, clock)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	l := &Loop{
		Scene:     &busyScene{clock: clock},
		Presenter: &countingPresenter{},
		Buffer:    raster.NewBuffer(1, 1, 0),
		Pacer:     pacer,
		MaxFrames: 2,
		Logger:    zerolog.New(out).Level(zerolog.DebugLevel),
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), `"fps":50`); n != 2 {
		t.Errorf("found %d frame records in %q", n, out.String())
	}
}
