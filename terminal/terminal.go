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

// Package terminal shows a pixel buffer in a text terminal and reads
// keyboard input from it.
//
// Each character cell displays two vertically stacked pixels: the upper
// half block glyph is drawn in the color of the upper pixel, on a
// background in the color of the lower pixel.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"seehuhn.de/go/stardrift/raster"
)

// Screen presents frames on a tcell screen.
//
// Screen implements the Presenter and Input interfaces of the frame
// package. It must only be used from one goroutine.
type Screen struct {
	Logger zerolog.Logger

	screen tcell.Screen
}

// Open initialises the controlling terminal.
func Open() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	s := New(screen)
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// New wraps an existing screen. The caller must call Init before the
// first frame is presented.
func New(screen tcell.Screen) *Screen {
	return &Screen{screen: screen}
}

// Init prepares the screen for drawing.
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

// BufferSize returns the pixel dimensions which fill the whole screen.
func (s *Screen) BufferSize() (width, height int) {
	cols, rows := s.screen.Size()
	return cols, 2 * rows
}

// Present draws buf in the top-left corner of the screen. Pixels which
// do not fit on the screen are dropped. If buf has an odd number of
// rows, the lower half of the last cell row shows the terminal default
// background.
func (s *Screen) Present(buf *raster.Buffer) error {
	cols, rows := s.screen.Size()
	cols = min(cols, buf.Width)
	rows = min(rows, (buf.Height+1)/2)

	for row := range rows {
		y := 2 * row
		for x := range cols {
			style := tcell.StyleDefault.Foreground(cellColor(buf.Pixel(x, y)))
			if y+1 < buf.Height {
				style = style.Background(cellColor(buf.Pixel(x, y+1)))
			}
			s.screen.SetContent(x, row, upperHalf, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// Poll consumes all pending events without blocking. It reports whether
// the user asked to quit, by pressing Esc, Ctrl-C or q.
func (s *Screen) Poll() bool {
	quit := false
	for s.screen.HasPendingEvent() {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit = true
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			s.Logger.Debug().Int("cols", w).Int("rows", h).Msg("terminal resized")
			s.screen.Sync()
		case nil:
			return quit
		}
	}
	return quit
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

func cellColor(c raster.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

const upperHalf = '▀'
