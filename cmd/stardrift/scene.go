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

package main

import (
	"time"

	"github.com/rs/zerolog"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stardrift/frame"
	"seehuhn.de/go/stardrift/hud"
	"seehuhn.de/go/stardrift/internal/cliconfig"
	"seehuhn.de/go/stardrift/raster"
	"seehuhn.de/go/stardrift/starfield"
)

// scene is the per-frame update of the animation: stars first, then the
// optional bitmap overlay and the status line on top.
type scene struct {
	painter *raster.Painter
	field   *starfield.Field

	sprite    *raster.Bitmap
	spriteBox [3]vec.Vec2 // origin, x corner, y corner

	hud   *hud.Overlay
	stats func() frame.Stats

	reloads <-chan cliconfig.FileConfig
	log     zerolog.Logger
}

func newScene(p *raster.Painter, f *starfield.Field, log zerolog.Logger) *scene {
	p.Dst.Clear(f.Config().Background)
	return &scene{painter: p, field: f, log: log}
}

// setSprite places bm at its native size in the top-right corner.
func (s *scene) setSprite(bm *raster.Bitmap) {
	s.sprite = bm
	origin := vec.Vec2{X: float64(s.painter.Dst.Width - bm.Width - 2), Y: 2}
	s.spriteBox = [3]vec.Vec2{
		origin,
		origin.Add(vec.Vec2{X: float64(bm.Width)}),
		origin.Add(vec.Vec2{Y: float64(bm.Height)}),
	}
}

func (s *scene) Update(dt time.Duration) {
	s.applyReloads()

	s.field.Step(s.painter, dt)
	if s.sprite != nil {
		// The blit blends, so the previous copy is removed first.
		origin := s.spriteBox[0]
		s.painter.FillRect(origin, s.sprite.Width+1, s.sprite.Height+1, s.field.Config().Background)
		s.painter.BlitBilinear(origin, s.spriteBox[1], s.spriteBox[2], s.sprite)
	}
	if s.hud != nil && s.stats != nil {
		st := s.stats()
		s.hud.Draw(s.painter, hud.FrameStats(st.FPS, st.LastFrame))
	}
}

// applyReloads picks up color changes from the config watcher.
func (s *scene) applyReloads() {
	if s.reloads == nil {
		return
	}
	select {
	case fc := <-s.reloads:
		cfg := s.field.Config()
		bg, fg := cfg.Background, cfg.Color
		if fc.Background != "" {
			c, err := cliconfig.ParseColor(fc.Background)
			if err != nil {
				s.log.Warn().Err(err).Msg("ignoring background")
			} else {
				bg = c
			}
		}
		if fc.StarColor != "" {
			c, err := cliconfig.ParseColor(fc.StarColor)
			if err != nil {
				s.log.Warn().Err(err).Msg("ignoring star color")
			} else {
				fg = c
			}
		}
		if bg == cfg.Background && fg == cfg.Color {
			return
		}
		s.field.Recolor(bg, fg)
		s.painter.Dst.Clear(bg)
		if s.hud != nil {
			s.hud.Background = bg
		}
		s.log.Info().
			Str("background", cliconfig.FormatColor(bg)).
			Str("star_color", cliconfig.FormatColor(fg)).
			Msg("colors changed")
	default:
	}
}
