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

package cliconfig

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"seehuhn.de/go/stardrift/raster"
	"seehuhn.de/go/stardrift/starfield"
)

// Config holds CLI configuration for stardrift.
type Config struct {
	Stars     int
	MinRadius int
	MaxRadius int
	Speed     float64
	Refresh   float64
	Seed      uint64 // zero picks a random seed

	Background string
	StarColor  string

	Bitmap   string
	RowOrder string

	HUD      bool
	Frames   int
	LogLevel string
	Watch    bool

	// headless snapshots
	Width  int
	Height int
	PNG    string
	PDF    string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	sf := starfield.DefaultConfig()
	return Config{
		Stars:      sf.Count,
		MinRadius:  sf.MinRadius,
		MaxRadius:  sf.MaxRadius,
		Speed:      sf.Speed,
		Refresh:    60,
		Background: FormatColor(sf.Background),
		StarColor:  FormatColor(sf.Color),
		RowOrder:   raster.BottomUp.String(),
		LogLevel:   "info",
		Width:      800,
		Height:     600,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if !(c.Refresh > 0) || math.IsInf(c.Refresh, 0) {
		return fmt.Errorf("refresh rate must be positive")
	}
	if c.Frames < 0 {
		return fmt.Errorf("frame count must not be negative")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("snapshot size %dx%d is invalid", c.Width, c.Height)
	}
	if _, err := raster.ParseRowOrder(c.RowOrder); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	sf, err := c.Starfield()
	if err != nil {
		return err
	}
	return sf.Validate()
}

// Starfield converts the configuration to star field parameters.
func (c *Config) Starfield() (starfield.Config, error) {
	bg, err := ParseColor(c.Background)
	if err != nil {
		return starfield.Config{}, fmt.Errorf("background: %w", err)
	}
	fg, err := ParseColor(c.StarColor)
	if err != nil {
		return starfield.Config{}, fmt.Errorf("star color: %w", err)
	}
	return starfield.Config{
		Count:      c.Stars,
		MinRadius:  c.MinRadius,
		MaxRadius:  c.MaxRadius,
		Speed:      c.Speed,
		Background: bg,
		Color:      fg,
	}, nil
}

// ParseColor parses a color of the form "#rrggbb" or "#rrggbbaa".
// If the alpha component is omitted, the color is opaque.
func ParseColor(s string) (raster.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return raster.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return raster.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return raster.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(c raster.Color) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ErrColor is returned for malformed color strings.
var ErrColor = errors.New("invalid color")

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setUint sets a uint64 value if positive and flag not changed.
func (s *configSetter) setUint(flag string, value uint64, dst *uint64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}
