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
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML representation of Config.
// Zero values mean "not set".
type FileConfig struct {
	Stars      int     `toml:"stars"`
	MinRadius  int     `toml:"min_radius"`
	MaxRadius  int     `toml:"max_radius"`
	Speed      float64 `toml:"speed"`
	Refresh    float64 `toml:"refresh"`
	Seed       uint64  `toml:"seed"`
	Background string  `toml:"background"`
	StarColor  string  `toml:"star_color"`
	Bitmap     string  `toml:"bitmap"`
	RowOrder   string  `toml:"row_order"`
	HUD        *bool   `toml:"hud"`
	Frames     int     `toml:"frames"`
	LogLevel   string  `toml:"log_level"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.stardrift/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".stardrift", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setInt("stars", fc.Stars, &cfg.Stars)
	s.setInt("min-radius", fc.MinRadius, &cfg.MinRadius)
	s.setInt("max-radius", fc.MaxRadius, &cfg.MaxRadius)
	s.setFloat("speed", fc.Speed, &cfg.Speed)
	s.setFloat("refresh", fc.Refresh, &cfg.Refresh)
	s.setUint("seed", fc.Seed, &cfg.Seed)

	s.setString("background", fc.Background, &cfg.Background)
	s.setString("star-color", fc.StarColor, &cfg.StarColor)
	s.setString("bitmap", fc.Bitmap, &cfg.Bitmap)
	s.setString("row-order", fc.RowOrder, &cfg.RowOrder)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setBool("hud", fc.HUD, &cfg.HUD)
	s.setInt("frames", fc.Frames, &cfg.Frames)
	s.setInt("width", fc.Width, &cfg.Width)
	s.setInt("height", fc.Height, &cfg.Height)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
