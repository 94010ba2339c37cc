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

// Command stardrift shows an animated field of falling stars in the
// terminal, rendered by a software rasterizer.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"seehuhn.de/go/stardrift/bmp"
	"seehuhn.de/go/stardrift/export"
	"seehuhn.de/go/stardrift/frame"
	"seehuhn.de/go/stardrift/hud"
	"seehuhn.de/go/stardrift/internal/cliconfig"
	"seehuhn.de/go/stardrift/raster"
	"seehuhn.de/go/stardrift/starfield"
	"seehuhn.de/go/stardrift/terminal"
)

var exampleUsage = strings.TrimSpace(`
  stardrift --stars 120 --hud
  stardrift --config $HOME/.stardrift/config.toml --watch
  stardrift snapshot --frames 120 --png stars.png --pdf stars.pdf
  stardrift sprite --size 32 --out star.bmp
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger(cfg.LogLevel)

	// load merges the config file into cfg and validates the result.
	load := func(cmd *cobra.Command) (string, error) {
		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}

		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return "", fmt.Errorf("load config: %w", err)
			}
			cliconfig.ApplyFileConfig(&cfg, fc, changed)
		}
		if err := cfg.Validate(); err != nil {
			return "", err
		}
		log = cliconfig.Logger(cfg.LogLevel)
		log.Debug().Interface("config", cfg).Msg("configuration")
		return cfgFile, nil
	}

	root := &cobra.Command{
		Use:           "stardrift",
		Short:         "Falling stars in your terminal",
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := load(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, cfgFile, log)
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Simulate without a terminal and save the final frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := load(cmd); err != nil {
				return err
			}
			return snapshot(cfg, log)
		},
	}

	var spriteOut string
	var spriteSize int
	spriteCmd := &cobra.Command{
		Use:   "sprite",
		Short: "Write a soft star as a 32-bit BMP file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := load(cmd); err != nil {
				return err
			}
			return sprite(cfg, spriteOut, spriteSize, log)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.stardrift/config.toml)")
	pf.IntVar(&cfg.Stars, "stars", cfg.Stars, "number of stars")
	pf.IntVar(&cfg.MinRadius, "min-radius", cfg.MinRadius, "smallest star radius in pixels")
	pf.IntVar(&cfg.MaxRadius, "max-radius", cfg.MaxRadius, "star radius upper bound (exclusive)")
	pf.Float64Var(&cfg.Speed, "speed", cfg.Speed, "fall speed in radii per second")
	pf.Float64Var(&cfg.Refresh, "refresh", cfg.Refresh, "frame rate in Hz")
	pf.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	pf.StringVar(&cfg.Background, "background", cfg.Background, "background color as #rrggbb")
	pf.StringVar(&cfg.StarColor, "star-color", cfg.StarColor, "star color as #rrggbb")
	pf.IntVar(&cfg.Frames, "frames", cfg.Frames, "stop after this many frames (0: no limit)")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.Flags().StringVar(&cfg.Bitmap, "bitmap", cfg.Bitmap, "32-bit BMP file to show in the top-right corner")
	root.Flags().StringVar(&cfg.RowOrder, "row-order", cfg.RowOrder, "row order of the bitmap (bottom-up, top-down)")
	root.Flags().BoolVar(&cfg.HUD, "hud", cfg.HUD, "show frame statistics")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload colors when the config file changes")

	snapshotCmd.Flags().IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	snapshotCmd.Flags().IntVar(&cfg.Height, "height", cfg.Height, "image height in pixels")
	snapshotCmd.Flags().StringVar(&cfg.PNG, "png", "", "write a PNG image to this file")
	snapshotCmd.Flags().StringVar(&cfg.PDF, "pdf", "", "write a PDF file to this file")

	spriteCmd.Flags().StringVar(&spriteOut, "out", "star.bmp", "output file")
	spriteCmd.Flags().IntVar(&spriteSize, "size", 32, "sprite diameter in pixels")

	root.AddCommand(snapshotCmd, spriteCmd)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("stardrift")
		os.Exit(1)
	}
}

// run shows the animation in the terminal until the user quits.
func run(ctx context.Context, cfg cliconfig.Config, cfgFile string, log zerolog.Logger) error {
	sfCfg, err := cfg.Starfield()
	if err != nil {
		return err
	}
	pacer, err := frame.NewPacer(cfg.Refresh, nil)
	if err != nil {
		return err
	}

	var overlay *raster.Bitmap
	if cfg.Bitmap != "" {
		order, err := raster.ParseRowOrder(cfg.RowOrder)
		if err != nil {
			return err
		}
		overlay, err = bmp.Load(cfg.Bitmap, order)
		if err != nil {
			return fmt.Errorf("load bitmap: %w", err)
		}
	}

	screen, err := terminal.Open()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()
	screen.Logger = log

	w, h := screen.BufferSize()
	field, err := starfield.New(sfCfg, w, h, newRand(cfg.Seed, log))
	if err != nil {
		return err
	}
	buf := raster.NewBuffer(w, h, 0)
	sc := newScene(raster.NewPainter(buf), field, log)
	if overlay != nil {
		sc.setSprite(overlay)
	}

	loop := &frame.Loop{
		Input:     screen,
		Scene:     sc,
		Presenter: screen,
		Buffer:    buf,
		Pacer:     pacer,
		MaxFrames: cfg.Frames,
		Logger:    log,
	}
	if cfg.HUD {
		sc.hud = hud.New(raster.Color{R: 255, G: 255, B: 255, A: 255}, sfCfg.Background)
		sc.stats = loop.Stats
	}
	if cfg.Watch && cfgFile != "" {
		watcher, err := cliconfig.Watch(ctx, cfgFile, log)
		if err != nil {
			log.Warn().Err(err).Str("path", cfgFile).Msg("cannot watch config file")
		} else {
			sc.reloads = watcher.Reloads
		}
	}

	return loop.Run(ctx)
}

// snapshot simulates cfg.Frames frames at the configured refresh rate and
// writes the result.
func snapshot(cfg cliconfig.Config, log zerolog.Logger) error {
	if cfg.PNG == "" && cfg.PDF == "" {
		return fmt.Errorf("snapshot: no output file given (use --png or --pdf)")
	}
	sfCfg, err := cfg.Starfield()
	if err != nil {
		return err
	}
	field, err := starfield.New(sfCfg, cfg.Width, cfg.Height, newRand(cfg.Seed, log))
	if err != nil {
		return err
	}
	buf := raster.NewBuffer(cfg.Width, cfg.Height, 0)
	p := raster.NewPainter(buf)
	buf.Clear(sfCfg.Background)

	dt := time.Duration(float64(time.Second) / cfg.Refresh)
	frames := max(cfg.Frames, 1)
	for range frames {
		field.Step(p, dt)
	}
	log.Info().Int("frames", frames).Dur("dt", dt).Msg("simulation done")

	if cfg.PNG != "" {
		if err := export.SavePNG(cfg.PNG, buf); err != nil {
			return fmt.Errorf("write PNG: %w", err)
		}
		log.Info().Str("path", cfg.PNG).Msg("PNG written")
	}
	if cfg.PDF != "" {
		if err := export.SavePDF(cfg.PDF, field); err != nil {
			return fmt.Errorf("write PDF: %w", err)
		}
		log.Info().Str("path", cfg.PDF).Msg("PDF written")
	}
	return nil
}

// sprite writes a single soft star as a BMP file.
func sprite(cfg cliconfig.Config, out string, size int, log zerolog.Logger) error {
	if size < 2 {
		return fmt.Errorf("sprite: size %d too small", size)
	}
	sfCfg, err := cfg.Starfield()
	if err != nil {
		return err
	}
	bm := starfield.Sprite(size, sfCfg.Color)
	if err := bmp.Save(out, bm); err != nil {
		return fmt.Errorf("write sprite: %w", err)
	}
	log.Info().Str("path", out).Int("size", bm.Width).Msg("sprite written")
	return nil
}

func newRand(seed uint64, log zerolog.Logger) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debug().Uint64("seed", seed).Msg("random seed")
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
