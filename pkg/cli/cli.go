// Zaparoo Arcade
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Arcade.
//
// Zaparoo Arcade is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Arcade is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Arcade.  If not, see <http://www.gnu.org/licenses/>.

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ZaparooProject/zaparoo-arcade/internal/telemetry"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/config"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/platforms"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Flags struct {
	Library *string
	PreRun  *string
	Version *bool
	List    *bool
	Watch   *bool
	Verbose *bool
}

// SetupFlags defines all common CLI flags between platforms.
func SetupFlags() *Flags {
	return &Flags{
		Library: flag.String(
			"library",
			"",
			"comma separated library roots, overrides the config file",
		),
		PreRun: flag.String(
			"prerun",
			"",
			"run the pre-launch step for the game in this directory and exit",
		),
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		List: flag.Bool(
			"list",
			false,
			"print the loaded library as CSV",
		),
		Watch: flag.Bool(
			"watch",
			false,
			"keep running and rebuild titles when their files change",
		),
		Verbose: flag.Bool(
			"verbose",
			false,
			"also write log output to stderr",
		),
	}
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup. Add any custom flags before running this.
func (f *Flags) Pre(pl platforms.Platform) {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("Zaparoo Arcade v%s (%s)\n", config.AppVersion, pl.ID())
		os.Exit(0)
	}
}

// LogWriters are the extra log outputs the flags ask for.
func (f *Flags) LogWriters() []io.Writer {
	if f.Verbose != nil && *f.Verbose {
		return []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
	}
	return nil
}

// Roots are the library roots to load, from -library if it was passed.
func (f *Flags) Roots(cfg *config.Instance) []string {
	if f.Library == nil || *f.Library == "" {
		return cfg.LibraryRoots()
	}
	var roots []string
	for _, r := range strings.Split(*f.Library, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roots = append(roots, r)
		}
	}
	return roots
}

// Post actions all remaining flags that require the environment to be set
// up, then exits.
func (f *Flags) Post(cfg *config.Instance, _ platforms.Platform) {
	defer telemetry.Close()

	app, err := NewApp(afero.NewOsFs(), cfg)
	if err != nil {
		log.Error().Err(err).Msg("error setting up")
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *f.PreRun != "" {
		if err := app.PreRun(*f.PreRun); err != nil {
			log.Error().Err(err).Msg("pre-run failed")
			_, _ = fmt.Fprintf(os.Stderr, "Error running pre-launch step: %v\n", err)
			telemetry.Flush()
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := RunOptions{
		Roots: f.Roots(cfg),
		List:  *f.List,
		Watch: *f.Watch,
	}
	if err := app.Run(ctx, opts, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("library load failed")
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		telemetry.Flush()
		os.Exit(1)
	}
	os.Exit(0)
}

// Setup initializes the user config and logging. Returns a user config object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(
	pl platforms.Platform,
	defaultConfig config.Values,
	writers []io.Writer,
) *config.Instance {
	err := helpers.InitLogging(pl, writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(pl), helpers.DataDir(pl), defaultConfig)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	helpers.SetLogLevel(cfg.DebugLogging())

	// Initialize error reporting (opt-in)
	if err := telemetry.Init(telemetry.Options{
		Enabled:    cfg.ErrorReporting(),
		DSN:        cfg.ErrorReportingDSN(),
		DeviceID:   cfg.DeviceID(),
		AppVersion: config.AppVersion,
		PlatformID: pl.ID(),
	}); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	log.Info().Msgf("zaparoo arcade v%s on %s, config: %s", config.AppVersion, pl.ID(), cfg.Path())
	return cfg
}
