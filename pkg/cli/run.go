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
	"fmt"
	"io"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/config"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/games"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/keymap"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/library"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/scripts"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrNoRoots = errors.New("no library roots configured")

// App holds the library components built from one config.
type App struct {
	fs       afero.Fs
	cfg      *config.Instance
	clock    clockwork.Clock
	resolver *games.Resolver
	renderer *scripts.Renderer
	scanner  *library.Scanner
}

// NewApp loads the key binding template library once and builds the
// resolver, renderer and scanner on top of it.
func NewApp(fs afero.Fs, cfg *config.Instance) (*App, error) {
	lib, err := keymap.LoadLibrary(fs, cfg.KeymapTemplatesPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load key binding templates: %w", err)
	}
	log.Info().Msgf("loaded %d key binding templates from %s", lib.Len(), lib.Path())

	resolver := games.NewResolver(fs, nil)
	renderer := scripts.NewRenderer(fs, cfg, keymap.AHKTranslator{}, lib)
	return &App{
		fs:       fs,
		cfg:      cfg,
		clock:    clockwork.NewRealClock(),
		resolver: resolver,
		renderer: renderer,
		scanner:  library.NewScanner(fs, resolver, renderer, cfg.Workers()),
	}, nil
}

// PreRun resolves the game in dir and runs its pre-launch step.
func (a *App) PreRun(dir string) error {
	game := a.resolver.Resolve(dir)
	if err := a.renderer.PreRun(game); err != nil {
		return fmt.Errorf("%s: %w", dir, err)
	}
	return nil
}

type RunOptions struct {
	Roots []string
	List  bool
	Watch bool
}

// Run loads the library, optionally lists it to out, and with Watch set
// keeps rebuilding changed titles until ctx is done.
func (a *App) Run(ctx context.Context, opts RunOptions, out io.Writer) error {
	if len(opts.Roots) == 0 {
		return ErrNoRoots
	}

	results, scanErr := a.scanner.Scan(ctx, opts.Roots)
	if results == nil && scanErr != nil {
		return scanErr
	}

	if opts.List {
		if err := library.WriteCSV(out, results); err != nil {
			return err
		}
	}

	if !opts.Watch {
		return scanErr
	}
	if scanErr != nil {
		log.Warn().Err(scanErr).Msg("watching the readable roots only")
	}

	var roots []string
	for _, root := range opts.Roots {
		if _, err := library.TitleDirs(a.fs, root); err == nil {
			roots = append(roots, root)
		}
	}

	w := library.NewWatcher(a.scanner, roots, a.clock, func(res library.Result) {
		if res.Err != nil {
			log.Warn().Err(res.Err).Msgf("rebuild failed: %s", res.Game.Dir)
		}
	})
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to start watching: %w", err)
	}
	defer w.Stop()

	<-ctx.Done()
	log.Info().Msg("stopped watching library")
	return nil
}
