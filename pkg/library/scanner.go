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

// Package library processes whole game libraries: every title directory
// under the configured roots is resolved and gets its launcher scripts.
package library

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/games"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/scripts"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of processing one title directory.
type Result struct {
	Game *games.Game
	Err  error
	// Files are the launcher files written, empty for custom games.
	Files []string
}

// Scanner resolves and builds the titles of a library.
type Scanner struct {
	fs       afero.Fs
	resolver *games.Resolver
	renderer *scripts.Renderer
	workers  int
}

func NewScanner(
	fs afero.Fs,
	resolver *games.Resolver,
	renderer *scripts.Renderer,
	workers int,
) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		fs:       fs,
		resolver: resolver,
		renderer: renderer,
		workers:  workers,
	}
}

// TitleDirs lists the title directories directly inside root, sorted by
// name. Hidden directories are skipped.
func TitleDirs(fs afero.Fs, root string) ([]string, error) {
	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read library root %s: %w", root, err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dirs = append(dirs, filepath.Join(root, e.Name()))
	}
	return dirs, nil
}

// Process resolves one title directory and writes its launcher scripts.
// It never panics or returns early on a bad title; problems are reported
// on the result.
func (s *Scanner) Process(dir string) Result {
	game := s.resolver.Resolve(dir)
	res := Result{Game: game}

	if game.Void {
		res.Err = fmt.Errorf("%w: %w", scripts.ErrVoidGame, game.VoidReason)
		return res
	}

	files, err := s.renderer.Build(game)
	if err != nil {
		log.Error().Err(err).Msgf("failed to build scripts for %s", dir)
		res.Err = err
		return res
	}
	res.Files = files
	return res
}

// Scan processes every title under the roots. Results are in root order,
// then title name order, regardless of worker count. Unreadable roots are
// skipped and reported in the returned error alongside the results of the
// others; the scan only stops early when ctx is cancelled.
func (s *Scanner) Scan(ctx context.Context, roots []string) ([]Result, error) {
	var (
		dirs    []string
		rootErr error
	)
	for _, root := range roots {
		found, err := TitleDirs(s.fs, root)
		if err != nil {
			log.Error().Err(err).Msg("skipping library root")
			rootErr = errors.Join(rootErr, err)
			continue
		}
		dirs = append(dirs, found...)
	}

	log.Info().Msgf("loading library: %d titles in %d roots", len(dirs), len(roots))

	results := make([]Result, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, dir := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err //nolint:wrapcheck // cancellation passes through
			}
			results[i] = s.Process(dir)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("library scan interrupted: %w", err)
	}

	logSummary(results)
	return results, rootErr
}

func logSummary(results []Result) {
	var built, custom, void, failed int
	for _, res := range results {
		switch {
		case res.Game.Void:
			void++
		case res.Err != nil:
			failed++
		case len(res.Files) == 0:
			custom++
		default:
			built++
		}
	}

	log.Info().Msgf(
		"library loaded: %d built, %d custom, %d void, %d failed",
		built, custom, void, failed,
	)
}

func isDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Debug().Err(err).Msgf("failed to stat %s", path)
		}
		return false
	}
	return info.IsDir()
}
