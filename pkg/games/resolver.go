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

package games

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Resolver inspects title directories.
type Resolver struct {
	fs     afero.Fs
	images ImageLoader
}

func NewResolver(fs afero.Fs, images ImageLoader) *Resolver {
	if images == nil {
		images = NewPNGLoader(fs)
	}
	return &Resolver{fs: fs, images: images}
}

// Resolve builds the game for a title directory, reading its metadata
// file if one exists. Failures are recorded on the returned game by voiding
// it; Resolve never returns nil.
func (r *Resolver) Resolve(dir string) *Game {
	meta, err := r.ReadMetadata(dir)
	if err != nil {
		log.Warn().Err(err).Msgf("ignoring metadata for %s", dir)
		meta = nil
	}
	return r.ResolveWithMetadata(dir, meta)
}

// ReadMetadata loads the metadata file of a title directory. It returns
// nil and no error when the directory has no metadata file.
func (r *Resolver) ReadMetadata(dir string) (*Metadata, error) {
	path := filepath.Join(dir, MetadataFile)
	data, err := afero.ReadFile(r.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil //nolint:nilnil // no metadata file is the common case
	} else if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	meta, err := ParseMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return meta, nil
}

// ResolveWithMetadata builds the game for a directory using an already
// loaded metadata document, which may be nil.
func (r *Resolver) ResolveWithMetadata(dir string, meta *Metadata) *Game {
	game := &Game{
		Dir:      dir,
		Metadata: meta,
	}

	entries, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		log.Error().Err(err).Msgf("failed to read game directory, voiding game: %s", dir)
		game.void(fmt.Errorf("failed to read directory: %w", err))
		return game
	}

	if meta == nil {
		r.buildFromDirectory(game, entries)
	} else {
		r.buildFromMetadata(game, entries)
	}

	if !game.Void {
		log.Info().Msgf(
			"resolved game %q: type=%s exe=%s screenshot=%s",
			game.Name, game.Type, game.Executable, screenshotName(game.Screenshot),
		)
	}

	return game
}

func (r *Resolver) buildFromDirectory(game *Game, entries []os.FileInfo) {
	log.Warn().Msgf("no metadata, determining game type: %s", game.Dir)

	if err := detectType(game, entries); err != nil {
		log.Warn().Err(err).Msgf("voiding game: %s", game.Dir)
		game.void(err)
		return
	}

	game.Name = NameFromFolder(game.Dir)
	game.Screenshot = r.screenshot(game, entries)
}

func (r *Resolver) buildFromMetadata(game *Game, entries []os.FileInfo) {
	meta := game.Metadata

	game.Name = meta.Title
	if game.Name == "" {
		game.Name = NameFromFolder(game.Dir)
	}

	if meta.Executable == "" {
		err := fmt.Errorf("%w: executable", ErrMissingMetadataField)
		log.Error().Err(err).Msgf("voiding game: %s", game.Dir)
		game.void(err)
		return
	}
	game.Executable = meta.Executable
	if !filepath.IsAbs(game.Executable) {
		game.Executable = filepath.Join(game.Dir, game.Executable)
	}

	if t, ok := TypeFromTemplate(meta.Template); ok {
		game.Type = t
	} else if err := detectType(game, entries); err != nil {
		log.Warn().Err(err).Msgf("voiding game: %s", game.Dir)
		game.void(err)
		return
	}

	game.Screenshot = r.screenshot(game, entries)
}

// detectType finds the single launch file in a directory. An HTML export
// wins over an executable.
func detectType(game *Game, entries []os.FileInfo) error {
	if html := filesWithExt(entries, ".html"); len(html) == 1 {
		game.Type = TypePico8
		game.Executable = filepath.Join(game.Dir, html[0])
		log.Info().Msgf("determined pico8 game: %s", game.Executable)
		return nil
	}

	if exes := filesWithExt(entries, ".exe"); len(exes) == 1 {
		game.Type = TypeExe
		game.Executable = filepath.Join(game.Dir, exes[0])
		log.Info().Msgf("determined exe game: %s", game.Executable)
		return nil
	}

	return fmt.Errorf("%w: need exactly one .html or .exe file in %s", ErrAmbiguousLibrary, game.Dir)
}

// filesWithExt returns the names of regular files with the extension, in
// the directory's sorted order.
func filesWithExt(entries []os.FileInfo, ext string) []string {
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			names = append(names, e.Name())
		}
	}
	return names
}

func (r *Resolver) screenshot(game *Game, entries []os.FileInfo) Screenshot {
	if pngs := filesWithExt(entries, ".png"); len(pngs) > 0 {
		path := filepath.Join(game.Dir, pngs[0])
		img, err := r.images.Load(path)
		if err == nil {
			log.Debug().Msgf("loaded screenshot: %s", path)
			return Screenshot{Image: img, Path: path}
		}
		log.Warn().Err(err).Msgf("using default screenshot for %s", game.Dir)
	}

	return DefaultScreenshot(game.Type)
}

func screenshotName(s Screenshot) string {
	if s.Path != "" {
		return filepath.Base(s.Path)
	}
	return "default:" + s.Default
}
