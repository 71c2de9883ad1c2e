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

// Package scripts renders and writes the AutoHotkey launcher scripts for
// resolved games.
package scripts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/assets"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/games"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/keymap"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	LauncherScript = "RunGame.ahk"
	Pico8Bridge    = "Pico8Launcher.js"
)

var (
	ErrVoidGame              = errors.New("game is void")
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder in launcher script")
)

// placeholders in a template look like {UPPER_CASE}
var rePlaceholder = regexp.MustCompile(`\{+[A-Z][A-Z0-9_]*\}+`)

// Options is the runtime configuration the renderer reads.
type Options interface {
	keymap.HardwareKeys
	RunnerSecondsIdle() int
	RunnerSecondsIdleInitial() int
	RunnerSecondsESCHeld() int
	DebugOutput() bool
	StrictPlaceholders() bool
	// SharedDataDir is the root of the cabinet's shared runtime files.
	SharedDataDir() string
}

// profile is how a game type is rendered.
type profile struct {
	template string
	// runtimePath returns the {GAME_PATH} value; nil means the game's own
	// executable.
	runtimePath func(opts Options) string
	bridge      bool
}

// commonPlaceholders are filled in for every rendered type.
var commonPlaceholders = []string{
	"{GAME_PATH}",
	"{GAME_FILE}",
	"{DEBUG_OUTPUT}",
	"{IDLE_TIME}",
	"{IDLE_INITIAL}",
	"{ESC_HOLD}",
	"{KEYMAP}",
}

const bridgePlaceholder = "{{{PATH_TO_HTML}}}"

// placeholders lists what the renderer substitutes into this profile's
// launcher template.
func (p profile) placeholders() []string {
	if p.runtimePath != nil {
		return commonPlaceholders
	}
	return append([]string{"{GAME_NAME}"}, commonPlaceholders...)
}

var profiles = map[games.GameType]profile{
	games.TypeExe:    {template: assets.TemplateExe},
	games.TypeLegacy: {template: assets.TemplateExe},
	games.TypeFlash:  {template: assets.TemplateFlash},
	games.TypePico8: {
		template:    assets.TemplatePico8,
		runtimePath: Pico8RuntimePath,
		bridge:      true,
	},
}

// Pico8Dir is where the bundled browser runtime lives.
func Pico8Dir(opts Options) string {
	return filepath.Join(opts.SharedDataDir(), "Options", "Pico8")
}

// Pico8RuntimePath is the browser runtime binary used to play PICO-8
// HTML exports.
func Pico8RuntimePath(opts Options) string {
	return filepath.Join(Pico8Dir(opts), "nw.exe")
}

// Renderer renders launcher scripts and writes them to title directories.
type Renderer struct {
	fs         afero.Fs
	opts       Options
	translator keymap.Translator
	library    *keymap.Library
	template   func(name string) (string, error)
}

func NewRenderer(
	fs afero.Fs,
	opts Options,
	translator keymap.Translator,
	library *keymap.Library,
) *Renderer {
	if translator == nil {
		translator = keymap.AHKTranslator{}
	}
	return &Renderer{
		fs:         fs,
		opts:       opts,
		translator: translator,
		library:    library,
		template:   assets.GetTemplate,
	}
}

// Render produces the output files for a game, keyed by file name. Custom
// games produce no files. Placeholders without a value are left in place
// unless the options ask for strict checking.
func (r *Renderer) Render(game *games.Game, bindings keymap.BindingSet) (map[string]string, error) {
	if game.Void {
		return nil, fmt.Errorf("%w: %s", ErrVoidGame, game.Dir)
	}

	files := make(map[string]string)

	p, ok := profiles[game.Type]
	if !ok {
		log.Debug().Msgf("no launcher script for %s game: %s", game.Type, game.Name)
		return files, nil
	}

	tmpl, err := r.template(p.template)
	if err != nil {
		return nil, err
	}

	// checked on the raw template, substituted game values are not placeholders
	left := Leftover(tmpl, p.placeholders())

	script := tmpl
	if p.runtimePath != nil {
		script = strings.ReplaceAll(script, "{GAME_PATH}", p.runtimePath(r.opts))
	} else {
		script = strings.ReplaceAll(script, "{GAME_PATH}", game.Executable)
		script = strings.ReplaceAll(script, "{GAME_NAME}", game.Name)
	}

	script = strings.ReplaceAll(script, "{GAME_FILE}", game.ExecutableFile())
	script = strings.ReplaceAll(script, "{DEBUG_OUTPUT}", strconv.FormatBool(r.opts.DebugOutput()))
	script = strings.ReplaceAll(script, "{IDLE_TIME}", strconv.Itoa(r.opts.RunnerSecondsIdle()))
	script = strings.ReplaceAll(script, "{IDLE_INITIAL}", strconv.Itoa(r.opts.RunnerSecondsIdleInitial()))
	script = strings.ReplaceAll(script, "{ESC_HOLD}", strconv.Itoa(r.opts.RunnerSecondsESCHeld()))

	keymapBlock := keymap.RenderBlock(bindings, game.MaxPlayers(), r.opts, r.translator)
	script = strings.ReplaceAll(script, "{KEYMAP}", keymapBlock)

	files[LauncherScript] = script

	if p.bridge {
		bridge, err := r.template(assets.TemplatePico8Bridge)
		if err != nil {
			return nil, err
		}
		left = append(left, Leftover(bridge, []string{bridgePlaceholder})...)
		escaped := strings.ReplaceAll(game.Executable, `\`, `\\`)
		bridge = strings.ReplaceAll(bridge, bridgePlaceholder, escaped)
		files[Pico8Bridge] = bridge
	}

	if len(left) > 0 {
		if r.opts.StrictPlaceholders() {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedPlaceholder, strings.Join(left, ", "))
		}
		log.Warn().Msgf("launcher files for %s have unresolved placeholders: %v", game.Name, left)
	}

	return files, nil
}

// Unresolved lists the distinct placeholders left in a script, in order of
// first appearance.
func Unresolved(script string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range rePlaceholder.FindAllString(script, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Leftover lists the placeholders in a template that are not in known.
func Leftover(tmpl string, known []string) []string {
	var out []string
	for _, name := range Unresolved(tmpl) {
		if !slices.Contains(known, name) {
			out = append(out, name)
		}
	}
	return out
}

// Write replaces each file in the game's directory. Existing files are
// deleted before writing, so an interrupted write leaves the file missing
// rather than partial; the next Build recreates it.
func (r *Renderer) Write(game *games.Game, files map[string]string) error {
	for _, name := range sortedNames(files) {
		content := files[name]
		path := filepath.Join(game.Dir, name)

		if err := r.fs.Remove(path); err != nil && !isNotExist(err) {
			return fmt.Errorf("failed to remove old %s: %w", name, err)
		}

		//nolint:gosec // launcher scripts are run by the cabinet user
		if err := afero.WriteFile(r.fs, path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Info().Msgf("wrote launcher file: %s", path)
	}
	return nil
}

// Build resolves a game's key bindings, renders its launcher files and
// writes them. It returns the names of the written files.
func (r *Renderer) Build(game *games.Game) ([]string, error) {
	if game.Void {
		return nil, fmt.Errorf("%w: %s", ErrVoidGame, game.Dir)
	}

	log.Info().Msgf("creating scripts for game: %s", game.Name)

	bindings, err := keymap.ResolveBindings(game.BindingSource(), r.library)
	if err != nil {
		log.Debug().Err(err).Msgf("key bindings for %s used a fallback", game.Name)
	}

	files, err := r.Render(game, bindings)
	if err != nil {
		return nil, fmt.Errorf("failed to render scripts for %s: %w", game.Name, err)
	}

	if err := r.Write(game, files); err != nil {
		return nil, fmt.Errorf("failed to write scripts for %s: %w", game.Name, err)
	}

	return sortedNames(files), nil
}

func sortedNames(files map[string]string) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
