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

package scripts

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/assets"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/games"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/keymap"
	testhelpers "github.com/ZaparooProject/zaparoo-arcade/pkg/testing/helpers"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var gamesDir = filepath.Join("/", "games")

func exeGame() *games.Game {
	dir := filepath.Join(gamesDir, "foo")
	return &games.Game{
		Dir:        dir,
		Name:       "Foo Fighter",
		Executable: filepath.Join(dir, "foo.exe"),
		Type:       games.TypeExe,
	}
}

func pico8Game(exe string) *games.Game {
	return &games.Game{
		Dir:        filepath.Dir(exe),
		Name:       "Celeste",
		Executable: exe,
		Type:       games.TypePico8,
	}
}

// remaps is the part of a launcher script after the key remapping header.
func remaps(script string) string {
	_, after, _ := strings.Cut(script, "; key remapping\n")
	return after
}

func newTestRenderer(t *testing.T, opts *mocks.MockOptions) (*Renderer, *testhelpers.FSHelper) {
	t.Helper()
	lib, err := keymap.DefaultLibrary()
	require.NoError(t, err)
	fs := testhelpers.NewMemoryFS()
	return NewRenderer(fs.Fs, opts, nil, lib), fs
}

func TestRender_Exe(t *testing.T) {
	t.Parallel()

	opts := mocks.NewMockOptions("/data")
	opts.Idle = 45
	opts.IdleInitial = 90
	opts.ESCHeld = 2
	r, _ := newTestRenderer(t, opts)

	bindings := keymap.BindingSet{1: {"up": "w", "button1": "space"}}
	files, err := r.Render(exeGame(), bindings)
	require.NoError(t, err)
	require.Len(t, files, 1)

	script := files[LauncherScript]
	assert.Contains(t, script, "Zaparoo Arcade launcher: Foo Fighter")
	assert.Contains(t, script, `Run, "`+exeGame().Executable+`"`)
	assert.Contains(t, script, "idle limit reached for foo.exe")
	assert.Contains(t, script, "global debugOutput := true")
	assert.Contains(t, script, "global idleLimit := 45 * 1000")
	assert.Contains(t, script, "global idleInitial := 90 * 1000")
	assert.Contains(t, script, "global escHoldSeconds := 2")
	assert.Contains(t, script,
		"Up::w\nDown::return\nLeft::return\nRight::return\nz::space\nx::return\n")
	assert.Empty(t, Unresolved(script))
}

func TestRender_LegacyAndFlashTemplates(t *testing.T) {
	t.Parallel()

	r, _ := newTestRenderer(t, mocks.NewMockOptions("/data"))

	legacy := exeGame()
	legacy.Type = games.TypeLegacy
	files, err := r.Render(legacy, keymap.BindingSet{})
	require.NoError(t, err)
	assert.Contains(t, files[LauncherScript], "Zaparoo Arcade launcher: Foo Fighter")

	flash := exeGame()
	flash.Type = games.TypeFlash
	files, err = r.Render(flash, keymap.BindingSet{})
	require.NoError(t, err)
	assert.Contains(t, files[LauncherScript], "Zaparoo Arcade flash launcher: Foo Fighter")
	assert.NotContains(t, files, Pico8Bridge)
}

func TestRender_Pico8(t *testing.T) {
	t.Parallel()

	opts := mocks.NewMockOptions(filepath.Join("/", "data"))
	r, _ := newTestRenderer(t, opts)

	game := pico8Game(`C:\Winnitron\Games\celeste\celeste.html`)
	files, err := r.Render(game, keymap.BindingSet{1: {}})
	require.NoError(t, err)
	require.Len(t, files, 2)

	script := files[LauncherScript]
	assert.Contains(t, script, `Run, "`+Pico8RuntimePath(opts)+`"`)
	assert.Contains(t, script, "idle limit reached for "+game.ExecutableFile())

	bridge := files[Pico8Bridge]
	assert.Contains(t, bridge, `var gamePath = "C:\\Winnitron\\Games\\celeste\\celeste.html";`)
	assert.NotContains(t, bridge, "PATH_TO_HTML")
}

func TestRender_CustomProducesNothing(t *testing.T) {
	t.Parallel()

	r, _ := newTestRenderer(t, mocks.NewMockOptions("/data"))

	game := exeGame()
	game.Type = games.TypeCustom
	files, err := r.Render(game, keymap.BindingSet{1: {}})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestRender_VoidGame(t *testing.T) {
	t.Parallel()

	r, _ := newTestRenderer(t, mocks.NewMockOptions("/data"))

	_, err := r.Render(&games.Game{Dir: "/games/broken", Void: true}, nil)
	require.ErrorIs(t, err, ErrVoidGame)
}

func TestRender_UnresolvedPlaceholders(t *testing.T) {
	t.Parallel()

	opts := mocks.NewMockOptions("/data")
	r, _ := newTestRenderer(t, opts)
	r.template = func(string) (string, error) {
		return "Run, \"{GAME_PATH}\"\n; {BONUS_ROUND}\n{KEYMAP}\n", nil
	}

	files, err := r.Render(exeGame(), keymap.BindingSet{1: {}})
	require.NoError(t, err)
	assert.Contains(t, files[LauncherScript], "; {BONUS_ROUND}\n")

	opts.StrictFormat = true
	_, err = r.Render(exeGame(), keymap.BindingSet{1: {}})
	require.ErrorIs(t, err, ErrUnresolvedPlaceholder)
	assert.Contains(t, err.Error(), "{BONUS_ROUND}")
	assert.NotContains(t, err.Error(), "{GAME_PATH}")
}

func TestRender_BracedGameValuesAreNotPlaceholders(t *testing.T) {
	t.Parallel()

	opts := mocks.NewMockOptions("/data")
	opts.StrictFormat = true
	r, _ := newTestRenderer(t, opts)

	game := exeGame()
	game.Name = "Space {BETA}"
	game.Executable = filepath.Join(game.Dir, "{BETA}", "space.exe")

	files, err := r.Render(game, keymap.BindingSet{1: {}})
	require.NoError(t, err)
	assert.Contains(t, files[LauncherScript], "Zaparoo Arcade launcher: Space {BETA}")

	pico := pico8Game(filepath.Join(gamesDir, "celeste", "{CART}.html"))

	files, err = r.Render(pico, keymap.BindingSet{1: {}})
	require.NoError(t, err)
	assert.Contains(t, files[Pico8Bridge], "{CART}.html")
}

func TestRender_KeymapIsNotScannedForPlaceholders(t *testing.T) {
	t.Parallel()

	opts := mocks.NewMockOptions("/data")
	opts.StrictFormat = true
	r, _ := newTestRenderer(t, opts)

	files, err := r.Render(exeGame(), keymap.BindingSet{1: {"up": "{UP}"}})
	require.NoError(t, err)
	assert.Contains(t, files[LauncherScript], "Up::{UP}\n")
}

func TestUnresolved(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Unresolved("Send, {Esc}\nif (x) {\n}"))
	assert.Equal(t,
		[]string{"{GAME_PATH}", "{{{PATH_TO_HTML}}}"},
		Unresolved("{GAME_PATH} {{{PATH_TO_HTML}}} {GAME_PATH}"),
	)
}

func TestRender_IsRepeatable(t *testing.T) {
	t.Parallel()

	opts := mocks.NewMockOptions("/data")
	r, _ := newTestRenderer(t, opts)
	bindings := keymap.BindingSet{1: {"up": "w", "button1": "space"}, 2: {"up": "i"}}

	first, err := r.Render(exeGame(), bindings)
	require.NoError(t, err)
	lookups := opts.Lookups()
	require.NotEmpty(t, lookups)

	opts.Reset()
	second, err := r.Render(exeGame(), bindings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, lookups, opts.Lookups())
}

func TestRender_UsesTranslator(t *testing.T) {
	t.Parallel()

	lib, err := keymap.DefaultLibrary()
	require.NoError(t, err)
	tr := &mocks.MockTranslator{}
	tr.On("Translate", mock.Anything).Return("F1")

	r := NewRenderer(testhelpers.NewMemoryFS().Fs, mocks.NewMockOptions("/data"), tr, lib)
	files, err := r.Render(exeGame(), keymap.BindingSet{1: {"up": "w"}})
	require.NoError(t, err)

	// every control shares the translated key, only the first claims it
	assert.Equal(t, "F1::w", strings.TrimSpace(remaps(files[LauncherScript])))
	tr.AssertCalled(t, "Translate", "UpArrow")
}

func TestLeftover(t *testing.T) {
	t.Parallel()

	tmpl := "{GAME_NAME} {GAME_PATH} {EXTRA} {KEYMAP} {EXTRA}"
	assert.Equal(t, []string{"{EXTRA}"}, Leftover(tmpl, []string{"{GAME_NAME}", "{GAME_PATH}", "{KEYMAP}"}))
	assert.Empty(t, Leftover("no placeholders", nil))
}

func TestBundledTemplatesHaveNoLeftovers(t *testing.T) {
	t.Parallel()

	for gt, p := range profiles {
		tmpl, err := assets.GetTemplate(p.template)
		require.NoError(t, err, gt.String())
		assert.Empty(t, Leftover(tmpl, p.placeholders()), gt.String())
	}

	bridge, err := assets.GetTemplate(assets.TemplatePico8Bridge)
	require.NoError(t, err)
	assert.Empty(t, Leftover(bridge, []string{bridgePlaceholder}))
}

func TestWrite_ReplacesExistingFiles(t *testing.T) {
	t.Parallel()

	r, fs := newTestRenderer(t, mocks.NewMockOptions("/data"))
	game := exeGame()

	require.NoError(t, fs.CreateTitle(game.Dir, map[string]any{
		LauncherScript: "old script",
	}))

	require.NoError(t, r.Write(game, map[string]string{LauncherScript: "new script"}))

	data, err := fs.ReadFile(filepath.Join(game.Dir, LauncherScript))
	require.NoError(t, err)
	assert.Equal(t, "new script", string(data))
}

func TestBuild(t *testing.T) {
	t.Parallel()

	opts := mocks.NewMockOptions("/data")
	r, fs := newTestRenderer(t, opts)

	game := pico8Game(filepath.Join(gamesDir, "celeste", "celeste.html"))
	require.NoError(t, fs.CreateTitle(game.Dir, map[string]any{"celeste.html": "<html>"}))

	written, err := r.Build(game)
	require.NoError(t, err)
	assert.Equal(t, []string{Pico8Bridge, LauncherScript}, written)

	for _, name := range written {
		assert.True(t, fs.FileExists(filepath.Join(game.Dir, name)), name)
	}

	// default template, player one identical keys produce no remaps
	data, err := fs.ReadFile(filepath.Join(game.Dir, LauncherScript))
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(remaps(string(data))))
	assert.Contains(t, opts.Lookups(), "1:up")
}

func TestBuild_UsesMetadataTemplate(t *testing.T) {
	t.Parallel()

	r, fs := newTestRenderer(t, mocks.NewMockOptions("/data"))

	game := exeGame()
	game.Type = games.TypeLegacy
	game.Metadata = &games.Metadata{Template: keymap.TemplateLegacy, MaxPlayers: 1}
	require.NoError(t, fs.CreateTitle(game.Dir, map[string]any{"foo.exe": nil}))

	_, err := r.Build(game)
	require.NoError(t, err)

	data, err := fs.ReadFile(filepath.Join(game.Dir, LauncherScript))
	require.NoError(t, err)
	assert.Equal(t, "z::RControl\nx::RShift", strings.TrimSpace(remaps(string(data))))
}

func TestBuild_Void(t *testing.T) {
	t.Parallel()

	r, _ := newTestRenderer(t, mocks.NewMockOptions("/data"))

	_, err := r.Build(&games.Game{Dir: "/games/x", Void: true})
	require.ErrorIs(t, err, ErrVoidGame)
}
