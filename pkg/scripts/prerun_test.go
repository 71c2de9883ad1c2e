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
	"testing"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/games"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreRun_Pico8CopiesBridge(t *testing.T) {
	t.Parallel()

	opts := mocks.NewMockOptions(filepath.Join("/", "cabinet"))
	r, fs := newTestRenderer(t, opts)

	game := pico8Game(filepath.Join(gamesDir, "celeste", "celeste.html"))
	require.NoError(t, fs.CreateTitle(game.Dir, map[string]any{
		Pico8Bridge: "var gamePath = \"new\";",
	}))
	dest := filepath.Join(Pico8Dir(opts), Pico8Bridge)
	require.NoError(t, fs.WriteFile(dest, []byte("var gamePath = \"old\";")))

	require.NoError(t, r.PreRun(game))

	data, err := fs.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "var gamePath = \"new\";", string(data))
}

func TestPreRun_CreatesRuntimeDir(t *testing.T) {
	t.Parallel()

	opts := mocks.NewMockOptions(filepath.Join("/", "fresh"))
	r, fs := newTestRenderer(t, opts)

	game := pico8Game(filepath.Join(gamesDir, "celeste", "celeste.html"))
	require.NoError(t, fs.CreateTitle(game.Dir, map[string]any{Pico8Bridge: "x"}))

	require.NoError(t, r.PreRun(game))
	assert.True(t, fs.FileExists(filepath.Join(Pico8Dir(opts), Pico8Bridge)))
}

func TestPreRun_MissingBridge(t *testing.T) {
	t.Parallel()

	r, _ := newTestRenderer(t, mocks.NewMockOptions("/data"))

	err := r.PreRun(pico8Game(filepath.Join(gamesDir, "celeste", "celeste.html")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pico8 bridge")
}

func TestPreRun_OtherTypesDoNothing(t *testing.T) {
	t.Parallel()

	opts := mocks.NewMockOptions("/data")
	r, fs := newTestRenderer(t, opts)

	for _, typ := range []games.GameType{games.TypeExe, games.TypeLegacy, games.TypeFlash, games.TypeCustom} {
		game := exeGame()
		game.Type = typ
		require.NoError(t, r.PreRun(game), typ.String())
	}
	assert.False(t, fs.FileExists(Pico8Dir(opts)))
}

func TestPreRun_Void(t *testing.T) {
	t.Parallel()

	r, _ := newTestRenderer(t, mocks.NewMockOptions("/data"))

	err := r.PreRun(&games.Game{Dir: "/games/x", Void: true, Type: games.TypePico8})
	require.ErrorIs(t, err, ErrVoidGame)
}
