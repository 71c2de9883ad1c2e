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

// Package games resolves a title directory into the launch configuration
// of the game inside it.
package games

import (
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/keymap"
	"golang.org/x/text/unicode/norm"
)

// Game is the resolved launch configuration of one title directory. It is
// built once by a Resolver and not modified afterwards.
type Game struct {
	Metadata   *Metadata
	VoidReason error
	Screenshot Screenshot
	Dir        string
	Name       string
	// Author is reserved for metadata that carries it.
	Author     string
	Executable string
	Type       GameType
	// Void is set when no launch method could be determined. Void games
	// must not be rendered or launched, and Type and Executable are
	// meaningless.
	Void bool
}

// ExecutableFile is the file name part of the executable path.
func (g *Game) ExecutableFile() string {
	if g.Executable == "" {
		return ""
	}
	return filepath.Base(g.Executable)
}

// BindingSource returns the key binding inputs for this game. Games
// without metadata use the default template for all players.
func (g *Game) BindingSource() keymap.Source {
	return g.Metadata.BindingSource(g.Name)
}

// MaxPlayers is the effective player count for key mapping.
func (g *Game) MaxPlayers() int {
	if g.Metadata == nil {
		return keymap.MaxPlayers
	}
	return keymap.EffectiveMaxPlayers(g.Metadata.MaxPlayers)
}

func (g *Game) void(reason error) {
	g.Void = true
	g.VoidReason = reason
}

// NameFromFolder derives a display name from a title directory name by
// turning underscores and dashes into spaces.
func NameFromFolder(dir string) string {
	name := filepath.Base(dir)
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return norm.NFC.String(name)
}
