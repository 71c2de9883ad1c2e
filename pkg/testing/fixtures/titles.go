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

package fixtures

// Common test title fixtures for use in tests. Each returns the files of a
// title directory in the form accepted by helpers.FSHelper.CreateTitle.

// NewExeTitle creates a described Windows executable game with a screenshot.
func NewExeTitle(png []byte) map[string]any {
	return map[string]any{
		"winnitron_metadata.json": `{
  "title": "Saturn Racer",
  "executable": "SaturnRacer.exe",
  "max_players": 2,
  "keys": {"template": "default"}
}`,
		"SaturnRacer.exe": nil,
		"cover.png":       png,
	}
}

// NewPico8Title creates an undescribed PICO-8 HTML export.
func NewPico8Title() map[string]any {
	return map[string]any{
		"celeste.html": "<html></html>",
		"celeste.js":   "// cart",
	}
}

// NewFlashTitle creates a Flash game played through a projector.
func NewFlashTitle() map[string]any {
	return map[string]any{
		"winnitron_metadata.json": `{
  "title": "Alien Hominid",
  "executable": "flashplayer.exe",
  "keys": {"template": "flash"}
}`,
		"flashplayer.exe":   nil,
		"alien_hominid.swf": nil,
	}
}

// NewCustomTitle creates a game that ships its own launcher script.
func NewCustomTitle() map[string]any {
	return map[string]any{
		"winnitron_metadata.json": `{
  "title": "Handmade",
  "executable": "launch.bat",
  "keys": {"template": "custom"}
}`,
		"launch.bat": "@echo off",
	}
}

// NewAmbiguousTitle creates a directory with two executables and no
// metadata to pick between them.
func NewAmbiguousTitle() map[string]any {
	return map[string]any{
		"game.exe":  nil,
		"setup.exe": nil,
	}
}
