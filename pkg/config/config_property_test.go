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

package config

import (
	"testing"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/keymap"
	"pgregory.net/rapid"
)

// TestPropertyCloneIsIndependent verifies writes to a clone never reach the
// source values.
func TestPropertyCloneIsIndependent(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		player := rapid.IntRange(1, keymap.MaxPlayers).Draw(t, "player")
		control := rapid.SampledFrom(keymap.Controls).Draw(t, "control")
		key := rapid.StringMatching(`[A-Z][a-z0-9]{0,6}`).Draw(t, "key")

		src := BaseDefaults.clone()
		before := src.Keys.player(player)[control]

		dup := src.clone()
		dup.Keys.player(player)[control] = key + "!"
		dup.Library.Roots = append(dup.Library.Roots, key)

		if got := src.Keys.player(player)[control]; got != before {
			t.Fatalf("source key changed: %q -> %q", before, got)
		}
		if len(src.Library.Roots) != 0 {
			t.Fatalf("source roots changed: %v", src.Library.Roots)
		}
	})
}
