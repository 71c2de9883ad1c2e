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

package keymap

import "strings"

// RenderBlock builds the AutoHotkey remapping lines for a binding set.
//
// Players are walked from 1 up to the first slot missing from bindings,
// and controls in Controls order. Each cabinet key is claimed by the first
// (player, control) pair that uses it; later pairs translating to the same
// key are skipped, as are pairs where the cabinet key already is the game
// key. Output order is deterministic.
func RenderBlock(bindings BindingSet, maxPlayers int, hw HardwareKeys, tr Translator) string {
	maxPlayers = EffectiveMaxPlayers(maxPlayers)
	claimed := make(map[string]struct{})

	var sb strings.Builder
	for player := 1; player <= MaxPlayers; player++ {
		if !bindings.HasSlot(player) {
			break
		}

		for _, control := range Controls {
			launcherKey := tr.Translate(hw.HardwareKey(player, control))
			if launcherKey == "" {
				continue
			}

			gameKey, ok := bindings.Get(player, control)
			if !ok || player > maxPlayers {
				gameKey = UnboundKey
			}

			if _, taken := claimed[launcherKey]; taken {
				continue
			}
			claimed[launcherKey] = struct{}{}

			if launcherKey == gameKey {
				continue
			}

			sb.WriteString(launcherKey)
			sb.WriteString("::")
			sb.WriteString(gameKey)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
