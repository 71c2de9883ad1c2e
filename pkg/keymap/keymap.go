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

// Package keymap resolves the per-title player control bindings and renders
// them as AutoHotkey remapping lines.
//
// A BindingSet maps a player slot (1-4) to a map of control name to the key
// the game itself expects. Bindings come either from a title's metadata
// ("custom") or from a named entry in the shared template library.
package keymap

import (
	"maps"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	MaxPlayers = 4

	TemplateDefault = "default"
	TemplateLegacy  = "legacy"
	TemplateFlash   = "flash"
	TemplatePico8   = "pico8"
	TemplateCustom  = "custom"

	// UnboundKey is sent to the game for controls it has no binding for.
	UnboundKey = "return"
)

// Controls is the fixed, ordered list of cabinet controls per player.
// Rendering iterates it in this order.
var Controls = []string{
	"up",
	"down",
	"left",
	"right",
	"button1",
	"button2",
}

// BindingSet maps player slot to control name to game key.
type BindingSet map[int]map[string]string

// Get returns the game key for a slot and control.
func (b BindingSet) Get(slot int, control string) (string, bool) {
	player, ok := b[slot]
	if !ok {
		return "", false
	}
	key, ok := player[control]
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// HasSlot reports whether the set has an entry for the player slot.
func (b BindingSet) HasSlot(slot int) bool {
	_, ok := b[slot]
	return ok
}

// Clone returns a deep copy of the set.
func (b BindingSet) Clone() BindingSet {
	if b == nil {
		return nil
	}
	out := make(BindingSet, len(b))
	for slot, controls := range b {
		out[slot] = maps.Clone(controls)
	}
	return out
}

// Trim removes every slot above maxPlayers.
func (b BindingSet) Trim(maxPlayers int) {
	for slot := range b {
		if slot > maxPlayers || slot < 1 {
			delete(b, slot)
		}
	}
}

// Slots returns the set's slot numbers in ascending order.
func (b BindingSet) Slots() []int {
	slots := make([]int, 0, len(b))
	for slot := range b {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}

// EffectiveMaxPlayers clamps a declared player count to 1..MaxPlayers.
// Anything outside that range, including an absent value, means all slots.
func EffectiveMaxPlayers(n int) int {
	if n < 1 || n > MaxPlayers {
		return MaxPlayers
	}
	return n
}

// IsKnownTemplate reports whether name is one of the recognised template
// names, including "custom".
func IsKnownTemplate(name string) bool {
	switch name {
	case TemplateDefault, TemplateLegacy, TemplateFlash, TemplatePico8, TemplateCustom:
		return true
	default:
		return false
	}
}

// ParseBindings reads a slot -> control -> key JSON object. Entries that
// are not numeric slots or string keys are skipped.
func ParseBindings(res gjson.Result) BindingSet {
	if !res.IsObject() {
		return nil
	}

	set := make(BindingSet)
	res.ForEach(func(slotKey, controls gjson.Result) bool {
		slot, err := strconv.Atoi(slotKey.String())
		if err != nil || slot < 1 || slot > MaxPlayers {
			log.Warn().Msgf("ignoring key bindings for invalid player slot: %q", slotKey.String())
			return true
		}
		if !controls.IsObject() {
			return true
		}

		player := make(map[string]string)
		controls.ForEach(func(control, key gjson.Result) bool {
			if key.Type == gjson.String {
				player[control.String()] = key.String()
			}
			return true
		})
		set[slot] = player
		return true
	})

	return set
}
