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

import "maps"

// Keys maps each player's controls to the key names the cabinet's encoder
// sends.
type Keys struct {
	P1 map[string]string `toml:"p1,omitempty" validate:"dive,keys,oneof=up down left right button1 button2,endkeys"`
	P2 map[string]string `toml:"p2,omitempty" validate:"dive,keys,oneof=up down left right button1 button2,endkeys"`
	P3 map[string]string `toml:"p3,omitempty" validate:"dive,keys,oneof=up down left right button1 button2,endkeys"`
	P4 map[string]string `toml:"p4,omitempty" validate:"dive,keys,oneof=up down left right button1 button2,endkeys"`
}

func (k Keys) clone() Keys {
	return Keys{
		P1: maps.Clone(k.P1),
		P2: maps.Clone(k.P2),
		P3: maps.Clone(k.P3),
		P4: maps.Clone(k.P4),
	}
}

func (k *Keys) player(n int) map[string]string {
	switch n {
	case 1:
		return k.P1
	case 2:
		return k.P2
	case 3:
		return k.P3
	case 4:
		return k.P4
	default:
		return nil
	}
}

// HardwareKey returns the key name wired to a player's control, or an
// empty string when nothing is wired.
func (c *Instance) HardwareKey(player int, control string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Keys.player(player)[control]
}

func (c *Instance) SetHardwareKey(player int, control, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.vals.Keys.player(player)
	if m == nil {
		m = make(map[string]string)
		switch player {
		case 1:
			c.vals.Keys.P1 = m
		case 2:
			c.vals.Keys.P2 = m
		case 3:
			c.vals.Keys.P3 = m
		case 4:
			c.vals.Keys.P4 = m
		default:
			return
		}
	}
	m[control] = key
}
