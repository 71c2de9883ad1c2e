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

type Scripts struct {
	DebugOutput        *bool `toml:"debug_output,omitempty"`
	StrictPlaceholders bool  `toml:"strict_placeholders,omitempty"`
}

// DebugOutput is passed to launcher scripts; nil means enabled.
func (c *Instance) DebugOutput() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Scripts.DebugOutput == nil {
		return true
	}
	return *c.vals.Scripts.DebugOutput
}

func (c *Instance) SetDebugOutput(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Scripts.DebugOutput = &enabled
}

func (c *Instance) StrictPlaceholders() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Scripts.StrictPlaceholders
}
