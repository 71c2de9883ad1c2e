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

// Idle values are written into every launcher script and read by the
// external runner.
const (
	DefaultSecondsIdle        = 30
	DefaultSecondsIdleInitial = 60
	DefaultSecondsESCHeld     = 3
)

type Runner struct {
	SecondsIdle        int `toml:"seconds_idle" validate:"gte=0"`
	SecondsIdleInitial int `toml:"seconds_idle_initial" validate:"gte=0"`
	SecondsESCHeld     int `toml:"seconds_esc_held" validate:"gte=0"`
}

func (c *Instance) RunnerSecondsIdle() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Runner.SecondsIdle
}

func (c *Instance) RunnerSecondsIdleInitial() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Runner.SecondsIdleInitial
}

func (c *Instance) RunnerSecondsESCHeld() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Runner.SecondsESCHeld
}

func (c *Instance) SetRunnerSecondsIdle(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Runner.SecondsIdle = seconds
}
