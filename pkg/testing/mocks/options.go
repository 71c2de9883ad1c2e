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

package mocks

// MockOptions implements scripts.Options with plain fields. Key lookups go
// through the embedded MockKeyboard.
type MockOptions struct {
	*MockKeyboard
	DataDir      string
	Idle         int
	IdleInitial  int
	ESCHeld      int
	Debug        bool
	StrictFormat bool
}

// NewMockOptions returns options with the stock runner timings and player
// one wired to the arrow keys and Z/X.
func NewMockOptions(dataDir string) *MockOptions {
	kb := NewMockKeyboard().
		Wire(1, "up", "UpArrow").
		Wire(1, "down", "DownArrow").
		Wire(1, "left", "LeftArrow").
		Wire(1, "right", "RightArrow").
		Wire(1, "button1", "Z").
		Wire(1, "button2", "X")
	return &MockOptions{
		MockKeyboard: kb,
		DataDir:      dataDir,
		Idle:         30,
		IdleInitial:  60,
		ESCHeld:      3,
		Debug:        true,
	}
}

func (o *MockOptions) RunnerSecondsIdle() int        { return o.Idle }
func (o *MockOptions) RunnerSecondsIdleInitial() int { return o.IdleInitial }
func (o *MockOptions) RunnerSecondsESCHeld() int     { return o.ESCHeld }
func (o *MockOptions) DebugOutput() bool             { return o.Debug }
func (o *MockOptions) StrictPlaceholders() bool      { return o.StrictFormat }
func (o *MockOptions) SharedDataDir() string         { return o.DataDir }
