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

import (
	"fmt"
	"slices"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockKeyboard implements keymap.HardwareKeys for testing.
// It serves cabinet keys from a fixed table and records every lookup. It is
// safe for concurrent use once wired.
type MockKeyboard struct {
	keys    map[string]string
	lookups []string
	mu      sync.Mutex
}

// NewMockKeyboard creates a new MockKeyboard with no keys wired.
func NewMockKeyboard() *MockKeyboard {
	return &MockKeyboard{keys: make(map[string]string)}
}

// Wire sets the cabinet key for a player's control.
func (m *MockKeyboard) Wire(player int, control, key string) *MockKeyboard {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[lookupKey(player, control)] = key
	return m
}

// HardwareKey returns the wired key, or "" when none is set.
func (m *MockKeyboard) HardwareKey(player int, control string) string {
	k := lookupKey(player, control)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups = append(m.lookups, k)
	return m.keys[k]
}

// Lookups returns every "player:control" looked up so far.
func (m *MockKeyboard) Lookups() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.lookups)
}

// Reset clears all recorded lookups.
func (m *MockKeyboard) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups = nil
}

func lookupKey(player int, control string) string {
	return fmt.Sprintf("%d:%s", player, control)
}

// MockTranslator implements keymap.Translator using testify/mock.
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(key string) string {
	args := m.Called(key)
	return args.String(0)
}
