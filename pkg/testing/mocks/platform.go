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
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/platforms"
	"github.com/stretchr/testify/mock"
)

// MockPlatform is a mock implementation of the Platform interface using testify/mock
type MockPlatform struct {
	mock.Mock
}

// ID returns the unique ID of this platform
func (m *MockPlatform) ID() string {
	args := m.Called()
	return args.String(0)
}

// Settings returns the platform's configured directories
func (m *MockPlatform) Settings() platforms.Settings {
	args := m.Called()
	if s, ok := args.Get(0).(platforms.Settings); ok {
		return s
	}
	return platforms.Settings{}
}

// NewMockPlatform creates a new MockPlatform instance
func NewMockPlatform() *MockPlatform {
	return &MockPlatform{}
}

// SetupBasicMock configures the mock with every directory under root.
func (m *MockPlatform) SetupBasicMock(root string) {
	m.On("ID").Return("mock-platform")
	m.On("Settings").Return(platforms.Settings{
		DataDir:   filepath.Join(root, "data"),
		ConfigDir: filepath.Join(root, "config"),
		TempDir:   filepath.Join(root, "temp"),
	})
}
