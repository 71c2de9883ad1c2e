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
	"image"

	"github.com/stretchr/testify/mock"
)

// MockImageLoader is a mock implementation of games.ImageLoader using testify/mock
type MockImageLoader struct {
	mock.Mock
}

// Load returns the configured image or error for a path
func (m *MockImageLoader) Load(path string) (image.Image, error) {
	args := m.Called(path)
	if err := args.Error(1); err != nil {
		return nil, fmt.Errorf("mock image load failed: %w", err)
	}
	if img, ok := args.Get(0).(image.Image); ok {
		return img, nil
	}
	return nil, nil //nolint:nilnil // mock returns what it was configured with
}
