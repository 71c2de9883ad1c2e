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

//go:build windows

package windows

import (
	"path/filepath"
	"testing"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/config"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/platforms/ids"
	"github.com/stretchr/testify/assert"
)

func TestPlatformSettings(t *testing.T) {
	t.Parallel()

	p := NewPlatform()
	assert.Equal(t, ids.Windows, p.ID())

	s := p.Settings()
	assert.Equal(t, config.AppName, filepath.Base(s.DataDir))
	assert.Equal(t, config.AppName, filepath.Base(s.ConfigDir))
	assert.Equal(t, config.AppName, filepath.Base(s.TempDir))
}
