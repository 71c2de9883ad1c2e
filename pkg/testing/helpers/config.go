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

package helpers

import (
	"github.com/ZaparooProject/zaparoo-arcade/pkg/config"
)

// NewTestConfig creates a config instance backed by a fresh config.toml in
// configDir, with all directories pointing under it.
func NewTestConfig(configDir string) (*config.Instance, error) {
	cfg, err := config.NewConfig(configDir, configDir, config.BaseDefaults)
	if err != nil {
		return nil, err //nolint:wrapcheck // test helper
	}
	return cfg, nil
}
