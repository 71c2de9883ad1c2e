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

import (
	"path/filepath"
	"slices"
)

const (
	DefaultWorkers      = 1
	KeymapTemplatesFile = "keymap_templates.json"
)

type Library struct {
	DataDir         string   `toml:"data_dir,omitempty"`
	KeymapTemplates string   `toml:"keymap_templates,omitempty"`
	Roots           []string `toml:"roots,omitempty,multiline"`
	Workers         int      `toml:"workers,omitempty" validate:"gte=0,lte=64"`
}

func (c *Instance) LibraryRoots() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Library.Roots)
}

func (c *Instance) SetLibraryRoots(roots []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Library.Roots = slices.Clone(roots)
}

// Workers is how many titles are processed at once. Zero means the
// default.
func (c *Instance) Workers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Library.Workers <= 0 {
		return DefaultWorkers
	}
	return c.vals.Library.Workers
}

// SharedDataDir is the root of the cabinet's shared runtime files.
func (c *Instance) SharedDataDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Library.DataDir != "" {
		return c.vals.Library.DataDir
	}
	return c.dataDir
}

// KeymapTemplatesPath is the key binding template library file. Relative
// paths are resolved against the config file's directory.
func (c *Instance) KeymapTemplatesPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.vals.Library.KeymapTemplates
	if path == "" {
		path = KeymapTemplatesFile
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(c.cfgPath), path)
}
