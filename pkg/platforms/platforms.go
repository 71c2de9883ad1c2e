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

// Package platforms describes the host systems a cabinet library can be
// processed on. A platform only supplies filesystem locations; launching is
// left to the external script runner.
package platforms

// Settings defines all simple settings/configuration values available for a
// platform.
type Settings struct {
	// DataDir returns the root folder for shared cabinet runtime files such
	// as the PICO-8 browser runtime. WARNING: This value should be accessed
	// using the DataDir function in the helpers package.
	DataDir string
	// ConfigDir returns the directory where the config file and key binding
	// templates are stored. WARNING: This value should be accessed using the
	// ConfigDir function in the helpers package.
	ConfigDir string
	// TempDir returns a temporary directory where the logs are stored.
	// Expect it to be deleted.
	TempDir string
}

// Platform is the interface that defines how the library tools interact
// with a supported platform.
type Platform interface {
	// ID returns the unique ID of this platform.
	ID() string
	// Settings returns all simple platform-specific settings such as paths.
	// NOTE: Some values on the Settings struct should be accessed using helper
	// functions in the helpers package instead of directly. Check comments.
	Settings() Settings
}
