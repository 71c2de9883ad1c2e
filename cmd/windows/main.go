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

package main

import (
	"github.com/ZaparooProject/zaparoo-arcade/pkg/cli"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/config"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/platforms/windows"
)

func main() {
	pl := windows.NewPlatform()
	flags := cli.SetupFlags()

	flags.Pre(pl)

	// cabinets are usually debugged from the log file alone
	defaults := config.BaseDefaults
	defaults.DebugLogging = true

	cfg := cli.Setup(pl, defaults, flags.LogWriters())

	flags.Post(cfg, pl)
}
