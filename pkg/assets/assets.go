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

package assets

import (
	"embed"
	"fmt"
)

// Launcher script templates. Placeholders are replaced literally by the
// scripts package.
//
//go:embed templates/*
var Templates embed.FS

// DefaultScreenshotExe is shown for titles without their own screenshot.
//
//go:embed images/exe.png
var DefaultScreenshotExe []byte

// DefaultScreenshotPico8 is shown for PICO-8 titles without their own
// screenshot.
//
//go:embed images/pico8.png
var DefaultScreenshotPico8 []byte

// KeymapTemplates is the bundled key binding template library, used when
// no keymap_templates.json exists in the config directory.
//
//go:embed keymap/keymap_templates.json
var KeymapTemplates []byte

const (
	TemplateExe         = "ExeGameTemplate.ahk"
	TemplateFlash       = "FlashGameTemplate.ahk"
	TemplatePico8       = "Pico8GameTemplate.ahk"
	TemplatePico8Bridge = "Pico8Launcher.js"
)

func GetTemplate(name string) (string, error) {
	data, err := Templates.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}
	return string(data), nil
}
