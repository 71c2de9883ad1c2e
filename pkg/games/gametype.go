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

package games

import "github.com/ZaparooProject/zaparoo-arcade/pkg/keymap"

// GameType is how a title is launched.
type GameType int

const (
	TypeExe GameType = iota
	TypePico8
	TypeCustom
	TypeLegacy
	TypeFlash
)

func (t GameType) String() string {
	switch t {
	case TypeExe:
		return "exe"
	case TypePico8:
		return "pico8"
	case TypeCustom:
		return "custom"
	case TypeLegacy:
		return "legacy"
	case TypeFlash:
		return "flash"
	default:
		return "unknown"
	}
}

// MarshalText makes GameType readable in CSV and JSON output.
func (t GameType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TypeFromTemplate maps a metadata keys.template value to a game type.
// The second value is false for absent or unrecognised templates.
func TypeFromTemplate(tmpl string) (GameType, bool) {
	switch tmpl {
	case keymap.TemplateDefault:
		return TypeExe, true
	case keymap.TemplatePico8:
		return TypePico8, true
	case keymap.TemplateFlash:
		return TypeFlash, true
	case keymap.TemplateLegacy:
		return TypeLegacy, true
	case keymap.TemplateCustom:
		return TypeCustom, true
	default:
		return TypeExe, false
	}
}
