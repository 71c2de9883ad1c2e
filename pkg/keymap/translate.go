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

package keymap

import (
	"strings"
	"unicode"
)

// Translator converts a hardware key name, as configured for the cabinet,
// into the key vocabulary of the launcher script.
type Translator interface {
	Translate(key string) string
}

// HardwareKeys looks up the physical key wired to a player's control.
type HardwareKeys interface {
	HardwareKey(player int, control string) string
}

// AHKTranslator maps cabinet key names to AutoHotkey key names.
type AHKTranslator struct{}

var ahkNames = map[string]string{
	"uparrow":        "Up",
	"downarrow":      "Down",
	"leftarrow":      "Left",
	"rightarrow":     "Right",
	"leftcontrol":    "LControl",
	"rightcontrol":   "RControl",
	"leftshift":      "LShift",
	"rightshift":     "RShift",
	"leftalt":        "LAlt",
	"rightalt":       "RAlt",
	"leftwindows":    "LWin",
	"rightwindows":   "RWin",
	"return":         "Enter",
	"escape":         "Esc",
	"space":          "Space",
	"backspace":      "Backspace",
	"tab":            "Tab",
	"delete":         "Delete",
	"insert":         "Insert",
	"home":           "Home",
	"end":            "End",
	"pageup":         "PgUp",
	"pagedown":       "PgDn",
	"keypadenter":    "NumpadEnter",
	"keypadplus":     "NumpadAdd",
	"keypadminus":    "NumpadSub",
	"keypadperiod":   "NumpadDot",
	"keypaddivide":   "NumpadDiv",
	"keypadmultiply": "NumpadMult",
	"period":         ".",
	"comma":          ",",
	"slash":          "/",
	"backslash":      `\`,
	"semicolon":      ";",
	"quote":          "'",
	"backquote":      "`",
	"leftbracket":    "[",
	"rightbracket":   "]",
	"minus":          "-",
	"equals":         "=",
}

// Translate handles named keys, digit rows ("Alpha1"), keypad digits
// ("Keypad1"), function keys and letters. Unknown names are lowercased.
func (AHKTranslator) Translate(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	lower := strings.ToLower(key)
	if name, ok := ahkNames[lower]; ok {
		return name
	}

	if d, ok := strings.CutPrefix(lower, "alpha"); ok && isDigit(d) {
		return d
	}
	if d, ok := strings.CutPrefix(lower, "keypad"); ok && isDigit(d) {
		return "Numpad" + d
	}
	if n, ok := strings.CutPrefix(lower, "f"); ok && n != "" && isNumber(n) {
		return "F" + n
	}

	return lower
}

func isDigit(s string) bool {
	return len(s) == 1 && unicode.IsDigit(rune(s[0]))
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
