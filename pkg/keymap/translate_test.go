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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAHKTranslator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "UpArrow", want: "Up"},
		{in: "leftcontrol", want: "LControl"},
		{in: "Return", want: "Enter"},
		{in: "Alpha7", want: "7"},
		{in: "Keypad3", want: "Numpad3"},
		{in: "KeypadEnter", want: "NumpadEnter"},
		{in: "F11", want: "F11"},
		{in: "F", want: "f"},
		{in: "Z", want: "z"},
		{in: "Backslash", want: `\`},
		{in: "  Space ", want: "Space"},
		{in: "", want: ""},
		{in: "Joystick1Button0", want: "joystick1button0"},
	}

	tr := AHKTranslator{}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tr.Translate(tt.in), "input %q", tt.in)
	}
}
