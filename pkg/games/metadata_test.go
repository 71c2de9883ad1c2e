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

import (
	"testing"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"title": "Foo Bar",
		"executable": "bin/foo.exe",
		"max_players": 2,
		"keys": {
			"template": "custom",
			"bindings": {"1": {"up": "w", "button1": "z"}}
		}
	}`)

	meta, err := ParseMetadata(data)
	require.NoError(t, err)

	assert.Equal(t, "Foo Bar", meta.Title)
	assert.Equal(t, "bin/foo.exe", meta.Executable)
	assert.Equal(t, "custom", meta.Template)
	assert.Equal(t, 2, meta.MaxPlayers)
	assert.Equal(t, keymap.BindingSet{1: {"up": "w", "button1": "z"}}, meta.Bindings)
	assert.Equal(t, data, meta.Raw)
}

func TestParseMetadata_WrongTypesAreAbsent(t *testing.T) {
	t.Parallel()

	meta, err := ParseMetadata([]byte(`{"title": 5, "executable": ["a"], "keys": {"template": true}}`))
	require.NoError(t, err)

	assert.Empty(t, meta.Title)
	assert.Empty(t, meta.Executable)
	assert.Empty(t, meta.Template)
	assert.Nil(t, meta.Bindings)
	assert.Zero(t, meta.MaxPlayers)
}

func TestParseMetadata_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseMetadata([]byte(`{"title": `))
	require.ErrorIs(t, err, ErrInvalidMetadata)

	_, err = ParseMetadata([]byte(`["not", "an", "object"]`))
	require.ErrorIs(t, err, ErrInvalidMetadata)
}

func TestMetadataBindingSource(t *testing.T) {
	t.Parallel()

	var none *Metadata
	assert.Equal(t, keymap.Source{Title: "x"}, none.BindingSource("x"))

	meta := &Metadata{Template: "flash", MaxPlayers: 3, Bindings: keymap.BindingSet{1: {}}}
	src := meta.BindingSource("y")
	assert.Equal(t, "y", src.Title)
	assert.Equal(t, "flash", src.Template)
	assert.Equal(t, 3, src.MaxPlayers)
	assert.True(t, src.Bindings.HasSlot(1))
}

func TestTypeFromTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tmpl string
		want GameType
		ok   bool
	}{
		{tmpl: "default", want: TypeExe, ok: true},
		{tmpl: "pico8", want: TypePico8, ok: true},
		{tmpl: "flash", want: TypeFlash, ok: true},
		{tmpl: "legacy", want: TypeLegacy, ok: true},
		{tmpl: "custom", want: TypeCustom, ok: true},
		{tmpl: "", ok: false},
		{tmpl: "Default", ok: false},
	}

	for _, tt := range tests {
		got, ok := TypeFromTemplate(tt.tmpl)
		assert.Equal(t, tt.ok, ok, tt.tmpl)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.tmpl)
		}
	}
}

func TestGameTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "exe", TypeExe.String())
	assert.Equal(t, "pico8", TypePico8.String())
	assert.Equal(t, "unknown", GameType(42).String())

	text, err := TypeFlash.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "flash", string(text))
}
