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
	"fmt"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/keymap"
	"github.com/tidwall/gjson"
)

const MetadataFile = "winnitron_metadata.json"

// Metadata is a title's optional descriptor file. It is read best-effort:
// fields with the wrong JSON type are treated as absent.
type Metadata struct {
	Title      string
	Executable string
	Template   string
	Bindings   keymap.BindingSet
	MaxPlayers int
	Raw        []byte
}

func ParseMetadata(data []byte) (*Metadata, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidMetadata)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidMetadata)
	}

	meta := &Metadata{
		Title:      stringField(doc, "title"),
		Executable: stringField(doc, "executable"),
		Template:   stringField(doc, "keys.template"),
		Bindings:   keymap.ParseBindings(doc.Get("keys.bindings")),
		Raw:        data,
	}

	if players := doc.Get("max_players"); players.Exists() {
		meta.MaxPlayers = int(players.Int())
	}

	return meta, nil
}

func stringField(doc gjson.Result, path string) string {
	res := doc.Get(path)
	if res.Type != gjson.String {
		return ""
	}
	return res.String()
}

// BindingSource returns the key binding inputs of the metadata.
func (m *Metadata) BindingSource(title string) keymap.Source {
	if m == nil {
		return keymap.Source{Title: title}
	}
	return keymap.Source{
		Title:      title,
		Template:   m.Template,
		Bindings:   m.Bindings,
		MaxPlayers: m.MaxPlayers,
	}
}
