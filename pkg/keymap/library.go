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
	"errors"
	"fmt"
	"os"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/assets"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

const LibraryFile = "keymap_templates.json"

var ErrMissingTemplate = errors.New("key binding template not found")

// Library is the set of named binding templates shared by every title. It
// is loaded once and never mutated afterwards.
type Library struct {
	templates map[string]BindingSet
	path      string
}

// ParseLibrary parses a template library document.
func ParseLibrary(data []byte) (*Library, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid key binding template JSON")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, errors.New("key binding templates must be a JSON object")
	}

	lib := &Library{templates: make(map[string]BindingSet)}
	doc.ForEach(func(name, value gjson.Result) bool {
		set := ParseBindings(value)
		if set == nil {
			log.Warn().Msgf("ignoring malformed key binding template: %s", name.String())
			return true
		}
		lib.templates[name.String()] = set
		return true
	})

	return lib, nil
}

// LoadLibrary reads the template library from path. If the file does not
// exist the bundled library is returned instead.
func LoadLibrary(fs afero.Fs, path string) (*Library, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info().Msgf("no key binding templates at %s, using bundled templates", path)
		return DefaultLibrary()
	} else if err != nil {
		return nil, fmt.Errorf("failed to read key binding templates: %w", err)
	}

	lib, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	lib.path = path

	log.Debug().Msgf("loaded %d key binding templates from %s", len(lib.templates), path)
	return lib, nil
}

// DefaultLibrary returns the bundled template library.
func DefaultLibrary() (*Library, error) {
	lib, err := ParseLibrary(assets.KeymapTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled key binding templates: %w", err)
	}
	lib.path = "<bundled>"
	return lib, nil
}

// Get returns a copy of the named template.
func (l *Library) Get(name string) (BindingSet, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingTemplate, name)
	}
	set, ok := l.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingTemplate, name)
	}
	return set.Clone(), nil
}

func (l *Library) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.templates)
}
