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

	"github.com/rs/zerolog/log"
)

var ErrUnrecognizedTemplate = errors.New("unrecognized key binding template")

// Source is the binding information a title's metadata provides.
type Source struct {
	// Title is only used for log messages.
	Title      string
	Template   string
	Bindings   BindingSet
	MaxPlayers int
}

// TemplateName picks the effective template name for a source. The
// returned error is set when the declared template was not recognised.
func TemplateName(src Source) (string, error) {
	switch {
	case src.Template == "" && len(src.Bindings) > 0:
		return TemplateCustom, nil
	case src.Template == "":
		return TemplateDefault, nil
	case IsKnownTemplate(src.Template):
		return src.Template, nil
	default:
		return TemplateDefault, fmt.Errorf("%w: %q", ErrUnrecognizedTemplate, src.Template)
	}
}

// ResolveBindings returns the effective binding set for a title, trimmed to
// its player count. It always returns a usable set; a non-nil error
// describes a fallback that was taken and has already been logged.
func ResolveBindings(src Source, lib *Library) (BindingSet, error) {
	tmpl, err := TemplateName(src)
	if err != nil {
		log.Warn().Err(err).Msgf(
			"invalid key template for %s, using default. valid templates are "+
				"'default', 'legacy', 'flash', 'pico8', 'custom'",
			src.Title,
		)
	}

	var bindings BindingSet
	if tmpl == TemplateCustom {
		log.Debug().Msgf("using custom key bindings for %s", src.Title)
		bindings = src.Bindings.Clone()
		if bindings == nil {
			bindings = make(BindingSet)
		}
	} else {
		log.Debug().Msgf("using %s key bindings from %s for %s", tmpl, lib.Path(), src.Title)
		var getErr error
		bindings, getErr = lib.Get(tmpl)
		if getErr != nil && tmpl != TemplateDefault {
			log.Error().Err(getErr).Msgf("falling back to default key bindings for %s", src.Title)
			bindings, getErr = lib.Get(TemplateDefault)
			err = errors.Join(err, fmt.Errorf("%w: %s", ErrMissingTemplate, tmpl))
		}
		if getErr != nil {
			log.Error().Err(getErr).Msgf("no key bindings available for %s", src.Title)
			bindings = make(BindingSet)
			err = errors.Join(err, getErr)
		}
	}

	bindings.Trim(EffectiveMaxPlayers(src.MaxPlayers))

	return bindings, err
}
