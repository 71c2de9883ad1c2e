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

package scripts

import (
	"fmt"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/games"
	"github.com/ZaparooProject/zaparoo-arcade/pkg/helpers"
	"github.com/rs/zerolog/log"
)

// PreRun is called by the runner right before a game's launcher script is
// started. PICO-8 games copy their bridge script into the shared browser
// runtime folder; every other type does nothing.
func (r *Renderer) PreRun(game *games.Game) error {
	if game.Void {
		return fmt.Errorf("%w: %s", ErrVoidGame, game.Dir)
	}
	if game.Type != games.TypePico8 {
		return nil
	}

	src := filepath.Join(game.Dir, Pico8Bridge)
	dest := filepath.Join(Pico8Dir(r.opts), Pico8Bridge)

	log.Info().Msgf("pre-run copying %s to %s", src, dest)
	if err := helpers.CopyFile(r.fs, src, dest); err != nil {
		return fmt.Errorf("failed to install pico8 bridge: %w", err)
	}
	return nil
}
