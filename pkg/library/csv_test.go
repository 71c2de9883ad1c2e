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

package library

import (
	"bytes"
	"context"
	"testing"

	testhelpers "github.com/ZaparooProject/zaparoo-arcade/pkg/testing/helpers"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	fs := testhelpers.NewMemoryFS()
	createLibrary(t, fs)

	results, err := newTestScanner(t, fs, 1).Scan(context.Background(), []string{gamesRoot})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, results))

	var rows []Row
	require.NoError(t, gocsv.Unmarshal(&buf, &rows))
	require.Len(t, rows, 5)

	assert.Equal(t, StatusVoid, rows[0].Status)
	assert.Contains(t, rows[0].Error, "game is void")
	assert.Empty(t, rows[0].Type)

	assert.Equal(t, "celeste", rows[1].Name)
	assert.Equal(t, "pico8", rows[1].Type)
	assert.Equal(t, "Pico8Launcher.js RunGame.ahk", rows[1].Scripts)
	assert.Equal(t, "default:pico8", rows[1].Screenshot)

	assert.Equal(t, "custom", rows[3].Type)
	assert.Empty(t, rows[3].Scripts)

	saturn := rows[4]
	assert.Equal(t, StatusOK, saturn.Status)
	assert.Equal(t, "Saturn Racer", saturn.Name)
	assert.Equal(t, "exe", saturn.Type)
	assert.Equal(t, 2, saturn.MaxPlayers)
	assert.Equal(t, "cover.png", saturn.Screenshot)
}
