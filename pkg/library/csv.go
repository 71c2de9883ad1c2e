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
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
)

const (
	StatusOK    = "ok"
	StatusVoid  = "void"
	StatusError = "error"
)

// Row is one title in a library listing.
type Row struct {
	Name       string `csv:"name"`
	Type       string `csv:"type"`
	Dir        string `csv:"dir"`
	Executable string `csv:"executable"`
	Screenshot string `csv:"screenshot"`
	Scripts    string `csv:"scripts"`
	Status     string `csv:"status"`
	Error      string `csv:"error"`
	MaxPlayers int    `csv:"max_players"`
}

func Rows(results []Result) []Row {
	rows := make([]Row, 0, len(results))
	for _, res := range results {
		game := res.Game
		row := Row{
			Name:    game.Name,
			Dir:     game.Dir,
			Scripts: strings.Join(res.Files, " "),
			Status:  StatusOK,
		}

		switch {
		case game.Void:
			row.Status = StatusVoid
		case res.Err != nil:
			row.Status = StatusError
		}
		if res.Err != nil {
			row.Error = res.Err.Error()
		}

		if !game.Void {
			row.Type = game.Type.String()
			row.Executable = game.Executable
			row.MaxPlayers = game.MaxPlayers()
			if game.Screenshot.Path != "" {
				row.Screenshot = filepath.Base(game.Screenshot.Path)
			} else {
				row.Screenshot = "default:" + game.Screenshot.Default
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes a listing of the results, one row per title.
func WriteCSV(w io.Writer, results []Result) error {
	rows := Rows(results)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write library listing: %w", err)
	}
	return nil
}
