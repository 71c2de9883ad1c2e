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

import "errors"

var (
	// ErrAmbiguousLibrary means no single launch file could be found in a
	// title directory. The title is voided.
	ErrAmbiguousLibrary = errors.New("could not determine game type")
	// ErrMissingMetadataField means a metadata file exists but lacks a
	// required field. The title is voided.
	ErrMissingMetadataField = errors.New("metadata missing required field")
	// ErrInvalidMetadata means the metadata file is not valid JSON. The
	// title is resolved as if it had no metadata.
	ErrInvalidMetadata = errors.New("invalid metadata")
	// ErrImageDecode means a screenshot could not be decoded. The type
	// default screenshot is used instead.
	ErrImageDecode = errors.New("failed to decode image")
)
