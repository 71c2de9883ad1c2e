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
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/assets"
	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	ScreenshotWidth  = 1024
	ScreenshotHeight = 768
)

// Screenshot is the image shown for a title in the attract screen.
type Screenshot struct {
	Image image.Image
	// Path is the source file, empty when Default is set.
	Path string
	// Default names the built-in image in use ("exe" or "pico8"), if any.
	Default string
}

// ImageLoader decodes an image file.
type ImageLoader interface {
	Load(path string) (image.Image, error)
}

// PNGLoader decodes PNG screenshots and shrinks anything larger than the
// attract screen resolution.
type PNGLoader struct {
	Fs afero.Fs
}

func NewPNGLoader(fs afero.Fs) *PNGLoader {
	return &PNGLoader{Fs: fs}
}

func (l *PNGLoader) Load(path string) (image.Image, error) {
	f, err := l.Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close image")
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageDecode, path, err)
	}

	b := img.Bounds()
	if b.Dx() > ScreenshotWidth || b.Dy() > ScreenshotHeight {
		img = resize.Thumbnail(ScreenshotWidth, ScreenshotHeight, img, resize.Lanczos3)
	}

	return img, nil
}

var (
	defaultImagesOnce sync.Once
	defaultExeImage   image.Image
	defaultPico8Image image.Image
)

func decodeDefault(name string, data []byte) image.Image {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		// bundled assets are checked by tests; keep going with a blank image
		log.Error().Err(err).Msgf("failed to decode default %s screenshot", name)
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return img
}

// DefaultScreenshot returns the built-in screenshot for a game type.
func DefaultScreenshot(t GameType) Screenshot {
	defaultImagesOnce.Do(func() {
		defaultExeImage = decodeDefault("exe", assets.DefaultScreenshotExe)
		defaultPico8Image = decodeDefault("pico8", assets.DefaultScreenshotPico8)
	})

	if t == TypePico8 {
		return Screenshot{Image: defaultPico8Image, Default: "pico8"}
	}
	return Screenshot{Image: defaultExeImage, Default: "exe"}
}
