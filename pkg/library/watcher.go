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
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/scripts"
	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce is how long a title must be quiet before it is rebuilt.
const DefaultDebounce = 500 * time.Millisecond

// Watcher rebuilds a title's launcher scripts when files in its directory
// change.
type Watcher struct {
	clock    clockwork.Clock
	scanner  *Scanner
	watcher  *fsnotify.Watcher
	onResult func(Result)
	stopChan chan struct{}
	pending  map[string]struct{}
	roots    []string
	wg       sync.WaitGroup
	delay    time.Duration
	stopOnce sync.Once
}

// NewWatcher creates a watcher over the given roots. onResult is called
// from the watcher's goroutine for every rebuilt title and may be nil.
func NewWatcher(
	scanner *Scanner,
	roots []string,
	clock clockwork.Clock,
	onResult func(Result),
) *Watcher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		cleaned = append(cleaned, filepath.Clean(root))
	}
	return &Watcher{
		clock:    clock,
		scanner:  scanner,
		roots:    cleaned,
		onResult: onResult,
		delay:    DefaultDebounce,
		stopChan: make(chan struct{}),
		pending:  make(map[string]struct{}),
	}
}

// Start watches every root and the title directories inside them.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	w.watcher = watcher

	for _, root := range w.roots {
		if err := w.watcher.Add(root); err != nil {
			_ = w.watcher.Close()
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}

		dirs, err := TitleDirs(w.scanner.fs, root)
		if err != nil {
			_ = w.watcher.Close()
			return err
		}
		for _, dir := range dirs {
			w.add(dir)
		}
	}

	w.run(w.watcher.Events, w.watcher.Errors)
	log.Info().Msgf("watching %d library roots for changes", len(w.roots))
	return nil
}

// Stop ends watching and waits for any rebuild in progress.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		if w.watcher != nil {
			_ = w.watcher.Close()
		}
		w.wg.Wait()
	})
}

func (w *Watcher) run(events <-chan fsnotify.Event, errs <-chan error) {
	w.wg.Add(1)
	go w.loop(events, errs)
}

func (w *Watcher) add(dir string) {
	if w.watcher == nil {
		return
	}
	if err := w.watcher.Add(dir); err != nil {
		log.Warn().Err(err).Msgf("failed to watch title directory: %s", dir)
	}
}

func (w *Watcher) loop(events <-chan fsnotify.Event, errs <-chan error) {
	defer w.wg.Done()

	debounce := w.clock.NewTimer(w.delay)
	debounce.Stop()

	for {
		select {
		case <-w.stopChan:
			debounce.Stop()
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if dir := w.titleDir(event); dir != "" {
				w.pending[dir] = struct{}{}
				debounce.Reset(w.delay)
			}

		case err, ok := <-errs:
			if !ok {
				return
			}
			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				log.Warn().Err(err).Msg("fsnotify error")
				continue
			}
			log.Warn().Msg("watch events overflowed, rebuilding every title")
			for _, root := range w.roots {
				dirs, err := TitleDirs(w.scanner.fs, root)
				if err != nil {
					continue
				}
				for _, dir := range dirs {
					w.pending[dir] = struct{}{}
				}
			}
			debounce.Reset(w.delay)

		case <-debounce.Chan():
			w.flush()
		}
	}
}

func (w *Watcher) flush() {
	dirs := make([]string, 0, len(w.pending))
	for dir := range w.pending {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	clear(w.pending)

	for _, dir := range dirs {
		if !isDir(w.scanner.fs, dir) {
			log.Info().Msgf("title directory removed: %s", dir)
			continue
		}
		log.Info().Msgf("title changed, rebuilding: %s", dir)
		res := w.scanner.Process(dir)
		if w.onResult != nil {
			w.onResult(res)
		}
	}
}

// titleDir maps an event to the title directory it belongs to. It returns
// an empty string for events outside any title and for the launcher files
// the watcher itself writes.
func (w *Watcher) titleDir(event fsnotify.Event) string {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return ""
	}

	name := filepath.Clean(event.Name)
	switch filepath.Base(name) {
	case scripts.LauncherScript, scripts.Pico8Bridge:
		return ""
	}

	for _, root := range w.roots {
		rel, err := filepath.Rel(root, name)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}

		first, _, nested := strings.Cut(rel, string(filepath.Separator))
		dir := filepath.Join(root, first)
		if strings.HasPrefix(first, ".") {
			return ""
		}

		if !nested {
			// an event on an entry of the root itself
			if !isDir(w.scanner.fs, dir) {
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					log.Info().Msgf("title directory removed: %s", dir)
				}
				return ""
			}
			if event.Has(fsnotify.Create) {
				w.add(dir)
			}
		}
		return dir
	}
	return ""
}
