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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ZaparooProject/zaparoo-arcade/pkg/helpers/syncutil"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const SchemaVersion = 1

var (
	ErrSchemaMismatch = errors.New("schema version mismatch")
	ErrInvalidConfig  = errors.New("invalid config")
)

type Values struct {
	Keys              Keys    `toml:"keys"`
	Library           Library `toml:"library"`
	ErrorReportingDSN string  `toml:"error_reporting_dsn,omitempty" validate:"omitempty,url"`
	DeviceID          string  `toml:"device_id"`
	Runner            Runner  `toml:"runner"`
	Scripts           Scripts `toml:"scripts"`
	ConfigSchema      int     `toml:"config_schema"`
	DebugLogging      bool    `toml:"debug_logging"`
	ErrorReporting    bool    `toml:"error_reporting"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Runner: Runner{
		SecondsIdle:        DefaultSecondsIdle,
		SecondsIdleInitial: DefaultSecondsIdleInitial,
		SecondsESCHeld:     DefaultSecondsESCHeld,
	},
	Library: Library{
		Workers: DefaultWorkers,
	},
	Keys: Keys{
		P1: map[string]string{
			"up": "UpArrow", "down": "DownArrow", "left": "LeftArrow", "right": "RightArrow",
			"button1": "Z", "button2": "X",
		},
		P2: map[string]string{
			"up": "W", "down": "S", "left": "A", "right": "D",
			"button1": "Q", "button2": "E",
		},
		P3: map[string]string{
			"up": "I", "down": "K", "left": "J", "right": "L",
			"button1": "U", "button2": "O",
		},
		P4: map[string]string{
			"up": "Keypad8", "down": "Keypad5", "left": "Keypad4", "right": "Keypad6",
			"button1": "Keypad7", "button2": "Keypad9",
		},
	},
}

// clone copies the reference fields so file values decoded on top of a
// copy never reach the original.
//
//nolint:gocritic // config struct copied for immutability
func (v Values) clone() Values {
	v.Library.Roots = slices.Clone(v.Library.Roots)
	v.Keys = v.Keys.clone()
	if v.Scripts.DebugOutput != nil {
		b := *v.Scripts.DebugOutput
		v.Scripts.DebugOutput = &b
	}
	return v
}

var validate = validator.New(validator.WithRequiredStructEnabled())

//nolint:gocritic // config struct copied for immutability
func validateValues(vals Values) error {
	if err := validate.Struct(vals); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, verrs[0].Namespace())
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

type Instance struct {
	cfgPath  string
	dataDir  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// NewConfig loads the config file from configDir, creating it with the
// given defaults if it does not exist yet. dataDir is the platform data
// directory used when no shared data dir is configured.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir, dataDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		mu:       syncutil.RWMutex{},
		cfgPath:  cfgPath,
		dataDir:  dataDir,
		vals:     defaults.clone(),
		defaults: defaults.clone(),
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := c.defaults.clone()
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	if err := validateValues(newVals); err != nil {
		return err
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	// set current schema version
	c.vals.ConfigSchema = SchemaVersion

	// generate a device id if one doesn't exist
	if c.vals.DeviceID == "" {
		newID := uuid.New().String()
		c.vals.DeviceID = newID
		log.Info().Msgf("generated new device id: %s", newID)
	}

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Path is the config file this instance reads and writes.
func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func (c *Instance) DeviceID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DeviceID
}

func (c *Instance) ErrorReporting() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.ErrorReporting
}

func (c *Instance) ErrorReportingDSN() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.ErrorReportingDSN
}
