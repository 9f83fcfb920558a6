// Package config loads and saves the CLI defaults file. The core never
// reads it; commands resolve their flag defaults from here.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fretmap/fretmap/constants"
)

// Config holds per-user display defaults.
type Config struct {
	Tuning     string `json:"tuning,omitempty"`
	FretCount  int    `json:"fretCount,omitempty"`
	LeftHanded bool   `json:"leftHanded,omitempty"`
	BassOnTop  bool   `json:"bassOnTop,omitempty"`
}

// Default returns the defaults used when no config file exists.
func Default() *Config {
	return &Config{
		Tuning:    "standard",
		FretCount: constants.DefaultFretCount,
	}
}

// Path returns the full path to config.json.
func Path() string {
	return filepath.Join(constants.GetConfigDir(), "config.json")
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %v: %w", Path(), err)
	}
	return cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(constants.GetConfigDir(), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(), data, 0644)
}
