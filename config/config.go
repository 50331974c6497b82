// Package config loads sm2 scheduler settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sky-flux/sm2"
	"github.com/sky-flux/sm2/simulator"
)

// FileName is the settings file looked up inside a config directory.
const FileName = "sm2.yaml"

// Config is the on-disk layout of sm2.yaml.
type Config struct {
	Scheduler sm2.Settings     `yaml:"scheduler"`
	Simulator simulator.Config `yaml:"simulator"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{Scheduler: sm2.DefaultSettings()}
}

// Load loads configuration from dir/sm2.yaml.
// Returns default config if the file doesn't exist.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile loads configuration from a specific file path.
// Keys absent from the file keep their defaults. The scheduler settings
// are validated.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	// Decoding into the defaults leaves absent keys untouched.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Scheduler.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := cfg.Scheduler.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
