// SPDX-License-Identifier: MIT

// Package config loads matcalc settings from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rowmat/matrix"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the knobs the CLI exposes.
type Config struct {
	Epsilon float64 `yaml:"epsilon"` // tolerance for equal; >= 0
	Width   int     `yaml:"width"`   // cell width for printing; >= 0
	YAML    bool    `yaml:"yaml"`    // emit results as YAML instead of brackets
}

// DefaultConfig mirrors the matrix package defaults.
func DefaultConfig() *Config {
	return &Config{
		Epsilon: matrix.DefaultEpsilon,
		Width:   matrix.DefaultWidth,
	}
}

// Load reads path and overlays it on DefaultConfig. Keys missing from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges so the matrix option constructors never panic.
func (c *Config) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("epsilon %v: %w", c.Epsilon, ErrInvalidConfig)
	}
	if c.Width < 0 {
		return fmt.Errorf("width %d: %w", c.Width, ErrInvalidConfig)
	}

	return nil
}

// Options converts the config into matrix options. Call Validate first.
func (c *Config) Options() []matrix.Option {
	return []matrix.Option{
		matrix.WithEpsilon(c.Epsilon),
		matrix.WithWidth(c.Width),
	}
}
