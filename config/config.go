// SPDX-License-Identifier: MIT

// Package config loads semgraph settings from TOML or YAML files.
//
// Loading order: Default(), then the file (when a path is given), then
// SEMGRAPH_* environment overrides, then struct-tag validation. Fields the
// file omits keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/semgraph/centrality"
	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/layout"
)

var (
	// ErrUnsupportedFormat is returned for a config file that is neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	// ErrInvalid is returned when a loaded configuration fails validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Environment overrides applied by Load.
const (
	EnvSpacing          = "SEMGRAPH_SPACING"
	EnvLayoutSeed       = "SEMGRAPH_LAYOUT_SEED"
	EnvLayoutIterations = "SEMGRAPH_LAYOUT_ITERATIONS"
)

// DefaultLayoutIterations is the number of layout steps the CLI runs by default.
const DefaultLayoutIterations = 100

// Config is the top-level configuration.
type Config struct {
	Graph      GraphConfig      `toml:"graph" yaml:"graph"`
	Layout     LayoutConfig     `toml:"layout" yaml:"layout"`
	Centrality CentralityConfig `toml:"centrality" yaml:"centrality"`
}

// GraphConfig holds graph construction settings.
type GraphConfig struct {
	Spacing float64 `toml:"spacing" yaml:"spacing" validate:"gt=0"`
}

// LayoutConfig holds spring layout parameters.
type LayoutConfig struct {
	K          float64 `toml:"k" yaml:"k" validate:"gt=0"`
	Force      float64 `toml:"force" yaml:"force" validate:"gt=0"`
	Repulsion  float64 `toml:"repulsion" yaml:"repulsion" validate:"gt=0"`
	Weight     float64 `toml:"weight" yaml:"weight" validate:"gte=0"`
	Limit      float64 `toml:"limit" yaml:"limit" validate:"gt=0"`
	Seed       int64   `toml:"seed" yaml:"seed"`
	Iterations int     `toml:"iterations" yaml:"iterations" validate:"gte=0"`
}

// CentralityConfig holds centrality defaults.
type CentralityConfig struct {
	Normalized bool    `toml:"normalized" yaml:"normalized"`
	Directed   bool    `toml:"directed" yaml:"directed"`
	Reversed   bool    `toml:"reversed" yaml:"reversed"`
	Iterations int     `toml:"iterations" yaml:"iterations" validate:"gte=1"`
	Tolerance  float64 `toml:"tolerance" yaml:"tolerance" validate:"gt=0"`
}

// Default returns the library defaults.
func Default() Config {
	spring := layout.DefaultConfig()
	cen := centrality.DefaultOptions()

	return Config{
		Graph: GraphConfig{Spacing: core.DefaultSpacing},
		Layout: LayoutConfig{
			K:          spring.K,
			Force:      spring.Force,
			Repulsion:  spring.Repulsion,
			Weight:     spring.Weight,
			Limit:      spring.Limit,
			Seed:       spring.Seed,
			Iterations: DefaultLayoutIterations,
		},
		Centrality: CentralityConfig{
			Normalized: cen.Normalized,
			Directed:   cen.Directed,
			Reversed:   cen.Reversed,
			Iterations: cen.Iterations,
			Tolerance:  cen.Tolerance,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
//
// Errors: ErrUnsupportedFormat; ErrInvalid; read and decode errors.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvSpacing); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvSpacing, v)
		}
		cfg.Graph.Spacing = f
	}
	if v := os.Getenv(EnvLayoutSeed); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvLayoutSeed, v)
		}
		cfg.Layout.Seed = i
	}
	if v := os.Getenv(EnvLayoutIterations); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvLayoutIterations, v)
		}
		cfg.Layout.Iterations = i
	}

	return nil
}

// Validate checks the struct-tag constraints.
//
// Errors: ErrInvalid wrapping the first failing fields.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Spring returns the layout engine configuration.
func (l LayoutConfig) Spring() layout.Config {
	return layout.Config{
		K:         l.K,
		Force:     l.Force,
		Repulsion: l.Repulsion,
		Weight:    l.Weight,
		Limit:     l.Limit,
		Seed:      l.Seed,
	}
}

// Options returns the centrality options these settings describe.
func (c CentralityConfig) Options() []centrality.Option {
	return []centrality.Option{
		centrality.WithNormalized(c.Normalized),
		centrality.WithDirected(c.Directed),
		centrality.WithReversed(c.Reversed),
		centrality.WithIterations(c.Iterations),
		centrality.WithTolerance(c.Tolerance),
	}
}

// GraphOptions returns the options for a graph with the configured spacing
// and a spring layout.
func (c Config) GraphOptions() []core.GraphOption {
	return []core.GraphOption{
		core.WithSpacing(c.Graph.Spacing),
		core.WithLayout(layout.NewSpring(c.Layout.Spring())),
	}
}
