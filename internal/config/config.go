// SPDX-License-Identifier: MIT

// Package config loads the flowmat command configuration from an optional
// YAML file and FLOWMAT_* environment variables.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/katalvlaran/flowmat/internal/logging"
	"github.com/katalvlaran/flowmat/selection"
)

// envPrefix maps nested keys to variables: selection.workers → FLOWMAT_SELECTION_WORKERS.
const envPrefix = "FLOWMAT"

// Output formats.
const (
	OutputJSON  = "json"
	OutputTable = "table"
)

// Config holds the command configuration.
type Config struct {
	Log       logging.LogConfig `mapstructure:"log"`
	Input     InputConfig       `mapstructure:"input"`
	Selection SelectionConfig   `mapstructure:"selection"`
	Output    OutputConfig      `mapstructure:"output"`
}

// InputConfig names the long-format CSV columns.
type InputConfig struct {
	Origin       string `mapstructure:"origin"`
	Destination  string `mapstructure:"destination"`
	Weight       string `mapstructure:"weight"`
	Delimiter    string `mapstructure:"delimiter"`
	ZeroDiagonal bool   `mapstructure:"zero_diagonal"`
}

// SelectionConfig holds the defaults passed to the selection package.
type SelectionConfig struct {
	Tie     string `mapstructure:"tie"`
	Seed    int64  `mapstructure:"seed"`
	Workers int    `mapstructure:"workers"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// setDefaults registers every key so that env overrides are honoured even
// without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", logging.LevelInfo)
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("log.output_paths", []string{"stderr"})

	v.SetDefault("input.origin", "i")
	v.SetDefault("input.destination", "j")
	v.SetDefault("input.weight", "fij")
	v.SetDefault("input.delimiter", ",")
	v.SetDefault("input.zero_diagonal", false)

	v.SetDefault("selection.tie", selection.TieStable.String())
	v.SetDefault("selection.seed", 0)
	v.SetDefault("selection.workers", 1)

	v.SetDefault("output.format", OutputTable)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Default returns the configuration with no file and no environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg) // defaults always decode
	return cfg
}

// Load reads path (skipped when empty), applies FLOWMAT_* overrides and
// defaults, then validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("log.format %q: want json or console", c.Log.Format)
	}
	if c.Input.Origin == "" || c.Input.Destination == "" || c.Input.Weight == "" {
		return fmt.Errorf("input: origin, destination and weight column names are required")
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("input.delimiter %q: want a single character", c.Input.Delimiter)
	}
	if _, err := selection.ParseTieBreak(c.Selection.Tie); err != nil {
		return fmt.Errorf("selection.tie: %w", err)
	}
	if c.Selection.Workers < 1 {
		return fmt.Errorf("selection.workers %d: want ≥ 1", c.Selection.Workers)
	}
	switch c.Output.Format {
	case OutputJSON, OutputTable:
	default:
		return fmt.Errorf("output.format %q: want json or table", c.Output.Format)
	}
	return nil
}

// Delim returns the input delimiter as a rune.
func (c InputConfig) Delim() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// SelectionOptions translates the selection section into selection options.
func (c SelectionConfig) SelectionOptions() ([]selection.Option, error) {
	tie, err := selection.ParseTieBreak(c.Tie)
	if err != nil {
		return nil, err
	}
	return []selection.Option{
		selection.WithTieBreak(tie),
		selection.WithSeed(c.Seed),
		selection.WithWorkers(c.Workers),
	}, nil
}
