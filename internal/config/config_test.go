// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowmat/selection"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "i", cfg.Input.Origin)
	assert.Equal(t, "j", cfg.Input.Destination)
	assert.Equal(t, "fij", cfg.Input.Weight)
	assert.Equal(t, ',', cfg.Input.Delim())
	assert.Equal(t, "stable", cfg.Selection.Tie)
	assert.Equal(t, 1, cfg.Selection.Workers)
	assert.Equal(t, OutputTable, cfg.Output.Format)
	assert.Equal(t, []string{"stderr"}, cfg.Log.OutputPaths)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowmat.yaml")
	yaml := `
log:
  level: debug
  format: json
input:
  origin: from
  destination: to
  weight: commuters
  delimiter: ";"
  zero_diagonal: true
selection:
  tie: random
  seed: 42
  workers: 8
output:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "from", cfg.Input.Origin)
	assert.Equal(t, "commuters", cfg.Input.Weight)
	assert.Equal(t, ';', cfg.Input.Delim())
	assert.True(t, cfg.Input.ZeroDiagonal)
	assert.Equal(t, int64(42), cfg.Selection.Seed)
	assert.Equal(t, 8, cfg.Selection.Workers)
	assert.Equal(t, OutputJSON, cfg.Output.Format)

	opts, err := cfg.Selection.SelectionOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FLOWMAT_SELECTION_WORKERS", "4")
	t.Setenv("FLOWMAT_OUTPUT_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Selection.Workers)
	assert.Equal(t, OutputJSON, cfg.Output.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"column", func(c *Config) { c.Input.Weight = "" }},
		{"delimiter", func(c *Config) { c.Input.Delimiter = ",," }},
		{"tie", func(c *Config) { c.Selection.Tie = "last" }},
		{"workers", func(c *Config) { c.Selection.Workers = 0 }},
		{"output", func(c *Config) { c.Output.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Selection.Tie = "last"
	_, err := cfg.Selection.SelectionOptions()
	assert.ErrorIs(t, err, selection.ErrUnknownTieBreak)
}
