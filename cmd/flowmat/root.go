// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmat/internal/config"
	"github.com/katalvlaran/flowmat/internal/ingest"
	"github.com/katalvlaran/flowmat/internal/logging"
	"github.com/katalvlaran/flowmat/matrix"
)

// app carries what every subcommand needs once flags are resolved.
type app struct {
	cfg *config.Config
	log logging.Logger
	out io.Writer
}

// globalFlags mirror the config keys they override.
type globalFlags struct {
	configPath   string
	origin       string
	destination  string
	weight       string
	delimiter    string
	zeroDiagonal bool
	output       string
	logLevel     string
}

func newRootCmd() *cobra.Command {
	var (
		gf globalFlags
		a  app
	)

	rootCmd := &cobra.Command{
		Use:           "flowmat",
		Short:         "Flow matrix selection, dominance and connectivity statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(gf.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &gf, cfg)
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("config: %w", err)
			}
			l, err := logging.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = l.Named("flowmat").With(logging.String("cmd", cmd.Name()))
			a.out = cmd.OutOrStdout()
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&gf.configPath, "config", "", "Config file path (YAML)")
	pf.StringVar(&gf.origin, "origin", "", "Origin column name")
	pf.StringVar(&gf.destination, "dest", "", "Destination column name")
	pf.StringVar(&gf.weight, "weight", "", "Flow weight column name")
	pf.StringVar(&gf.delimiter, "delimiter", "", "Field delimiter")
	pf.BoolVar(&gf.zeroDiagonal, "zero-diagonal", false, "Drop self-flows before analysis")
	pf.StringVarP(&gf.output, "output", "o", "", "Output format: table or json")
	pf.StringVar(&gf.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newStatsCmd(&a),
		newSelectCmd(&a),
		newDominantCmd(&a),
		newCompareCmd(&a),
	)
	return rootCmd
}

// applyFlags copies explicitly set persistent flags over cfg.
func applyFlags(cmd *cobra.Command, gf *globalFlags, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("origin") {
		cfg.Input.Origin = gf.origin
	}
	if f.Changed("dest") {
		cfg.Input.Destination = gf.destination
	}
	if f.Changed("weight") {
		cfg.Input.Weight = gf.weight
	}
	if f.Changed("delimiter") {
		cfg.Input.Delimiter = gf.delimiter
	}
	if f.Changed("zero-diagonal") {
		cfg.Input.ZeroDiagonal = gf.zeroDiagonal
	}
	if f.Changed("output") {
		cfg.Output.Format = gf.output
	}
	if f.Changed("log-level") {
		cfg.Log.Level = gf.logLevel
	}
}

// loadMatrix reads a long-format flow file into a FlowMatrix.
func (a *app) loadMatrix(path string) (*matrix.FlowMatrix, error) {
	in := a.cfg.Input
	tbl, err := ingest.ReadTableFile(path, in.Delim())
	if err != nil {
		return nil, err
	}
	m, err := matrix.Prepare(tbl, in.Origin, in.Destination, in.Weight)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if in.ZeroDiagonal {
		m = m.WithZeroDiagonal()
	}
	a.log.Debug("matrix loaded",
		logging.String("path", path),
		logging.Int("records", len(tbl.Rows)),
		logging.Int("units", m.N()),
		logging.Int("links", m.Links()),
	)
	return m, nil
}
