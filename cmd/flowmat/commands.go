// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmat/compmat"
	"github.com/katalvlaran/flowmat/internal/ingest"
	"github.com/katalvlaran/flowmat/internal/logging"
	"github.com/katalvlaran/flowmat/matrix"
	"github.com/katalvlaran/flowmat/selection"
	"github.com/katalvlaran/flowmat/statmat"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <flows.csv>",
		Short: "Connectivity and flow distribution statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			start := time.Now()
			m, err := a.loadMatrix(args[0])
			if err != nil {
				return err
			}
			r, err := statmat.Compute(m)
			if err != nil {
				return err
			}
			a.log.Info("stats computed",
				logging.Int("units", r.Units),
				logging.Int("components", r.Components),
				logging.Duration("took", time.Since(start)),
			)
			return a.writeReport(r)
		},
	}
}

func newSelectCmd(a *app) *cobra.Command {
	var (
		method  string
		k       float64
		global  bool
		tie     string
		seed    int64
		workers int
	)
	cmd := &cobra.Command{
		Use:   "select <flows.csv>",
		Short: "Select flows per origin or over the whole matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meth, err := selection.ParseMethod(method)
			if err != nil {
				return err
			}
			sc := a.cfg.Selection
			if cmd.Flags().Changed("tie") {
				sc.Tie = tie
			}
			if cmd.Flags().Changed("seed") {
				sc.Seed = seed
			}
			if cmd.Flags().Changed("workers") {
				sc.Workers = workers
			}
			opts, err := sc.SelectionOptions()
			if err != nil {
				return err
			}
			opts = append(opts, selection.WithContext(cmd.Context()))

			m, err := a.loadMatrix(args[0])
			if err != nil {
				return err
			}
			mask, err := selection.Select(m, meth, k, !global, opts...)
			if err != nil {
				return err
			}
			a.log.Info("flows selected",
				logging.String("method", meth.String()),
				logging.Float64("k", k),
				logging.Bool("global", global),
				logging.Int("selected", mask.Count()),
			)
			cells, err := mask.Cells(m)
			if err != nil {
				return err
			}
			return a.writeCells(cells, nil)
		},
	}
	f := cmd.Flags()
	f.StringVar(&method, "method", "topk", "Selection method: topk, threshold or cumulative")
	f.Float64Var(&k, "k", 1, "Method parameter")
	f.BoolVar(&global, "global", false, "Pool the whole matrix instead of ranking each origin")
	f.StringVar(&tie, "tie", "", "Tie-break policy: stable or random")
	f.Int64Var(&seed, "seed", 0, "Seed for random ties")
	f.IntVar(&workers, "workers", 0, "Rows ranked concurrently")
	return cmd
}

func newDominantCmd(a *app) *cobra.Command {
	var (
		weightsPath string
		idField     string
		valueField  string
		k           float64
		nodal       bool
	)
	cmd := &cobra.Command{
		Use:   "dominant <flows.csv>",
		Short: "Dominant flows by destination/origin weight ratio",
		Long: "Selects flows i→j with w(j)/w(i) > k. Unit weights come from --weights;\n" +
			"without it each unit is weighted by its total inflow.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMatrix(args[0])
			if err != nil {
				return err
			}
			w := m.ColSums()
			if weightsPath != "" {
				byID, rerr := ingest.ReadWeightsFile(weightsPath, a.cfg.Input.Delim(), idField, valueField)
				if rerr != nil {
					return rerr
				}
				if w, err = matrix.WeightsByID(m, byID); err != nil {
					return err
				}
			}

			var mask *matrix.Mask
			if nodal {
				opts, oerr := a.cfg.Selection.SelectionOptions()
				if oerr != nil {
					return oerr
				}
				mask, err = selection.NodalFlows(m, w, w, k, append(opts, selection.WithContext(cmd.Context()))...)
			} else {
				mask, err = selection.Dominant(m, w, w, k)
			}
			if err != nil {
				return err
			}
			roles, err := selection.ClassifyNodes(mask)
			if err != nil {
				return err
			}
			a.log.Info("dominant flows selected",
				logging.Float64("k", k),
				logging.Bool("nodal", nodal),
				logging.Int("selected", mask.Count()),
			)
			cells, err := mask.Cells(m)
			if err != nil {
				return err
			}
			return a.writeCells(cells, roles)
		},
	}
	f := cmd.Flags()
	f.StringVar(&weightsPath, "weights", "", "CSV of unit weights (defaults to total inflow)")
	f.StringVar(&idField, "id-col", "id", "Unit id column of the weights file")
	f.StringVar(&valueField, "value-col", "weight", "Weight column of the weights file")
	f.Float64Var(&k, "k", 1, "Dominance ratio threshold")
	f.BoolVar(&nodal, "nodal", false, "Keep only each origin's largest flow when dominant")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <flows1.csv> <flows2.csv>",
		Short: "Compare two matrices over the same units",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m1, err := a.loadMatrix(args[0])
			if err != nil {
				return err
			}
			m2, err := a.loadMatrix(args[1])
			if err != nil {
				return err
			}
			t, err := compmat.Compare(m1, m2)
			if err != nil {
				a.log.Error("compare failed", logging.Err(err))
				return fmt.Errorf("compare %s %s: %w", args[0], args[1], err)
			}
			return a.writeComparison(t)
		},
	}
}
