// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/flowmat/compmat"
	"github.com/katalvlaran/flowmat/internal/config"
	"github.com/katalvlaran/flowmat/matrix"
	"github.com/katalvlaran/flowmat/selection"
	"github.com/katalvlaran/flowmat/statmat"
)

func (a *app) json() bool { return a.cfg.Output.Format == config.OutputJSON }

func (a *app) writeJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) tab() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

func (a *app) writeReport(r *statmat.Report) error {
	if a.json() {
		return a.writeJSON(r)
	}
	w := a.tab()
	fmt.Fprintf(w, "units\t%d\n", r.Units)
	fmt.Fprintf(w, "cells\t%d\n", r.Cells)
	fmt.Fprintf(w, "links\t%d\n", r.Links)
	fmt.Fprintf(w, "density\t%s\n", num(r.Density))
	fmt.Fprintf(w, "sum\t%s\n", num(r.Sum))
	fmt.Fprintf(w, "components\t%d\n", r.Components)
	fmt.Fprintf(w, "components_gt1\t%d\n", r.NonTrivialComponents)
	f := r.Flows
	fmt.Fprintf(w, "flows\tmin=%s q1=%s median=%s q3=%s max=%s mean=%s sd=%s\n",
		num(f.Min), num(f.Q1), num(f.Median), num(f.Q3), num(f.Max), num(f.Mean), num(f.StdDev))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "id\tdegree\tweighted\tin_degree\tweighted_in")
	for _, d := range r.Degrees {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\n", d.ID, d.Degree, num(d.WeightedDegree), d.InDegree, num(d.WeightedInDegree))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "component\tsize\tweighted")
	for _, c := range r.ComponentSizes {
		fmt.Fprintf(w, "%d\t%d\t%s\n", c.ID, c.Size, num(c.WeightedDegree))
	}
	return w.Flush()
}

type cellOut struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Flow        float64 `json:"flow"`
}

type roleOut struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

func (a *app) writeCells(cells []matrix.Cell, roles []selection.NodeRole) error {
	if a.json() {
		v := struct {
			Flows []cellOut `json:"flows"`
			Roles []roleOut `json:"roles,omitempty"`
		}{Flows: make([]cellOut, len(cells))}
		for i, c := range cells {
			v.Flows[i] = cellOut{Origin: c.Origin, Destination: c.Destination, Flow: c.Value}
		}
		for _, r := range roles {
			v.Roles = append(v.Roles, roleOut{ID: r.ID, Role: r.Role.String()})
		}
		return a.writeJSON(v)
	}
	w := a.tab()
	fmt.Fprintln(w, "origin\tdestination\tflow")
	for _, c := range cells {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Origin, c.Destination, num(c.Value))
	}
	if len(roles) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "id\trole")
		for _, r := range roles {
			fmt.Fprintf(w, "%s\t%s\n", r.ID, r.Role)
		}
	}
	return w.Flush()
}

func (a *app) writeComparison(t *compmat.Table) error {
	if a.json() {
		return a.writeJSON(t)
	}
	w := a.tab()
	fmt.Fprintln(w, "indicator\tmatrix1\tmatrix2\tabs_diff\trel_diff")
	for _, r := range t.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Indicator, num(r.A), num(r.B), optNum(r.AbsDiff), optNum(r.RelDiff))
	}
	return w.Flush()
}

func optNum(p *float64) string {
	if p == nil {
		return "-"
	}
	return num(*p)
}
