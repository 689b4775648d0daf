// SPDX-License-Identifier: MIT

// Package flowmat is an in-memory toolkit for origin-destination flow
// matrices: commuters, migrants, freight or any directed weighted exchange
// between spatial units.
//
// What is inside?
//
//	A small set of pure, deterministic packages:
//		• matrix:    FlowMatrix built from long-format records, selection Mask,
//		             graph export, shape validators
//		• selection: per-row and whole-matrix TopK / Threshold / Cumulative
//		             filters, dominant flows, nodal-flow trees
//		• statmat:   density, degrees, weak components, flow distribution
//		• compmat:   side-by-side indicator table of two matrices
//		• core:      directed weighted graph primitives under RW locks
//		• bfs:       weakly connected components by breadth-first walk
//
// Typical pipeline:
//
//	m, _ := matrix.FromRecords(records)          // long format → square matrix
//	m = m.WithZeroDiagonal()                     // drop self-flows
//	mask, _ := selection.Rows(m, selection.TopK, 1)
//	kept, _ := m.Filter(mask)                    // first flow of every origin
//	report, _ := statmat.Compute(kept)           // components, degrees, summary
//
// Nothing is plotted or mapped here: masks, DegreeRecords and
// ComponentSummaries are plain values meant to be handed to whatever
// renders them.
//
// The flowmat command (cmd/flowmat) exposes the same operations over CSV
// files.
package flowmat
