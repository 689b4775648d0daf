// SPDX-License-Identifier: MIT

// Package statmat computes connectivity and distribution statistics of a
// flow matrix.
//
// Compute reports, for a matrix.FlowMatrix:
//   - cell count (n²), link count (cells > 0) and density = links / cells;
//   - per-unit DegreeRecord: outgoing link count and flow sum, plus the
//     inbound counterparts;
//   - weakly connected components of the flow graph (edge direction ignored):
//     the total count, the count of components with more than one unit, and
//     a ComponentSummary (size, summed weighted degree, members) per component;
//   - the Summary (min, Q1, median, Q3, max, mean, sd) of positive flows, of
//     out-degrees and of weighted out-degrees, and the total flow.
//
// The graph is built with matrix.ToGraph and traversed with bfs.Components.
// Summarize is exported for callers that need the same statistics on other
// samples.
package statmat
