// SPDX-License-Identifier: MIT

// Package selection filters a matrix.FlowMatrix into a matrix.Mask.
//
// Three interchangeable methods, each in a per-row (Rows) and a whole-matrix
// (Global) variant:
//
//	TopK        keep the k largest flows
//	Threshold   keep flows strictly above k
//	Cumulative  keep the shortest run of largest flows whose sum reaches k
//
// Only strictly positive cells are candidates; a zero cell is never selected
// and an empty candidate set yields an all-false mask rather than an error.
//
// Dominant implements the weight-ratio dominance test: cell (i,j) is kept when
// wDestination[j]/wOrigin[i] > k. NodalFlows combines it with each origin's
// largest flow, and ClassifyNodes labels units of the resulting tree.
//
// Options:
//
//	WithTieBreak(TieStable|TieRandom)  ranking of equal values (default stable)
//	WithSeed(seed)                     RNG seed for TieRandom
//	WithWorkers(n)                     concurrent rows in Rows
//	WithContext(ctx)                   cancellation
//
// Determinism: for a fixed seed every call returns the same mask, whatever
// the worker count.
package selection
