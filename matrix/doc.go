// SPDX-License-Identifier: MIT

// Package matrix provides the square origin-destination flow matrix used by
// every flowmat analysis, together with its boolean selection Mask.
//
// A FlowMatrix binds one ordered set of unit ids to both axes: row i holds
// the outbound flows of ids[i], column j the inbound flows of ids[j]. Cells
// are finite and non-negative; absent pairs are 0.
//
// What's inside:
//   - FromRecords / Prepare: long-format triples (or a named-column Table)
//     to a complete square matrix, duplicates summed, ids sorted.
//   - New: explicit ids and values, order kept as given.
//   - Accessors: At, AtID, Row, IDs, Index, Cells, Positive, Links, Sum.
//   - Transforms: WithZeroDiagonal, Filter, RowSums, ColSums.
//   - Mask: built through NewMaskFunc, which never selects a zero cell;
//     And, Apply, Count, Ints.
//   - ToGraph: the directed weighted core.Graph of all positive cells.
//   - Validators: ValidateSameUnits, ValidateVecLen, ValidateWeights.
//
// Errors:
//
//	ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrUnitMismatch,
//	ErrNilMatrix, ErrEmptyID, ErrDuplicateID, ErrUnknownID, ErrBadWeight,
//	ErrMissingColumn.
//
// All methods are safe for concurrent reads: a FlowMatrix is never mutated
// after construction.
package matrix
