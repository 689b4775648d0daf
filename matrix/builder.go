// SPDX-License-Identifier: MIT

// Package matrix - long-format ingestion.
//
// FromRecords and Prepare turn (origin, destination, weight) triples into a
// complete square FlowMatrix:
//   - Stage 1: collect the distinct ids seen as origin or destination.
//   - Stage 2: order them lexicographically (shared by rows and columns).
//   - Stage 3: allocate the full id × id cross product as zeros.
//   - Stage 4: sum every record into its cell; untouched pairs stay 0.
//
// Determinism: ids are sorted, records are summed in input order.

package matrix

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FlowRecord is one long-format observation: Weight units flowing from
// Origin to Destination.
type FlowRecord struct {
	Origin      string
	Destination string
	Weight      float64
}

// Table is a generic tabular input: a header row and string cells.
// It is what CSV readers or data-frame adapters hand to Prepare.
type Table struct {
	Columns []string
	Rows    [][]string
}

// FromRecords builds the square flow matrix of records.
// Duplicate (origin, destination) pairs are summed; ids appearing on only one
// axis still get a zero row or column.
//
// Errors:
//   - ErrBadShape when records is empty.
//   - ErrEmptyID for a blank origin or destination.
//   - ErrBadWeight for a negative or non-finite weight.
//
// Complexity: O(R + n² + n log n), R = len(records).
func FromRecords(records []FlowRecord) (*FlowMatrix, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("FromRecords: no records: %w", ErrBadShape)
	}

	seen := make(map[string]struct{}, len(records))
	for k, r := range records {
		if r.Origin == "" || r.Destination == "" {
			return nil, fmt.Errorf("FromRecords: record %d: %w", k, ErrEmptyID)
		}
		if !validFlow(r.Weight) {
			return nil, fmt.Errorf("FromRecords: record %d (%s→%s): %w", k, r.Origin, r.Destination, ErrBadWeight)
		}
		seen[r.Origin] = struct{}{}
		seen[r.Destination] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	m, err := newZero(ids)
	if err != nil {
		return nil, fmt.Errorf("FromRecords: %w", err)
	}
	for _, r := range records {
		m.data[m.index[r.Origin]*m.n+m.index[r.Destination]] += r.Weight
	}

	return m, nil
}

// Prepare resolves the origin, destination and weight fields of t by name,
// parses each row into a FlowRecord and delegates to FromRecords.
//
// Errors:
//   - ErrMissingColumn when a field name is absent from t.Columns, or a row is
//     too short to hold it.
//   - ErrBadWeight when a weight cell does not parse as a non-negative number.
//   - Any FromRecords error.
func Prepare(t Table, originField, destField, weightField string) (*FlowMatrix, error) {
	oi, err := columnIndex(t.Columns, originField)
	if err != nil {
		return nil, err
	}
	di, err := columnIndex(t.Columns, destField)
	if err != nil {
		return nil, err
	}
	wi, err := columnIndex(t.Columns, weightField)
	if err != nil {
		return nil, err
	}

	need := max(oi, di, wi)
	records := make([]FlowRecord, 0, len(t.Rows))
	for k, row := range t.Rows {
		if len(row) <= need {
			return nil, fmt.Errorf("Prepare: row %d has %d cells: %w", k, len(row), ErrMissingColumn)
		}
		w, perr := strconv.ParseFloat(strings.TrimSpace(row[wi]), 64)
		if perr != nil {
			return nil, fmt.Errorf("Prepare: row %d weight %q: %w", k, row[wi], ErrBadWeight)
		}
		records = append(records, FlowRecord{
			Origin:      strings.TrimSpace(row[oi]),
			Destination: strings.TrimSpace(row[di]),
			Weight:      w,
		})
	}

	return FromRecords(records)
}

// columnIndex returns the position of name in cols.
func columnIndex(cols []string, name string) (int, error) {
	for i, c := range cols {
		if strings.TrimSpace(c) == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("Prepare: column %q: %w", name, ErrMissingColumn)
}
