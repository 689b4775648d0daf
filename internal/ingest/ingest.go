// SPDX-License-Identifier: MIT

// Package ingest reads delimited text into the shapes the flowmat library
// expects: a matrix.Table of long-format flows, or a unit weight table.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowmat/matrix"
)

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("ingest: input has no header")

// ReadTable parses delimited text with a header row into a matrix.Table.
// Rows may have a varying number of cells; matrix.Prepare checks them.
func ReadTable(r io.Reader, delim rune) (matrix.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return matrix.Table{}, ErrEmptyInput
	}
	if err != nil {
		return matrix.Table{}, fmt.Errorf("ingest: header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return matrix.Table{}, fmt.Errorf("ingest: rows: %w", err)
	}

	return matrix.Table{Columns: header, Rows: rows}, nil
}

// ReadTableFile opens path and calls ReadTable.
func ReadTableFile(path string, delim rune) (matrix.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return matrix.Table{}, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	return ReadTable(f, delim)
}

// ReadWeights parses a unit weight table: one id column and one numeric
// weight column, both found by header name. Repeated ids are summed.
//
// Errors: ErrEmptyInput, matrix.ErrMissingColumn, matrix.ErrBadWeight.
func ReadWeights(r io.Reader, delim rune, idField, weightField string) (map[string]float64, error) {
	t, err := ReadTable(r, delim)
	if err != nil {
		return nil, err
	}
	ii, wi := -1, -1
	for k, c := range t.Columns {
		switch strings.TrimSpace(c) {
		case idField:
			ii = k
		case weightField:
			wi = k
		}
	}
	if ii < 0 || wi < 0 {
		return nil, fmt.Errorf("ingest: weights need %q and %q: %w", idField, weightField, matrix.ErrMissingColumn)
	}

	out := make(map[string]float64, len(t.Rows))
	for k, row := range t.Rows {
		if len(row) <= max(ii, wi) {
			return nil, fmt.Errorf("ingest: weights row %d: %w", k, matrix.ErrMissingColumn)
		}
		v, perr := strconv.ParseFloat(strings.TrimSpace(row[wi]), 64)
		if perr != nil {
			return nil, fmt.Errorf("ingest: weights row %d %q: %w", k, row[wi], matrix.ErrBadWeight)
		}
		out[strings.TrimSpace(row[ii])] += v
	}

	return out, nil
}

// ReadWeightsFile opens path and calls ReadWeights.
func ReadWeightsFile(path string, delim rune, idField, weightField string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	return ReadWeights(f, delim, idField, weightField)
}
