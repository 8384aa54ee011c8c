// SPDX-License-Identifier: MIT
// Package csvio: CSV ingestion and export for matrices and tables.

package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mirelav/postband/draws"
	"github.com/mirelav/postband/points"
)

var (
	// ErrEmptyInput indicates a CSV stream with no data rows.
	ErrEmptyInput = errors.New("csvio: empty input")

	// ErrBadCell is returned when a cell cannot be parsed as the required
	// numeric type; the wrapping message carries row, column and raw value.
	ErrBadCell = errors.New("csvio: unparsable cell")
)

// ReadMatrix parses a headerless numeric CSV into a draw matrix: one row
// per draw, one column per prediction point.
//
// The csv reader enforces rectangular records itself; its mismatch failure
// is translated to draws.ErrRaggedRows so callers see one sentinel for the
// condition regardless of ingestion path.
// Complexity: O(s*p).
func ReadMatrix(r io.Reader) (*draws.Matrix, error) {
	records, err := readAll(r, "ReadMatrix")
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("csvio.ReadMatrix: row %d col %d value %q: %w",
					i, j, cell, ErrBadCell)
			}
			rows[i][j] = v
		}
	}

	m, err := draws.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("csvio.ReadMatrix: %w", err)
	}

	return m, nil
}

// ReadTable parses a CSV with a header row into a point table.
// Column kinds are inferred per column over all cells: int64 if every cell
// parses as an integer, else float64 if every cell parses as a float, else
// string. An input with a header but no data rows errors with ErrEmptyInput.
// Complexity: O(rows × width).
func ReadTable(r io.Reader) (*points.Table, error) {
	records, err := readAll(r, "ReadTable")
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csvio.ReadTable: header without data rows: %w", ErrEmptyInput)
	}
	header, body := records[0], records[1:]

	t := points.NewTable()
	for j, name := range header {
		cells := make([]string, len(body))
		for i, rec := range body {
			cells[i] = rec[j]
		}
		if err := addInferred(t, name, cells); err != nil {
			return nil, fmt.Errorf("csvio.ReadTable: %w", err)
		}
	}

	return t, nil
}

// WriteTable renders t as a header row plus one record per table row.
// Cell rendering delegates to points.Cell, so floats round-trip through
// ReadTable unchanged.
func WriteTable(w io.Writer, t *points.Table) error {
	if t == nil {
		return fmt.Errorf("csvio.WriteTable: %w", points.ErrNilTable)
	}
	cw := csv.NewWriter(w)
	names := t.Columns()
	if err := cw.Write(names); err != nil {
		return fmt.Errorf("csvio.WriteTable: header: %w", err)
	}

	record := make([]string, len(names))
	for row := 0; row < t.Len(); row++ {
		for j, name := range names {
			cell, err := t.Cell(row, name)
			if err != nil {
				return fmt.Errorf("csvio.WriteTable: %w", err)
			}
			record[j] = cell
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csvio.WriteTable: row %d: %w", row, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// readAll drains the reader and normalizes the empty and ragged cases.
func readAll(r io.Reader, method string) ([][]string, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("csvio.%s: line %d: %w", method, parseErr.Line, draws.ErrRaggedRows)
		}
		return nil, fmt.Errorf("csvio.%s: %w", method, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csvio.%s: %w", method, ErrEmptyInput)
	}

	return records, nil
}

// addInferred appends cells to t under the first kind that fits every cell.
func addInferred(t *points.Table, name string, cells []string) error {
	if ints, ok := parseInts(cells); ok {
		return t.AddInt(name, ints)
	}
	if floats, ok := parseFloats(cells); ok {
		return t.AddFloat(name, floats)
	}

	return t.AddString(name, cells)
}

// parseInts attempts an all-or-nothing int64 parse of cells.
func parseInts(cells []string) ([]int64, bool) {
	out := make([]int64, len(cells))
	for i, c := range cells {
		v, err := strconv.ParseInt(c, 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}

// parseFloats attempts an all-or-nothing float64 parse of cells.
func parseFloats(cells []string) ([]float64, bool) {
	out := make([]float64, len(cells))
	for i, c := range cells {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}
