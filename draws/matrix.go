// SPDX-License-Identifier: MIT
// Package draws: dense draw-ensemble storage.
//
// Matrix is a row-major flat-slice container. Row-major order keeps one
// draw contiguous (the order samplers emit) while Column copies out the
// per-point sample the summarizer consumes.

package draws

import (
	"fmt"
	"math"
)

// Matrix is a dense S×P ensemble of posterior draws.
// s is the number of draws (rows), p the number of prediction points
// (columns), and data holds s*p cells in row-major order.
type Matrix struct {
	s, p int       // draws × points
	data []float64 // flat backing storage, length == s*p
}

// matrixErrorf wraps an underlying sentinel with method context.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("draws.%s: %w", method, err)
}

// New creates an S×P Matrix initialized to zeros.
// Stage 1 (Validate): ensure s and p > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(s*p) time and memory.
func New(s, p int) (*Matrix, error) {
	if s <= 0 || p <= 0 {
		return nil, matrixErrorf("New", ErrBadShape)
	}

	return &Matrix{s: s, p: p, data: make([]float64, s*p)}, nil
}

// FromRows builds a Matrix from per-draw rows.
// Every row must have the same length (ErrRaggedRows otherwise) and every
// cell must be finite (ErrNaNInf otherwise). The input is copied, never
// aliased, so callers may reuse their slices.
// Complexity: O(s*p).
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrBadShape)
	}
	p := len(rows[0])
	m := &Matrix{s: len(rows), p: p, data: make([]float64, len(rows)*p)}
	for i, row := range rows {
		if len(row) != p {
			return nil, fmt.Errorf("draws.FromRows: row %d has %d cells, want %d: %w",
				i, len(row), p, ErrRaggedRows)
		}
		for j, v := range row {
			if !isFinite(v) {
				return nil, fmt.Errorf("draws.FromRows: cell (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*p+j] = v
		}
	}

	return m, nil
}

// FromSlice builds an S×P Matrix from row-major flat data.
// len(data) must equal s*p (ErrDimensionMismatch); cells must be finite.
// The slice is copied.
// Complexity: O(s*p).
func FromSlice(s, p int, data []float64) (*Matrix, error) {
	if s <= 0 || p <= 0 {
		return nil, matrixErrorf("FromSlice", ErrBadShape)
	}
	if len(data) != s*p {
		return nil, fmt.Errorf("draws.FromSlice: got %d cells, want %d: %w",
			len(data), s*p, ErrDimensionMismatch)
	}
	for idx, v := range data {
		if !isFinite(v) {
			return nil, fmt.Errorf("draws.FromSlice: cell (%d,%d): %w", idx/p, idx%p, ErrNaNInf)
		}
	}
	m := &Matrix{s: s, p: p, data: make([]float64, len(data))}
	copy(m.data, data)

	return m, nil
}

// Draws returns S, the number of posterior draws (rows).
// Complexity: O(1).
func (m *Matrix) Draws() int { return m.s }

// Points returns P, the number of prediction points (columns).
// Complexity: O(1).
func (m *Matrix) Points() int { return m.p }

// indexOf computes the flat index for (draw, point) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, draw, point int) (int, error) {
	if draw < 0 || draw >= m.s || point < 0 || point >= m.p {
		return 0, fmt.Errorf("draws.%s(%d,%d): shape %dx%d: %w",
			method, draw, point, m.s, m.p, ErrOutOfRange)
	}

	return draw*m.p + point, nil
}

// At retrieves the value of draw i at point j.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if m == nil {
		return 0, matrixErrorf("At", ErrNilMatrix)
	}
	idx, err := m.indexOf("At", i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v as the value of draw i at point j.
// Non-finite v is rejected with ErrNaNInf before any write.
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	if m == nil {
		return matrixErrorf("Set", ErrNilMatrix)
	}
	idx, err := m.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return fmt.Errorf("draws.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns a fresh copy of draw i across all points.
// Complexity: O(p).
func (m *Matrix) Row(i int) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf("Row", ErrNilMatrix)
	}
	if i < 0 || i >= m.s {
		return nil, fmt.Errorf("draws.Row(%d): %d draws: %w", i, m.s, ErrOutOfRange)
	}
	out := make([]float64, m.p)
	copy(out, m.data[i*m.p:(i+1)*m.p])

	return out, nil
}

// Column returns a fresh copy of point j's sample across all draws.
// This is the summarizer's access pattern: one sample per prediction point.
// Complexity: O(s).
func (m *Matrix) Column(j int) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf("Column", ErrNilMatrix)
	}
	if j < 0 || j >= m.p {
		return nil, fmt.Errorf("draws.Column(%d): %d points: %w", j, m.p, ErrOutOfRange)
	}
	out := make([]float64, m.s)
	for i := 0; i < m.s; i++ { // strided walk down one column
		out[i] = m.data[i*m.p+j]
	}

	return out, nil
}

// Clone returns a deep copy of m.
// Complexity: O(s*p).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{s: m.s, p: m.p, data: data}
}

// AppendRows returns a new Matrix holding m's draws followed by other's.
// Both operands must agree on the point count (ErrDimensionMismatch).
// Useful for merging ensembles from independent sampler chains.
// Complexity: O((s1+s2)*p).
func (m *Matrix) AppendRows(other *Matrix) (*Matrix, error) {
	if m == nil || other == nil {
		return nil, matrixErrorf("AppendRows", ErrNilMatrix)
	}
	if m.p != other.p {
		return nil, fmt.Errorf("draws.AppendRows: %d vs %d points: %w",
			m.p, other.p, ErrDimensionMismatch)
	}
	out := &Matrix{s: m.s + other.s, p: m.p, data: make([]float64, 0, len(m.data)+len(other.data))}
	out.data = append(out.data, m.data...)
	out.data = append(out.data, other.data...)

	return out, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
