// SPDX-License-Identifier: MIT
// Package draws: adapters to and from gonum/mat.
//
// Fitters in the Go ecosystem (scikit-learn-style libraries in particular)
// speak *mat.Dense; these adapters let their posterior output flow into the
// summarizer and let a Matrix feed gonum routines without manual copying.

package draws

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromMat copies a gonum matrix into a draws.Matrix, treating rows as draws
// and columns as prediction points. The source is read through the mat.Matrix
// interface, so *mat.Dense, views and transposes all work.
// Non-finite cells are rejected with ErrNaNInf; an empty matrix with
// ErrBadShape.
// Complexity: O(s*p).
func FromMat(a mat.Matrix) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf("FromMat", ErrNilMatrix)
	}
	s, p := a.Dims()
	if s <= 0 || p <= 0 {
		return nil, matrixErrorf("FromMat", ErrBadShape)
	}
	m := &Matrix{s: s, p: p, data: make([]float64, s*p)}
	for i := 0; i < s; i++ {
		for j := 0; j < p; j++ {
			v := a.At(i, j)
			if !isFinite(v) {
				return nil, fmt.Errorf("draws.FromMat: cell (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*p+j] = v
		}
	}

	return m, nil
}

// ToDense copies m into a fresh *mat.Dense with the same S×P shape.
// Complexity: O(s*p).
func (m *Matrix) ToDense() (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf("ToDense", ErrNilMatrix)
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.s, m.p, data), nil
}

// Mat returns a read-only, zero-copy mat.Matrix view of m.
// The view follows gonum conventions: At panics on out-of-range indices
// (unlike Matrix.At, which returns ErrOutOfRange). The view aliases m's
// storage, so it stays valid only as long as m is not mutated.
func (m *Matrix) Mat() mat.Matrix {
	return matView{m: m}
}

// matView adapts Matrix to the gonum mat.Matrix interface.
type matView struct {
	m *Matrix
}

// Dims returns (draws, points).
func (v matView) Dims() (int, int) { return v.m.s, v.m.p }

// At returns the cell (i, j); panics on out-of-range per gonum convention.
func (v matView) At(i, j int) float64 {
	if i < 0 || i >= v.m.s || j < 0 || j >= v.m.p {
		panic(fmt.Sprintf("draws: mat view index (%d,%d) out of range %dx%d", i, j, v.m.s, v.m.p))
	}

	return v.m.data[i*v.m.p+j]
}

// T returns the transpose view, gonum-style.
func (v matView) T() mat.Matrix { return mat.Transpose{Matrix: v} }
