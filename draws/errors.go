// SPDX-License-Identifier: MIT
// Package draws: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the draws
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No function panics on user input.

package draws

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "draws: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (s<=0 or p<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("draws: invalid shape")

	// ErrOutOfRange indicates a draw or point index outside valid bounds.
	// Public indexers (At/Set/Row/Column) return this, never panic.
	ErrOutOfRange = errors.New("draws: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between two matrices,
	// e.g. AppendRows with differing point counts or FromSlice with
	// len(data) != s*p.
	ErrDimensionMismatch = errors.New("draws: dimension mismatch")

	// ErrRaggedRows signals that FromRows received rows of unequal length.
	ErrRaggedRows = errors.New("draws: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf cell where finite values are required
	// (every ingestion point: FromRows, FromSlice, FromDense, Set).
	ErrNaNInf = errors.New("draws: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix receiver or argument was used.
	ErrNilMatrix = errors.New("draws: nil matrix")
)
