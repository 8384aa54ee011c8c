// SPDX-License-Identifier: MIT
// Package points: sentinel error set.
// All public operations return ONLY these sentinels on user-triggered
// conditions; tests and callers match via errors.Is.

package points

import "errors"

var (
	// ErrNilTable indicates a nil *Table receiver or argument.
	ErrNilTable = errors.New("points: nil table")

	// ErrEmptyName is returned when a column name is the empty string.
	ErrEmptyName = errors.New("points: empty column name")

	// ErrDuplicateColumn is returned when adding a column whose name is
	// already present.
	ErrDuplicateColumn = errors.New("points: duplicate column name")

	// ErrColumnLength is returned when a new column's length disagrees with
	// the table's established row count.
	ErrColumnLength = errors.New("points: column length mismatch")

	// ErrUnknownColumn indicates a lookup for a column name that is absent.
	ErrUnknownColumn = errors.New("points: unknown column")

	// ErrColumnKind indicates a typed accessor was used against a column of
	// a different kind (e.g. Float on a string column, or Keys on a float
	// column).
	ErrColumnKind = errors.New("points: wrong column kind")

	// ErrRowRange indicates a row index outside [0, Len).
	ErrRowRange = errors.New("points: row index out of range")
)
