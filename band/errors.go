// SPDX-License-Identifier: MIT
// Package band: sentinel error set.
// Summarize and its facades return ONLY these sentinels (or sentinels
// propagated from draws/points/quantile) on user-triggered conditions.
// Tests match them via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil inputs → probability domain → key column → shape → key uniqueness.

package band

import "errors"

var (
	// ErrNilMatrix indicates a nil draw matrix argument.
	ErrNilMatrix = errors.New("band: nil draw matrix")

	// ErrNilTable indicates a nil point table argument.
	ErrNilTable = errors.New("band: nil point table")

	// ErrBadProbability is returned when Lower/Upper fall outside [0,1],
	// are NaN, or are not ordered Lower <= Upper.
	ErrBadProbability = errors.New("band: invalid probability bounds")

	// ErrShapeMismatch is returned when the matrix point count differs from
	// the table row count. The wrapping message carries expected vs. actual.
	ErrShapeMismatch = errors.New("band: matrix points != table rows")

	// ErrDuplicateKey is returned when the key column contains a repeated
	// id. The wrapping message names the offending id.
	ErrDuplicateKey = errors.New("band: duplicate point id")
)
