// SPDX-License-Identifier: MIT
// Package band: the posterior summarization kernel.
//
// Summarize is the one canonical implementation; SummarizeMean and
// SummarizePredictive (sampler.go) are thin facades over it.

package band

import (
	"fmt"
	"math"
	"sort"

	"github.com/mirelav/postband/draws"
	"github.com/mirelav/postband/points"
	"github.com/mirelav/postband/quantile"
)

// Summarize reduces an S×P draw ensemble to one row per prediction point:
// the empirical median and the [opts.Lower, opts.Upper] credible interval,
// appended as float columns to a clone of pt.
//
// keyCol names pt's id column (int64 or string, values unique). The matrix
// column order must match pt's row order; the output preserves pt's row
// order.
//
// Stage 1 (Validate): nil inputs, probability domain, key column, shape,
// key uniqueness — all before any computation (fail fast, no partial output).
// Stage 2 (Execute): per point, copy the S-sample, sort once, probe the
// three quantiles via the type-7 estimator.
// Stage 3 (Finalize): clone pt and append the three columns in pt row order.
//
// Complexity: O(S·P·log S) time, O(S) scratch.
func Summarize(m *draws.Matrix, pt *points.Table, keyCol string, opts Options) (*points.Table, error) {
	keys, err := validate(m, pt, keyCol, opts)
	if err != nil {
		return nil, err
	}

	// keyAt maps canonical id → matrix column index. Build order follows
	// pt's rows, which by contract equals the matrix's column order.
	keyAt := make(map[string]int, len(keys))
	for i, k := range keys {
		if prev, dup := keyAt[k]; dup {
			return nil, fmt.Errorf("band.Summarize: id %q at rows %d and %d: %w",
				k, prev, i, ErrDuplicateKey)
		}
		keyAt[k] = i
	}

	p := pt.Len()
	median := make([]float64, p)
	lower := make([]float64, p)
	upper := make([]float64, p)

	for row, k := range keys { // output assembly follows pt row order
		// Column returns a fresh copy, so sorting in place is safe.
		sample, err := m.Column(keyAt[k])
		if err != nil {
			return nil, fmt.Errorf("band.Summarize: point %q: %w", k, err)
		}
		sort.Float64s(sample)

		// One sort, three probes.
		if lower[row], err = quantile.QuantileSorted(sample, opts.Lower); err != nil {
			return nil, fmt.Errorf("band.Summarize: point %q: %w", k, err)
		}
		if median[row], err = quantile.QuantileSorted(sample, 0.5); err != nil {
			return nil, fmt.Errorf("band.Summarize: point %q: %w", k, err)
		}
		if upper[row], err = quantile.QuantileSorted(sample, opts.Upper); err != nil {
			return nil, fmt.Errorf("band.Summarize: point %q: %w", k, err)
		}
	}

	out := pt.Clone()
	if err = out.AddFloat(opts.MedianColumn, median); err != nil {
		return nil, fmt.Errorf("band.Summarize: %w", err)
	}
	if err = out.AddFloat(opts.LowerColumn, lower); err != nil {
		return nil, fmt.Errorf("band.Summarize: %w", err)
	}
	if err = out.AddFloat(opts.UpperColumn, upper); err != nil {
		return nil, fmt.Errorf("band.Summarize: %w", err)
	}

	return out, nil
}

// validate applies the fail-fast contract checks in the documented priority
// order and returns the canonical key column on success.
func validate(m *draws.Matrix, pt *points.Table, keyCol string, opts Options) ([]string, error) {
	if m == nil {
		return nil, fmt.Errorf("band.Summarize: %w", ErrNilMatrix)
	}
	if pt == nil {
		return nil, fmt.Errorf("band.Summarize: %w", ErrNilTable)
	}
	if badProb(opts.Lower) || badProb(opts.Upper) || opts.Lower > opts.Upper {
		return nil, fmt.Errorf("band.Summarize: lower=%v upper=%v: %w",
			opts.Lower, opts.Upper, ErrBadProbability)
	}
	// Keys also enforces the key column's existence and kind.
	keys, err := pt.Keys(keyCol)
	if err != nil {
		return nil, fmt.Errorf("band.Summarize: %w", err)
	}
	if m.Points() != pt.Len() {
		return nil, fmt.Errorf("band.Summarize: matrix has %d points, table has %d rows: %w",
			m.Points(), pt.Len(), ErrShapeMismatch)
	}

	return keys, nil
}

// badProb reports whether p lies outside [0,1] or is NaN.
func badProb(p float64) bool {
	return math.IsNaN(p) || p < 0 || p > 1
}
