// SPDX-License-Identifier: MIT
// Package quantile: type-7 empirical quantile kernels.
//
// All public functions return ONLY the package sentinels below on
// user-triggered error conditions; callers match them via errors.Is.
// Panics are reserved for programmer errors in private helpers.

package quantile

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptySample indicates a sample of size zero was supplied.
	ErrEmptySample = errors.New("quantile: empty sample")

	// ErrBadProbability indicates a probability outside [0,1] or NaN.
	ErrBadProbability = errors.New("quantile: probability outside [0,1]")

	// ErrNaNInf signals a NaN or ±Inf value inside the sample; order
	// statistics over non-finite values have no defined interpolation.
	ErrNaNInf = errors.New("quantile: NaN or Inf in sample")
)

// Quantile returns the type-7 empirical quantile of sample at probability p.
//
// Stage 1 (Validate): non-empty sample, finite values, p ∈ [0,1].
// Stage 2 (Prepare): copy and sort ascending — the input is never mutated.
// Stage 3 (Execute): interpolate between order statistics at h = p·(S−1).
//
// Complexity: O(S log S) time, O(S) extra memory for the sorted copy.
func Quantile(sample []float64, p float64) (float64, error) {
	if err := validate(sample, p); err != nil {
		return 0, err
	}
	// Copy so the caller's slice stays untouched.
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	return interp(sorted, p), nil
}

// QuantileSorted returns the type-7 quantile of an ascending-sorted sample.
// It performs no copy and no sort; callers that probe several probabilities
// against one sample should sort once and use this.
//
// The sort order itself is NOT verified (that would cost O(S) per probe);
// passing an unsorted slice yields unspecified values, not an error.
//
// Complexity: O(1) beyond validation.
func QuantileSorted(sorted []float64, p float64) (float64, error) {
	if err := validate(sorted, p); err != nil {
		return 0, err
	}

	return interp(sorted, p), nil
}

// Median returns the type-7 empirical median (p = 0.5) of sample.
// Thin alias of Quantile for API discoverability.
// Complexity: O(S log S).
func Median(sample []float64) (float64, error) {
	return Quantile(sample, 0.5)
}

// validate applies the shared fail-fast checks for all public entry points.
// Check order is fixed (documented in tests): empty → probability → finiteness.
func validate(sample []float64, p float64) error {
	if len(sample) == 0 {
		return ErrEmptySample
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return ErrBadProbability
	}
	for _, v := range sample {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// interp performs the type-7 interpolation over an ascending-sorted sample.
// Assumes validate has already accepted the inputs.
func interp(sorted []float64, p float64) float64 {
	// h is the fractional index of the target order statistic.
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo] // p landed exactly on an order statistic
	}

	// Linear interpolation between the two bracketing order statistics.
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
