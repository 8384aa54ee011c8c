package quantile_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirelav/postband/quantile"
)

// TestQuantile_EmptySample verifies that a zero-length sample errors.
func TestQuantile_EmptySample(t *testing.T) {
	_, err := quantile.Quantile(nil, 0.5)
	assert.ErrorIs(t, err, quantile.ErrEmptySample, "nil sample must error")

	_, err = quantile.Quantile([]float64{}, 0.5)
	assert.ErrorIs(t, err, quantile.ErrEmptySample, "empty sample must error")
}

// TestQuantile_BadProbability covers p < 0, p > 1 and NaN probabilities.
func TestQuantile_BadProbability(t *testing.T) {
	sample := []float64{1, 2, 3}
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := quantile.Quantile(sample, p)
		assert.ErrorIs(t, err, quantile.ErrBadProbability, "p=%v must error", p)
	}
}

// TestQuantile_NonFiniteSample rejects NaN and ±Inf sample values.
func TestQuantile_NonFiniteSample(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := quantile.Quantile([]float64{1, bad, 3}, 0.5)
		assert.ErrorIs(t, err, quantile.ErrNaNInf, "sample with %v must error", bad)
	}
}

// TestQuantile_Type7Pinned pins the interpolation convention: the expected
// values below are exactly what R's quantile(type=7) and NumPy's default
// produce, so a silent switch to another estimator fails this test.
func TestQuantile_Type7Pinned(t *testing.T) {
	sample := []float64{1, 2, 3, 4}

	q, err := quantile.Quantile(sample, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 1.75, q, "type-7 Q(0.25) over 1..4 is 1.75")

	q, err = quantile.Quantile(sample, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, q, "type-7 median over 1..4 is 2.5")

	q, err = quantile.Quantile(sample, 0.975)
	require.NoError(t, err)
	assert.InDelta(t, 3.925, q, 1e-12, "type-7 Q(0.975) over 1..4 is 3.925")
}

// TestQuantile_Extremes verifies p=0 yields the minimum and p=1 the maximum.
func TestQuantile_Extremes(t *testing.T) {
	sample := []float64{9, 1, 5, 3}

	lo, err := quantile.Quantile(sample, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, lo, "p=0 must be the sample minimum")

	hi, err := quantile.Quantile(sample, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, hi, "p=1 must be the sample maximum")
}

// TestQuantile_SingleValue checks that S=1 returns the value for every p.
func TestQuantile_SingleValue(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 0.975, 1} {
		q, err := quantile.Quantile([]float64{42}, p)
		require.NoError(t, err)
		assert.Equal(t, 42.0, q, "single-element sample at p=%v", p)
	}
}

// TestQuantile_Monotone verifies Q(p) is non-decreasing in p.
func TestQuantile_Monotone(t *testing.T) {
	sample := []float64{2.5, -1, 0, 7, 3, 3, 11, -4}
	prev := math.Inf(-1)
	for p := 0.0; p <= 1.0; p += 0.05 {
		q, err := quantile.Quantile(sample, p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, q, prev, "Q must be monotone at p=%v", p)
		prev = q
	}
}

// TestQuantile_DoesNotMutateInput ensures the caller's slice stays unsorted.
func TestQuantile_DoesNotMutateInput(t *testing.T) {
	sample := []float64{3, 1, 2}
	_, err := quantile.Quantile(sample, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, sample, "input order must be preserved")
}

// TestQuantileSorted_MatchesQuantile confirms the zero-copy path agrees with
// the copying path on pre-sorted input.
func TestQuantileSorted_MatchesQuantile(t *testing.T) {
	sorted := []float64{1, 2, 4, 8, 16}
	for _, p := range []float64{0, 0.1, 0.33, 0.5, 0.9, 1} {
		want, err := quantile.Quantile(sorted, p)
		require.NoError(t, err)
		got, err := quantile.QuantileSorted(sorted, p)
		require.NoError(t, err)
		assert.Equal(t, want, got, "paths must agree at p=%v", p)
	}
}

// TestMedian_OddAndEven pins the median for odd and even sample sizes.
func TestMedian_OddAndEven(t *testing.T) {
	med, err := quantile.Median([]float64{5, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, med, "odd-size median is the middle order statistic")

	med, err = quantile.Median([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 2.5, med, "even-size median interpolates the middle pair")
}
