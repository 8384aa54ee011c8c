// SPDX-License-Identifier: MIT
// Package band: the sampler boundary.
//
// Model fitting is not this module's business. A fitted model enters the
// picture only as a Sampler: something able to fill a draw matrix for a
// table of prediction points. The two facades below wire a Sampler straight
// into Summarize.

package band

import (
	"fmt"

	"github.com/mirelav/postband/draws"
	"github.com/mirelav/postband/points"
)

// Sampler generates posterior draw ensembles for prediction points.
// Implementations are typically adapters over a fitted regression model.
//
// Both methods return an n×pt.Len() matrix whose column order matches pt's
// row order — the same contract Summarize enforces.
type Sampler interface {
	// MeanDraws simulates n draws of the fitted mean at each point:
	// uncertainty about the regression line itself.
	MeanDraws(pt *points.Table, n int) (*draws.Matrix, error)

	// PredictiveDraws simulates n new observations at each point,
	// residual noise included: uncertainty about the next data point.
	PredictiveDraws(pt *points.Table, n int) (*draws.Matrix, error)
}

// SummarizeMean draws n fitted-mean simulations from s and summarizes them.
// Thin facade: generation errors are wrapped and returned unchanged in kind.
func SummarizeMean(s Sampler, pt *points.Table, keyCol string, n int, opts Options) (*points.Table, error) {
	m, err := s.MeanDraws(pt, n)
	if err != nil {
		return nil, fmt.Errorf("band.SummarizeMean: %w", err)
	}

	return Summarize(m, pt, keyCol, opts)
}

// SummarizePredictive draws n posterior-predictive simulations from s and
// summarizes them. The resulting band is wider than the mean band at the
// same probabilities, since it carries residual noise.
func SummarizePredictive(s Sampler, pt *points.Table, keyCol string, n int, opts Options) (*points.Table, error) {
	m, err := s.PredictiveDraws(pt, n)
	if err != nil {
		return nil, fmt.Errorf("band.SummarizePredictive: %w", err)
	}

	return Summarize(m, pt, keyCol, opts)
}
