// Package postband turns ensembles of posterior draws into per-point
// credible-interval bands: a median plus a two-sided interval for every
// prediction point, joined back to the point's covariates.
//
// 🚀 What is postband?
//
//	A small, deterministic library for the last mile of Bayesian workflows:
//		• draws/    — dense S×P draw matrices (rows = draws, cols = points)
//		              with gonum/mat interop for fitters that speak gonum
//		• points/   — ordered, typed point tables (the covariates per point)
//		• quantile/ — pinned type-7 empirical quantiles & medians
//		• band/     — the summarizer: draws + points → {median, lower, upper}
//		• csvio/    — CSV in/out for matrices and tables
//		• cmd/      — the postband CLI (summarize CSVs from the shell)
//
// ✨ Why choose postband?
//
//   - Reproducible – byte-for-byte identical output for identical input;
//     the quantile estimator is pinned, never a library default
//   - Fail-fast – sentinel errors for every contract violation
//     (shape mismatch, duplicate ids, bad probabilities), matched via errors.Is
//   - Pure Go core – no cgo; gonum only at the interop boundary
//   - Agnostic – fitted-mean draws or posterior-predictive draws, any sampler
//     that can fill a matrix works
//
// Quick sketch:
//
//	draws (S×P)        points (P rows)          summary (P rows)
//	┌ 1  10 ┐          id  x                    id  x  median lower upper
//	│ 2  20 │    +     1   0.0        →         1   0.0   3      1     5
//	│ 3  30 │          2   1.0                  2   1.0  30     10    50
//	│ 4  40 │
//	└ 5  50 ┘
//
// Dive into band/doc.go for the summarizer contract and the example_test.go
// files in each package for runnable walkthroughs.
//
//	go get github.com/mirelav/postband
package postband
