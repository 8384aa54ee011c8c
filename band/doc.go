// Package band collapses an ensemble of posterior draws into per-point
// interval bands: for every prediction point, the empirical median plus a
// two-sided credible interval, joined back to the point's covariates.
//
// 🚀 What does Summarize do?
//
//	Given an S×P draws.Matrix (S draws over P points) and a points.Table
//	with exactly P rows, it:
//	  1. validates the contract (shape, unique keys, ordered probabilities),
//	  2. sorts each point's S-sample once and extracts three type-7
//	     quantiles (lower, median, upper),
//	  3. joins the three new float columns onto a clone of the point table,
//	     keyed by the id column, preserving the table's row order.
//
// The same call serves both halves of the usual workflow: summarizing
// fitted-mean draws (uncertainty of the regression line) and summarizing
// posterior-predictive draws (uncertainty of a new observation) — only the
// upstream matrix differs.
//
// ✨ Guarantees:
//   - Output rows == point-table rows, for any S ≥ 1
//   - lower ≤ median ≤ upper whenever Lower ≤ 0.5 ≤ Upper
//   - Deterministic and pure: identical inputs give byte-identical output,
//     and neither input is mutated
//   - Fail fast: every contract violation surfaces as a sentinel error
//     before any computation starts — no partial output
//
// ⚙️ Usage:
//
//	import "github.com/mirelav/postband/band"
//
//	opts := band.DefaultOptions() // 95% interval, columns median/lower/upper
//	summary, err := band.Summarize(m, pt, "id", opts)
//	if err != nil {
//	  // errors.Is against ErrShapeMismatch / ErrDuplicateKey / ErrBadProbability
//	}
//
// Performance: O(S·P·log S) time for the per-point sorts, O(S) scratch.
// Summarize shares no state between calls — concurrent calls over
// independent inputs need no locking.
package band
