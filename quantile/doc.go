// Package quantile computes empirical quantiles and medians of float64
// samples using the Hyndman–Fan type-7 estimator, with the interpolation
// convention pinned rather than inherited from a numeric library default.
//
// 🚀 What is a type-7 quantile?
//
//	For a sorted sample x[0..S-1] and probability p, the estimator takes
//	  h = p·(S−1)
//	and interpolates linearly between the order statistics at ⌊h⌋ and ⌈h⌉:
//	  Q(p) = x[⌊h⌋] + (h−⌊h⌋)·(x[⌈h⌉] − x[⌊h⌋])
//	Type 7 is the default of R's quantile() and NumPy's quantile(), so
//	results here line up byte-for-byte with the usual statistics stacks.
//
// ✨ Key guarantees:
//   - Deterministic – same sample, same p, same bits out
//   - Monotone – p₁ ≤ p₂ implies Q(p₁) ≤ Q(p₂)
//   - Non-mutating – Quantile copies before sorting; QuantileSorted is the
//     zero-copy hot path for callers that sort once and probe many times
//
// ⚙️ Usage:
//
//	import "github.com/mirelav/postband/quantile"
//
//	med, err := quantile.Median(sample)
//	lo, err  := quantile.Quantile(sample, 0.025)
//	hi, err  := quantile.Quantile(sample, 0.975)
//
// Errors are package-level sentinels (ErrEmptySample, ErrBadProbability,
// ErrNaNInf) matched via errors.Is.
//
// Complexity: O(S log S) for Quantile (sort); QuantileSorted skips the
// copy and sort, keeping only the O(S) finiteness scan and an O(1) probe.
package quantile
