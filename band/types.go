// Package band defines options for posterior summarization.
package band

// Default column names appended to the summary table.
const (
	// DefaultMedianColumn names the central-estimate column.
	DefaultMedianColumn = "median"

	// DefaultLowerColumn names the interval's lower-bound column.
	DefaultLowerColumn = "lower"

	// DefaultUpperColumn names the interval's upper-bound column.
	DefaultUpperColumn = "upper"
)

// Options configures Summarize.
//
// Fields:
//   - Lower, Upper — interval probabilities in [0,1], Lower <= Upper.
//     Lower == Upper is allowed and yields a degenerate band (both bounds
//     equal that quantile); the median column is always the 0.5 quantile.
//   - MedianColumn, LowerColumn, UpperColumn — names of the three float
//     columns appended to the output. They must not collide with existing
//     point-table columns (points.ErrDuplicateColumn otherwise).
//
// Example:
//
//	opts := DefaultOptions() // 2.5%–97.5%, i.e. a 95% credible interval
//	opts.Lower, opts.Upper = 0.25, 0.75 // 50% interval instead
//	summary, err := Summarize(m, pt, "id", opts)
type Options struct {
	Lower        float64
	Upper        float64
	MedianColumn string
	LowerColumn  string
	UpperColumn  string
}

// DefaultOptions returns Options with sane defaults:
//   - a central 95% credible interval (0.025, 0.975)
//   - output columns "median", "lower", "upper".
func DefaultOptions() Options {
	return Options{
		Lower:        0.025,
		Upper:        0.975,
		MedianColumn: DefaultMedianColumn,
		LowerColumn:  DefaultLowerColumn,
		UpperColumn:  DefaultUpperColumn,
	}
}
