package band_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirelav/postband/band"
	"github.com/mirelav/postband/draws"
	"github.com/mirelav/postband/points"
)

// twoPointFixture is the canonical 5-draw, 2-point scenario:
// point samples {1..5} and {10..50}.
func twoPointFixture(t *testing.T) (*draws.Matrix, *points.Table) {
	t.Helper()
	m, err := draws.FromRows([][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
		{4, 40},
		{5, 50},
	})
	require.NoError(t, err)

	pt := points.NewTable()
	require.NoError(t, pt.AddInt("id", []int64{1, 2}))
	require.NoError(t, pt.AddFloat("x", []float64{0, 1}))

	return m, pt
}

// TestSummarize_ConcreteScenario pins the full-range interval over the
// canonical fixture: medians [3,30], lower [1,10], upper [5,50].
func TestSummarize_ConcreteScenario(t *testing.T) {
	m, pt := twoPointFixture(t)
	opts := band.DefaultOptions()
	opts.Lower, opts.Upper = 0, 1

	out, err := band.Summarize(m, pt, "id", opts)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())
	assert.Equal(t, []string{"id", "x", "median", "lower", "upper"}, out.Columns(),
		"covariates first, then the three band columns")

	med, err := out.Float("median")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 30}, med)

	lo, err := out.Float("lower")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10}, lo)

	hi, err := out.Float("upper")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 50}, hi)
}

// TestSummarize_PreservesCovariates verifies the join carries every point
// column through unchanged, in row order.
func TestSummarize_PreservesCovariates(t *testing.T) {
	m, pt := twoPointFixture(t)

	out, err := band.Summarize(m, pt, "id", band.DefaultOptions())
	require.NoError(t, err)

	ids, err := out.Int("id")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)

	xs, err := out.Float("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, xs)
}

// TestSummarize_Ordering asserts lower <= median <= upper on every row for
// a spread of interval widths straddling 0.5.
func TestSummarize_Ordering(t *testing.T) {
	m, pt := twoPointFixture(t)
	for _, bounds := range [][2]float64{{0, 1}, {0.025, 0.975}, {0.25, 0.75}, {0.5, 0.5}} {
		opts := band.DefaultOptions()
		opts.Lower, opts.Upper = bounds[0], bounds[1]

		out, err := band.Summarize(m, pt, "id", opts)
		require.NoError(t, err)

		med, _ := out.Float("median")
		lo, _ := out.Float("lower")
		hi, _ := out.Float("upper")
		for row := range med {
			assert.LessOrEqual(t, lo[row], med[row], "bounds %v row %d", bounds, row)
			assert.LessOrEqual(t, med[row], hi[row], "bounds %v row %d", bounds, row)
		}
	}
}

// TestSummarize_RowCountIndependentOfDraws checks P output rows for
// S = 1, 10 and 10000.
func TestSummarize_RowCountIndependentOfDraws(t *testing.T) {
	const p = 3
	pt := points.NewTable()
	require.NoError(t, pt.AddInt("id", []int64{1, 2, 3}))

	for _, s := range []int{1, 10, 10000} {
		rows := make([][]float64, s)
		for i := range rows {
			rows[i] = []float64{float64(i), float64(2 * i), float64(3 * i)}
		}
		m, err := draws.FromRows(rows)
		require.NoError(t, err)
		require.Equal(t, p, m.Points())

		out, err := band.Summarize(m, pt, "id", band.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, p, out.Len(), "S=%d must still yield %d rows", s, p)
	}
}

// TestSummarize_Deterministic runs the same call twice and compares every
// cell of the two outputs.
func TestSummarize_Deterministic(t *testing.T) {
	m, pt := twoPointFixture(t)

	first, err := band.Summarize(m, pt, "id", band.DefaultOptions())
	require.NoError(t, err)
	second, err := band.Summarize(m, pt, "id", band.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, first.Columns(), second.Columns())
	for _, name := range first.Columns() {
		for row := 0; row < first.Len(); row++ {
			a, err := first.Cell(row, name)
			require.NoError(t, err)
			b, err := second.Cell(row, name)
			require.NoError(t, err)
			assert.Equal(t, a, b, "cell (%d,%s)", row, name)
		}
	}
}

// TestSummarize_DoesNotMutateInputs confirms purity: matrix cells and table
// columns are unchanged after a call.
func TestSummarize_DoesNotMutateInputs(t *testing.T) {
	m, pt := twoPointFixture(t)

	_, err := band.Summarize(m, pt, "id", band.DefaultOptions())
	require.NoError(t, err)

	col, err := m.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, col, "matrix must stay unsorted")
	assert.Equal(t, []string{"id", "x"}, pt.Columns(), "table must not grow")
}

// TestSummarize_ShapeMismatch: 5 matrix points against a 4-row table.
func TestSummarize_ShapeMismatch(t *testing.T) {
	m, err := draws.FromRows([][]float64{{1, 2, 3, 4, 5}})
	require.NoError(t, err)
	pt := points.NewTable()
	require.NoError(t, pt.AddInt("id", []int64{1, 2, 3, 4}))

	_, err = band.Summarize(m, pt, "id", band.DefaultOptions())
	assert.ErrorIs(t, err, band.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "5 points", "message must carry actual shape")
	assert.Contains(t, err.Error(), "4 rows", "message must carry expected shape")
}

// TestSummarize_DuplicateKey names the offending id in the error.
func TestSummarize_DuplicateKey(t *testing.T) {
	m, err := draws.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	pt := points.NewTable()
	require.NoError(t, pt.AddInt("id", []int64{7, 7}))

	_, err = band.Summarize(m, pt, "id", band.DefaultOptions())
	assert.ErrorIs(t, err, band.ErrDuplicateKey)
	assert.Contains(t, err.Error(), `"7"`, "message must name the duplicate id")
}

// TestSummarize_BadProbabilities covers out-of-range and inverted bounds.
func TestSummarize_BadProbabilities(t *testing.T) {
	m, pt := twoPointFixture(t)
	for _, bounds := range [][2]float64{{-0.1, 0.9}, {0.1, 1.1}, {0.9, 0.1}} {
		opts := band.DefaultOptions()
		opts.Lower, opts.Upper = bounds[0], bounds[1]

		_, err := band.Summarize(m, pt, "id", opts)
		assert.ErrorIs(t, err, band.ErrBadProbability, "bounds %v", bounds)
	}
}

// TestSummarize_DegenerateBand: Lower = Upper = 0.5 collapses the band onto
// the median for every point.
func TestSummarize_DegenerateBand(t *testing.T) {
	m, pt := twoPointFixture(t)
	opts := band.DefaultOptions()
	opts.Lower, opts.Upper = 0.5, 0.5

	out, err := band.Summarize(m, pt, "id", opts)
	require.NoError(t, err)

	med, _ := out.Float("median")
	lo, _ := out.Float("lower")
	hi, _ := out.Float("upper")
	assert.Equal(t, med, lo, "lower must equal median")
	assert.Equal(t, med, hi, "upper must equal median")
}

// TestSummarize_KeyColumnContract covers missing and float key columns.
func TestSummarize_KeyColumnContract(t *testing.T) {
	m, pt := twoPointFixture(t)

	_, err := band.Summarize(m, pt, "nope", band.DefaultOptions())
	assert.ErrorIs(t, err, points.ErrUnknownColumn)

	_, err = band.Summarize(m, pt, "x", band.DefaultOptions())
	assert.ErrorIs(t, err, points.ErrColumnKind, "float key columns are refused")
}

// TestSummarize_NilInputs covers the nil sentinels.
func TestSummarize_NilInputs(t *testing.T) {
	m, pt := twoPointFixture(t)

	_, err := band.Summarize(nil, pt, "id", band.DefaultOptions())
	assert.ErrorIs(t, err, band.ErrNilMatrix)

	_, err = band.Summarize(m, nil, "id", band.DefaultOptions())
	assert.ErrorIs(t, err, band.ErrNilTable)
}

// TestSummarize_StringKeys exercises a string id column end to end.
func TestSummarize_StringKeys(t *testing.T) {
	m, err := draws.FromRows([][]float64{{1, 10}, {3, 30}})
	require.NoError(t, err)
	pt := points.NewTable()
	require.NoError(t, pt.AddString("species", []string{"cat", "dog"}))

	out, err := band.Summarize(m, pt, "species", band.DefaultOptions())
	require.NoError(t, err)

	med, err := out.Float("median")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 20}, med)
}

// TestSummarize_CustomColumnNames renames the band columns and checks the
// collision guard against existing covariates.
func TestSummarize_CustomColumnNames(t *testing.T) {
	m, pt := twoPointFixture(t)
	opts := band.DefaultOptions()
	opts.MedianColumn, opts.LowerColumn, opts.UpperColumn = "mid", "lo", "hi"

	out, err := band.Summarize(m, pt, "id", opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "x", "mid", "lo", "hi"}, out.Columns())

	opts.MedianColumn = "x" // collides with a covariate
	_, err = band.Summarize(m, pt, "id", opts)
	assert.ErrorIs(t, err, points.ErrDuplicateColumn)
}

// fakeSampler fills deterministic matrices; predictive draws get an extra
// ±spread around the mean draws to mimic residual noise.
type fakeSampler struct {
	n      int // remembered for assertions
	spread float64
	fail   error
}

func (f *fakeSampler) MeanDraws(pt *points.Table, n int) (*draws.Matrix, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, pt.Len())
		for j := range rows[i] {
			rows[i][j] = float64(j*100 + i) // distinct, increasing per point
		}
	}
	f.n = n

	return draws.FromRows(rows)
}

func (f *fakeSampler) PredictiveDraws(pt *points.Table, n int) (*draws.Matrix, error) {
	m, err := f.MeanDraws(pt, n)
	if err != nil {
		return nil, err
	}
	// Symmetric widening: alternate draws pushed out by ±spread.
	widened := m.Clone()
	for i := 0; i < widened.Draws(); i++ {
		for j := 0; j < widened.Points(); j++ {
			v, _ := m.At(i, j)
			if i%2 == 0 {
				v -= f.spread
			} else {
				v += f.spread
			}
			if err := widened.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return widened, nil
}

// TestSummarizeMean_Facade wires a Sampler into the summarizer.
func TestSummarizeMean_Facade(t *testing.T) {
	_, pt := twoPointFixture(t)
	s := &fakeSampler{}

	out, err := band.SummarizeMean(s, pt, "id", 11, band.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 11, s.n, "facade must request exactly n draws")
	assert.Equal(t, pt.Len(), out.Len())

	med, err := out.Float("median")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 105}, med, "median of 0..10 offset by 100·j")
}

// TestSummarizePredictive_WiderBand: predictive intervals must contain the
// mean intervals at the same probabilities.
func TestSummarizePredictive_WiderBand(t *testing.T) {
	_, pt := twoPointFixture(t)
	s := &fakeSampler{spread: 50}
	opts := band.DefaultOptions()
	opts.Lower, opts.Upper = 0, 1

	mean, err := band.SummarizeMean(s, pt, "id", 10, opts)
	require.NoError(t, err)
	pred, err := band.SummarizePredictive(s, pt, "id", 10, opts)
	require.NoError(t, err)

	mLo, _ := mean.Float("lower")
	mHi, _ := mean.Float("upper")
	pLo, _ := pred.Float("lower")
	pHi, _ := pred.Float("upper")
	for row := range mLo {
		assert.Less(t, pLo[row], mLo[row], "row %d predictive lower", row)
		assert.Greater(t, pHi[row], mHi[row], "row %d predictive upper", row)
	}
}

// TestSummarizeFacades_PropagateSamplerErrors keeps generation failures
// inspectable through the facade.
func TestSummarizeFacades_PropagateSamplerErrors(t *testing.T) {
	_, pt := twoPointFixture(t)
	boom := fmt.Errorf("sampler exploded")
	s := &fakeSampler{fail: boom}

	_, err := band.SummarizeMean(s, pt, "id", 5, band.DefaultOptions())
	assert.ErrorIs(t, err, boom)

	_, err = band.SummarizePredictive(s, pt, "id", 5, band.DefaultOptions())
	assert.ErrorIs(t, err, boom)
}
