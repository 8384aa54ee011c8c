package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mirelav/postband/band"
	"github.com/mirelav/postband/csvio"
	"github.com/mirelav/postband/draws"
	"github.com/mirelav/postband/points"
)

// summarizeFlags carries the flag surface of the summarize subcommand.
type summarizeFlags struct {
	drawsPath  string
	pointsPath string
	key        string
	lower      float64
	upper      float64
	out        string
	verbose    bool
}

// newSummarizeCmd builds the `postband summarize` subcommand.
func newSummarizeCmd() *cobra.Command {
	var f summarizeFlags

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a draws CSV against a points CSV",
		Example: `  postband summarize --draws draws.csv --points points.csv --key id
  postband summarize --draws mu.csv --points grid.csv --key id --lower 0.25 --upper 0.75 --out band.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(f)
		},
	}

	cmd.Flags().StringVar(&f.drawsPath, "draws", "", "headerless numeric CSV, rows=draws cols=points (required)")
	cmd.Flags().StringVar(&f.pointsPath, "points", "", "point table CSV with header row (required)")
	cmd.Flags().StringVar(&f.key, "key", "", "name of the unique id column in the point table (required)")
	cmd.Flags().Float64Var(&f.lower, "lower", 0.025, "lower interval probability")
	cmd.Flags().Float64Var(&f.upper, "upper", 0.975, "upper interval probability")
	cmd.Flags().StringVar(&f.out, "out", "", "output CSV path (default: stdout)")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "log shapes and timings to stderr")
	_ = cmd.MarkFlagRequired("draws")
	_ = cmd.MarkFlagRequired("points")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

// runSummarize is the whole pipeline: read both CSVs, summarize, write.
func runSummarize(f summarizeFlags) error {
	log, err := newLogger(f.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	start := time.Now()

	m, err := readMatrixFile(f.drawsPath)
	if err != nil {
		return err
	}
	pt, err := readTableFile(f.pointsPath)
	if err != nil {
		return err
	}
	log.Debug("inputs loaded",
		zap.Int("draws", m.Draws()),
		zap.Int("points", m.Points()),
		zap.Int("table_rows", pt.Len()),
	)

	opts := band.DefaultOptions()
	opts.Lower, opts.Upper = f.lower, f.upper
	summary, err := band.Summarize(m, pt, f.key, opts)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if f.out != "" {
		file, err := os.Create(f.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", f.out, err)
		}
		defer func() { _ = file.Close() }()
		w = file
	}
	if err := csvio.WriteTable(w, summary); err != nil {
		return err
	}

	log.Info("summary written",
		zap.String("out", orStdout(f.out)),
		zap.Int("rows", summary.Len()),
		zap.Duration("took", time.Since(start)),
	)

	return nil
}

// newLogger builds a stderr zap logger; verbose enables debug output.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return cfg.Build()
}

// readMatrixFile opens and parses a headerless draws CSV.
func readMatrixFile(path string) (*draws.Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return csvio.ReadMatrix(file)
}

// readTableFile opens and parses a point-table CSV.
func readTableFile(path string) (*points.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return csvio.ReadTable(file)
}

// orStdout renders the output destination for logging.
func orStdout(path string) string {
	if path == "" {
		return "stdout"
	}

	return path
}
