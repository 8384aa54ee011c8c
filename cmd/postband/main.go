// Command postband summarizes posterior draw ensembles from the shell:
// CSV in, CSV out, one row per prediction point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is stamped by the release build; "dev" otherwise.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "postband",
		Short:   "Posterior draws → per-point credible-interval bands",
		Version: version,
		Long: `postband collapses a matrix of posterior draws into one summary row per
prediction point: the empirical median plus a two-sided credible interval,
joined to the point's covariates.

Inputs are CSV: a headerless draws matrix (rows = draws, columns = points)
and a point table with a header row and a unique id column.`,
		SilenceUsage: true,
	}
	root.AddCommand(newSummarizeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
