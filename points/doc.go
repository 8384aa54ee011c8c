// Package points provides the ordered, typed table describing prediction
// points: one row per point, one column per covariate, plus the key column
// that joins a summary back to its points.
//
// The points package provides:
//
//   - Table, an ordered collection of named columns (float64, int64 or
//     string) where column order is insertion order and all columns share
//     one row count.
//   - Keys, a canonical string form of an int or string column for use as
//     a join key (float columns are refused — equality on floats is not a
//     join you want).
//   - Defensive copying on every ingestion and extraction path, so a Table
//     never aliases caller storage.
//
// Row order is significant: the band summarizer requires the Table's rows
// to appear in the same order as the draw matrix's columns, and preserves
// that order in its output.
package points
