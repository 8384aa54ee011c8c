// Package draws stores posterior draw ensembles as dense row-major
// S×P matrices: S rows of draws, P columns of prediction points.
//
// The draws package provides:
//
//   - Matrix, a flat-slice row-major container with bounds-safe accessors,
//     O(1) At/Set and O(S) column extraction.
//   - Strict ingestion: every constructor and Set rejects NaN/±Inf cells,
//     so downstream order statistics never meet non-finite values.
//   - AppendRows for concatenating ensembles from independent chains.
//   - Two-way adapters to gonum/mat (FromDense, ToDense, and Matrix itself
//     satisfies mat.Matrix) for fitters that produce gonum matrices.
//
// A Matrix is best treated as write-once: build it from a sampler's output,
// then hand it to band.Summarize. Nothing in this package mutates shared
// state, so independent matrices are safe to use from concurrent goroutines.
//
// See the examples in this package and in band for usage patterns.
package draws
