// Package csvio moves draw matrices and point tables across the CSV
// boundary: the format samplers dump to disk and spreadsheets understand.
//
// The csvio package provides:
//
//   - ReadMatrix: headerless numeric CSV, one row per draw, one column per
//     prediction point.
//   - ReadTable: header row names the columns; each column's kind is
//     inferred by scanning every cell (int64 → float64 → string, first kind
//     that fits all cells wins).
//   - WriteTable: header plus rows, floats rendered with strconv's shortest
//     round-trippable 'g' form, so written tables re-read losslessly.
//
// Errors wrap package sentinels plus the upstream draws/points sentinels:
// a ragged numeric CSV surfaces draws.ErrRaggedRows, a repeated header
// surfaces points.ErrDuplicateColumn, and so on.
package csvio
