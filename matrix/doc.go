// Package matrix provides the dense, row-major float64 storage used for
// pairwise contribution grids, together with deterministic reductions.
//
// The matrix package provides:
//
//   - Matrix, a minimal bounds-checked interface (Rows, Cols, At, Set).
//   - Dense, a flat row-major implementation. Set rejects NaN/Inf, and
//     independent workers may Set disjoint cells without locking.
//   - Sum, a reduction in fixed ascending row-major order, either naive or
//     compensated (Neumaier), so equal inputs always reduce to equal bits.
//
// Dense matrices cost O(r·c) memory; they are intended for grids of a few
// thousand rows at most.
package matrix
