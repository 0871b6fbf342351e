// Package writhe computes the writhe (self-linking number) of a closed
// polygonal space curve by discretizing the Gauss double integral over all
// pairs of its straight segments.
//
// 🚀 What is writhe?
//
//	Writhe measures how much a closed curve coils around itself in space.
//	For smooth curves it is the Gauss integral
//
//	    Wr = 1/(4π) ∮∮ (dr₁ × dr₂)·(r₁ − r₂) / |r₁ − r₂|³
//
//	For a polygon with N segments the integral splits into N² exact
//	segment-pair terms: the signed solid angle Ω(i,j) subtended by
//	segment j as seen from every point of segment i. It is used in:
//	  • DNA supercoiling & polymer physics
//	  • Protein backbone topology descriptors
//	  • Knot and rod mechanics
//
// ✨ Key features:
//   - exact per-pair solid angle (spherical quadrilateral excess), with
//     clamped arcsine inputs and zero-safe normalization
//   - adjacency exclusion: self and cyclic-neighbour pairs are exactly 0
//   - deterministic compensated (Neumaier) reduction in ascending (i, j)
//     order, so results are bit-identical for any worker count
//   - optional row-partitioned parallel fill (WithWorkers / WithParallel)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/writhe/geom"
//	  "github.com/katalvlaran/writhe/writhe"
//	)
//
//	wr, err := writhe.Writhe(curve, writhe.WithParallel())
//	if errors.Is(err, writhe.ErrInvalidCurve) { /* fewer than 3 points */ }
//
// Invariants (checked in tests):
//   - planar curves have writhe 0
//   - rigid motions and uniform scaling leave writhe unchanged
//   - mirroring one axis negates writhe
//   - reversing traversal direction leaves writhe unchanged
//
// Performance:
//
//   - Time:   O(N²) pair evaluations, each O(1)
//   - Memory: O(N²) for the contribution matrix
package writhe
