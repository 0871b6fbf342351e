// Package geom holds the geometric data model for closed polygonal space
// curves: points, curves, directed segments, safe normalization and the
// rigid/orientation-reversing transforms used to check curve invariants.
//
// 🚀 What lives here?
//
//	A Curve is an ordered list of N ≥ 3 points in ℝ³ describing a closed
//	loop: the point after the last one is, implicitly, the first one.
//	Segments turns that loop into N directed edges using the wraparound rule
//
//	    segment i = (c[(i-1) mod N], c[i])
//
//	so segment 0 is the closing edge (c[N-1] → c[0]).
//
// ✨ Key features:
//   - Point is github.com/golang/geo/r3.Vector; all vector algebra is r3's.
//   - Normalize tolerates the zero vector (returns it unchanged).
//   - Validate rejects short curves (ErrInvalidCurve) and NaN/±Inf
//     coordinates (ErrNonFiniteInput) before any numeric work.
//   - Translate, Scale, Rotate, Reflect, Reverse never mutate their input.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/writhe/geom"
//
//	c := geom.Curve{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 1}}
//	segs, err := geom.Segments(c)
//
// Complexity:
//
//   - Validate, Segments and every transform are O(N) time and memory.
package geom
