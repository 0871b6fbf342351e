// Package writhe (module root) computes the writhe of closed polygonal space
// curves: how strongly a closed 3D loop coils around itself.
//
// 🚀 What is in the module?
//
//	geom/    - Point (r3.Vector), Curve, Segment, zero-safe Normalize,
//	           validation and rigid / mirror / scale / reverse transforms
//	matrix/  - dense row-major contribution grid + deterministic
//	           (naive or compensated) row-major reductions
//	writhe/  - adjacency exclusion, per-pair solid angle, accumulation,
//	           public Writhe and ContributionMatrix
//	builder/ - deterministic fixtures: polygons, torus knots,
//	           figure-eight, seeded jitter
//
// ✨ Why this layout?
//
//   - Pure functions, no package state, no cgo
//   - Sentinel errors checked with errors.Is
//   - Functional options (WithWorkers, WithSummation, WithSeed, …)
//   - Bit-identical results for any worker count
//
// Quick example:
//
//	c, _ := builder.Trefoil(200)
//	wr, err := writhe.Writhe(c, writhe.WithParallel())
//
//	go get github.com/katalvlaran/writhe
package writhe
