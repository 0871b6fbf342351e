// SPDX-License-Identifier: MIT
// Package: writhe/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w ("TorusKnot: p=2 q=4: ...").
//   • Constructors never panic; validation panics are confined to WithX.
//
// Priority when several checks fail:
//   • ErrTooFewPoints   - size checks first.
//   • ErrBadParameter   - then shape parameters (radius, p/q, sigma).
//   • ErrNeedRandSource - then RNG presence for stochastic builders.

package builder

import "errors"

// ErrTooFewPoints indicates that the requested sample count n is below
// geom.MinCurvePoints.
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrBadParameter indicates a meaningless shape parameter: non-positive or
// non-finite radius, non-coprime torus knot winding numbers, negative sigma.
var ErrBadParameter = errors.New("builder: invalid parameter")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
