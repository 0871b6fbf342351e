// SPDX-License-Identifier: MIT
// Package: writhe
//
// errors.go - sentinel errors surfaced by Writhe and ContributionMatrix.
//
// Both input sentinels are validated eagerly, before any segment or pair is
// evaluated. They alias the geom sentinels so errors.Is matches either name.

package writhe

import "github.com/katalvlaran/writhe/geom"

// ErrInvalidCurve is returned when the curve has fewer than 3 points.
var ErrInvalidCurve = geom.ErrInvalidCurve

// ErrNonFiniteInput is returned when any coordinate is NaN or ±Inf.
var ErrNonFiniteInput = geom.ErrNonFiniteInput
