// SPDX-License-Identifier: MIT
// Package: writhe/geom
//
// errors.go - sentinel errors for curve validation and transforms.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context (index, size) is attached with %w at the return site.
//   • Validation priority: size (ErrInvalidCurve) before values (ErrNonFiniteInput).

package geom

import "errors"

// ErrInvalidCurve indicates a curve with fewer than MinCurvePoints points.
// A closed polygon needs three vertices to have well-defined segments.
var ErrInvalidCurve = errors.New("geom: curve needs at least 3 points")

// ErrNonFiniteInput indicates a NaN or ±Inf coordinate in a curve point.
var ErrNonFiniteInput = errors.New("geom: NaN or Inf coordinate")

// ErrZeroAxis indicates a rotation about the zero vector was requested.
var ErrZeroAxis = errors.New("geom: rotation axis must be non-zero")

// ErrBadScale indicates a non-finite or non-positive scale factor.
var ErrBadScale = errors.New("geom: scale must be finite and > 0")
