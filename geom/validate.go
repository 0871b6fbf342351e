// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

const methodValidate = "Validate"

// Validate checks that c is usable as a closed polygonal curve.
//
// Stage 1: len(c) ≥ MinCurvePoints, else ErrInvalidCurve.
// Stage 2: every coordinate is finite, else ErrNonFiniteInput wrapped with
// the index of the first offending point.
//
// Point distinctness is NOT checked; duplicate points produce zero vectors
// downstream, which Normalize tolerates.
//
// Complexity: O(N).
func Validate(c Curve) error {
	if len(c) < MinCurvePoints {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodValidate, len(c), MinCurvePoints, ErrInvalidCurve)
	}
	for i, p := range c {
		if !IsFinite(p) {
			return fmt.Errorf("%s: point %d %v: %w", methodValidate, i, p, ErrNonFiniteInput)
		}
	}

	return nil
}

// IsFinite reports whether all three coordinates of p are finite.
func IsFinite(p Point) bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
