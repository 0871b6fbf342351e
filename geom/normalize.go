// SPDX-License-Identifier: MIT

package geom

import "math"

// Normalize returns v/‖v‖, or v itself when ‖v‖ == 0.
//
// Cross products of coplanar or coincident edge vectors can be exactly zero.
// Passing them through unnormalized keeps downstream dot products at 0
// instead of NaN.
//
// The vector is first divided by its largest absolute component, so the
// squared norm neither underflows for tiny inputs (1e-170) nor overflows for
// huge ones (1e200): every finite non-zero v yields a unit vector.
//
// Complexity: O(1).
func Normalize(v Point) Point {
	m := MaxAbs(v)
	if m == 0 {
		return v
	}
	w := Point{X: v.X / m, Y: v.Y / m, Z: v.Z / m}

	return w.Mul(1 / w.Norm())
}

// MaxAbs returns max(|x|, |y|, |z|).
func MaxAbs(v Point) float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}
