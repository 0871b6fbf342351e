// SPDX-License-Identifier: MIT

package writhe

import (
	"math"

	"github.com/katalvlaran/writhe/geom"
)

// Contribution returns the signed solid angle Ω between two non-adjacent
// straight segments a = (a0, a1) and b = (b0, b1).
//
// Algorithm Outline:
//  1. Edge vectors
//     r13 = a0−b0, r14 = a0−b1, r23 = a1−b0, r24 = a1−b1,
//     r34 = b0−b1, r12 = a0−a1.
//  2. Face normals of the spherical quadrilateral, each via geom.Normalize:
//     n1 = r13×r14, n2 = r14×r24, n3 = r24×r23, n4 = r23×r13.
//  3. Ω* = Σ asin(clamp(nk·nk+1, −1, 1)) over the four consecutive pairs.
//  4. sign = sgn((r34×r12)·r13), with sgn(0) = 0.
//  5. Ω = Ω*·sign.
//
// The clamp absorbs rounding that pushes a unit dot product just outside
// [−1, 1]. Coplanar pairs have a zero triple product and therefore
// contribute exactly 0.
//
// For finite edge vectors whose cross products do not overflow, the result
// is finite: every arcsine term lies in [−π/2, π/2], so |Ω| ≤ 2π.
//
// The caller is responsible for skipping adjacent pairs (see Excluded);
// for segments sharing an endpoint the result is meaningless.
//
// Complexity: O(1), no allocations.
func Contribution(a, b geom.Segment) float64 {
	r13 := a.Begin.Sub(b.Begin)
	r14 := a.Begin.Sub(b.End)
	r23 := a.End.Sub(b.Begin)
	r24 := a.End.Sub(b.End)
	r34 := b.Begin.Sub(b.End)
	r12 := a.Begin.Sub(a.End)

	n1 := geom.Normalize(r13.Cross(r14))
	n2 := geom.Normalize(r14.Cross(r24))
	n3 := geom.Normalize(r24.Cross(r23))
	n4 := geom.Normalize(r23.Cross(r13))

	omega := asinClamped(n1.Dot(n2)) +
		asinClamped(n2.Dot(n3)) +
		asinClamped(n3.Dot(n4)) +
		asinClamped(n4.Dot(n1))

	return omega * sign(r34.Cross(r12).Dot(r13))
}

// asinClamped is math.Asin with its argument clamped to [−1, 1].
func asinClamped(x float64) float64 {
	return math.Asin(math.Max(-1, math.Min(1, x)))
}

// sign returns −1, 0 or +1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
