// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Transforms below are pure: each returns a freshly allocated Curve and leaves
// its input untouched. They do not validate the curve itself; callers that
// need guarantees call Validate on the result.

// Translate shifts every point by d.
func Translate(c Curve, d Point) Curve {
	out := make(Curve, len(c))
	for i, p := range c {
		out[i] = p.Add(d)
	}

	return out
}

// Scale multiplies every point by s about the origin.
// Returns ErrBadScale unless s is finite and positive.
func Scale(c Curve, s float64) (Curve, error) {
	if !isFinite(s) || s <= 0 {
		return nil, fmt.Errorf("Scale: s=%g: %w", s, ErrBadScale)
	}
	out := make(Curve, len(c))
	for i, p := range c {
		out[i] = p.Mul(s)
	}

	return out, nil
}

// Rotate turns every point by angle radians about the line through the
// origin with direction axis, following the right-hand rule.
//
// Rodrigues' formula, with k = axis/‖axis‖:
//
//	v' = v·cosθ + (k × v)·sinθ + k·(k·v)·(1 − cosθ)
//
// Returns ErrZeroAxis when axis is the zero vector.
func Rotate(c Curve, axis Point, angle float64) (Curve, error) {
	if axis.Norm() == 0 {
		return nil, fmt.Errorf("Rotate: %w", ErrZeroAxis)
	}
	k := Normalize(axis)
	cos, sin := math.Cos(angle), math.Sin(angle)

	out := make(Curve, len(c))
	for i, v := range c {
		out[i] = v.Mul(cos).
			Add(k.Cross(v).Mul(sin)).
			Add(k.Mul(k.Dot(v) * (1 - cos)))
	}

	return out, nil
}

// Reflect negates coordinate a of every point (a mirror through the plane
// orthogonal to a). Reflection reverses orientation.
func Reflect(c Curve, a Axis) Curve {
	out := make(Curve, len(c))
	for i, p := range c {
		switch a {
		case AxisX:
			p.X = -p.X
		case AxisY:
			p.Y = -p.Y
		default:
			p.Z = -p.Z
		}
		out[i] = p
	}

	return out
}

// Reverse returns the points of c in opposite traversal order.
func Reverse(c Curve) Curve {
	out := make(Curve, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}

	return out
}

// Standardize maps c into the cube [-2, 2]³ with a similarity transform:
// it divides every coordinate by the largest absolute coordinate of the
// curve, then subtracts the centroid of the result. Dividing first keeps the
// centroid sum from overflowing.
//
// Shape, orientation and handedness are preserved, so any similarity
// invariant (angles, solid angles, writhe) is unchanged while cross products
// of edge vectors stay far from float64 overflow and underflow. A curve whose
// points all sit at the origin is returned as a copy.
//
// c must be finite (see Validate). Complexity: O(N).
func Standardize(c Curve) Curve {
	var m float64
	for _, p := range c {
		m = math.Max(m, MaxAbs(p))
	}
	out := make(Curve, len(c))
	if m == 0 {
		copy(out, c)

		return out
	}

	var centroid Point
	for i, p := range c {
		out[i] = Point{X: p.X / m, Y: p.Y / m, Z: p.Z / m}
		centroid = centroid.Add(out[i])
	}
	centroid = centroid.Mul(1 / float64(len(c)))
	for i := range out {
		out[i] = out[i].Sub(centroid)
	}

	return out
}
