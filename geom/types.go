// SPDX-License-Identifier: MIT

package geom

import "github.com/golang/geo/r3"

// MinCurvePoints is the smallest point count of a closed polygonal curve.
const MinCurvePoints = 3

// Point is a location (or displacement) in ℝ³.
type Point = r3.Vector

// Curve is an ordered, implicitly closed sequence of points.
// The algorithms in this module treat a Curve as read-only.
type Curve []Point

// Segment is a directed straight edge of a closed polygon.
type Segment struct {
	Begin Point // tail, c[(i-1) mod N]
	End   Point // head, c[i]
}

// Direction returns End − Begin.
func (s Segment) Direction() Point {
	return s.End.Sub(s.Begin)
}

// Axis selects a coordinate axis for Reflect.
type Axis int

const (
	// AxisX selects the X coordinate.
	AxisX Axis = iota
	// AxisY selects the Y coordinate.
	AxisY
	// AxisZ selects the Z coordinate.
	AxisZ
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "Axis(?)"
	}
}
