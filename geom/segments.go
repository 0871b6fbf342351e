// SPDX-License-Identifier: MIT

package geom

// Segments returns the N directed edges of the closed curve c, where
// segment i joins c[(i-1) mod N] to c[i]. Segment 0 is the closing edge.
//
// The curve is validated first (see Validate); on error no segments are built.
//
// Complexity: O(N) time and memory.
func Segments(c Curve) ([]Segment, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}

	n := len(c)
	segs := make([]Segment, n)
	for i := range n {
		segs[i] = Segment{Begin: c[(i+n-1)%n], End: c[i]}
	}

	return segs, nil
}

// SegmentAt returns segment i of c without allocating the full slice.
// It assumes c has been validated and 0 ≤ i < len(c).
func SegmentAt(c Curve, i int) Segment {
	n := len(c)

	return Segment{Begin: c[(i+n-1)%n], End: c[i]}
}
