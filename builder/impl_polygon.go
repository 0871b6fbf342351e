// SPDX-License-Identifier: MIT
// Package: writhe/builder
//
// impl_polygon.go - RegularPolygon(n, radius).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewPoints).
//   • radius finite and > 0 (else ErrBadParameter).
//   • Vertex k = center + radius·(cos 2πk/n, sin 2πk/n, 0), k = 0..n-1.
//   • Counter-clockwise seen from +Z; exactly planar before centering.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/writhe/geom"
)

const methodPolygon = "RegularPolygon"

// RegularPolygon returns a planar regular n-gon of circumradius radius.
func RegularPolygon(n int, radius float64, opts ...Option) (geom.Curve, error) {
	if n < geom.MinCurvePoints {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPolygon, n, geom.MinCurvePoints, ErrTooFewPoints)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("%s: radius=%g: %w", methodPolygon, radius, ErrBadParameter)
	}
	cfg := newBuilderConfig(opts...)

	c := make(geom.Curve, n)
	for k := range n {
		t := 2 * math.Pi * float64(k) / float64(n)
		c[k] = cfg.place(geom.Point{X: radius * math.Cos(t), Y: radius * math.Sin(t)})
	}

	return c, nil
}
