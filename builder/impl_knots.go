// SPDX-License-Identifier: MIT
// Package: writhe/builder
//
// impl_knots.go - TorusKnot, Trefoil and FigureEight.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewPoints).
//   • TorusKnot: p ≥ 1, q ≠ 0, gcd(p,|q|) = 1 (else ErrBadParameter).
//     Negative q yields the mirror image.
//   • Samples t_k = 2πk/n, k = 0..n-1; the closing edge joins t_{n-1} to t_0.
//
// Complexity:
//   • Time O(n), Space O(n).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/writhe/geom"
)

const (
	methodTorusKnot   = "TorusKnot"
	methodFigureEight = "FigureEight"
)

// TorusKnot samples the (p,q) torus knot
//
//	x = (R + r·cos qt)·cos pt
//	y = (R + r·cos qt)·sin pt
//	z = r·sin qt
//
// which winds p times around the torus axis and q times through its hole.
// Radii come from WithRadii (default R=2, r=1).
func TorusKnot(p, q, n int, opts ...Option) (geom.Curve, error) {
	if n < geom.MinCurvePoints {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodTorusKnot, n, geom.MinCurvePoints, ErrTooFewPoints)
	}
	if p < 1 || q == 0 || gcd(p, q) != 1 {
		return nil, fmt.Errorf("%s: p=%d q=%d: %w", methodTorusKnot, p, q, ErrBadParameter)
	}
	cfg := newBuilderConfig(opts...)

	R, r := cfg.majorR, cfg.minorR
	fp, fq := float64(p), float64(q)
	c := make(geom.Curve, n)
	for k := range n {
		t := 2 * math.Pi * float64(k) / float64(n)
		rho := R + r*math.Cos(fq*t)
		c[k] = cfg.place(geom.Point{
			X: rho * math.Cos(fp*t),
			Y: rho * math.Sin(fp*t),
			Z: r * math.Sin(fq*t),
		})
	}

	return c, nil
}

// Trefoil is TorusKnot(2, 3, n, opts...).
func Trefoil(n int, opts ...Option) (geom.Curve, error) {
	return TorusKnot(2, 3, n, opts...)
}

// FigureEight samples the figure-eight knot
//
//	x = (2 + cos 2t)·cos 3t
//	y = (2 + cos 2t)·sin 3t
//	z = sin 4t
//
// It is amphichiral, so its writhe is small compared to torus knots.
// Only WithCenter applies.
func FigureEight(n int, opts ...Option) (geom.Curve, error) {
	if n < geom.MinCurvePoints {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodFigureEight, n, geom.MinCurvePoints, ErrTooFewPoints)
	}
	cfg := newBuilderConfig(opts...)

	c := make(geom.Curve, n)
	for k := range n {
		t := 2 * math.Pi * float64(k) / float64(n)
		rho := 2 + math.Cos(2*t)
		c[k] = cfg.place(geom.Point{
			X: rho * math.Cos(3*t),
			Y: rho * math.Sin(3*t),
			Z: math.Sin(4 * t),
		})
	}

	return c, nil
}

// gcd returns the greatest common divisor of |a| and |b|.
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
