// SPDX-License-Identifier: MIT
// Package: writhe/builder
//
// impl_jitter.go - Jitter(c, sigma).
//
// Contract:
//   • len(c) ≥ 3 (else ErrTooFewPoints).
//   • sigma finite and ≥ 0 (else ErrBadParameter).
//   • RNG required (WithSeed/WithRand), else ErrNeedRandSource.
//   • Noise is drawn X, Y, Z per point in index order; c is not modified.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/writhe/geom"
)

const methodJitter = "Jitter"

// Jitter returns a copy of c with independent N(0, sigma²) noise added to
// every coordinate, then shifted by WithCenter.
func Jitter(c geom.Curve, sigma float64, opts ...Option) (geom.Curve, error) {
	if len(c) < geom.MinCurvePoints {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodJitter, len(c), geom.MinCurvePoints, ErrTooFewPoints)
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return nil, fmt.Errorf("%s: sigma=%g: %w", methodJitter, sigma, ErrBadParameter)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodJitter, ErrNeedRandSource)
	}

	out := make(geom.Curve, len(c))
	for i, p := range c {
		out[i] = cfg.place(geom.Point{
			X: p.X + sigma*cfg.rng.NormFloat64(),
			Y: p.Y + sigma*cfg.rng.NormFloat64(),
			Z: p.Z + sigma*cfg.rng.NormFloat64(),
		})
	}

	return out, nil
}
