// SPDX-License-Identifier: MIT
// Package: writhe/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • majorR = 2.0   (torus tube centre radius)
//   • minorR = 1.0   (torus tube radius)
//   • center = origin
//   • rng    = nil   (pure/deterministic unless seeded)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/writhe/geom"
)

// builderConfig aggregates all knobs used by constructors.
// It is resolved once per call and passed by value.
type builderConfig struct {
	majorR float64    // > minorR
	minorR float64    // > 0
	center geom.Point // translation applied to every produced point
	rng    *rand.Rand // nil means "no randomness"
}

const (
	defaultMajorRadius = 2.0
	defaultMinorRadius = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		majorR: defaultMajorRadius,
		minorR: defaultMinorRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place shifts p by the configured center.
func (c builderConfig) place(p geom.Point) geom.Point {
	return p.Add(c.center)
}
