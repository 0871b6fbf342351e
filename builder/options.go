// SPDX-License-Identifier: MIT
// Package: writhe/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/writhe/geom"
)

// Option customizes a constructor by mutating builderConfig before use.
type Option func(*builderConfig)

// WithRadii sets the torus radii used by TorusKnot and Trefoil.
// Panics unless 0 < minor < major and both are finite; otherwise the torus
// self-intersects and the knot is not embedded.
func WithRadii(major, minor float64) Option {
	if math.IsNaN(major) || math.IsInf(major, 0) || math.IsNaN(minor) || math.IsInf(minor, 0) ||
		minor <= 0 || minor >= major {
		panic("builder: WithRadii requires 0 < minor < major")
	}

	return func(c *builderConfig) {
		c.majorR = major
		c.minorR = minor
	}
}

// WithCenter translates every produced point by p.
// Panics on non-finite coordinates.
func WithCenter(p geom.Point) Option {
	if !geom.IsFinite(p) {
		panic("builder: WithCenter requires finite coordinates")
	}

	return func(c *builderConfig) { c.center = p }
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG. Panics on nil.
// The RNG is not safe for concurrent use; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}
