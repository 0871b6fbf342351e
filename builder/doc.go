// Package builder produces deterministic closed space curves: planar
// polygons, torus knots, the figure-eight knot, and seeded random
// perturbations of any curve. They are the fixtures behind writhe tests,
// benchmarks and examples.
//
// The package offers the following key components:
//
//   - Constructors (each returns geom.Curve, error):
//     – RegularPolygon(n, radius): planar n-gon in z = 0 (writhe 0).
//     – TorusKnot(p, q, n):        (p,q) torus knot sampled at n points.
//     – Trefoil(n):                TorusKnot(2, 3, n).
//     – FigureEight(n):            the 4₁ knot, amphichiral.
//     – Jitter(c, sigma):          Gaussian noise on every coordinate.
//   - Options (Option, resolved into an immutable builderConfig):
//     – WithRadii(R, r):  torus radii, 0 < r < R.
//     – WithCenter(p):    translate the produced curve.
//     – WithSeed / WithRand: RNG for Jitter.
//
// Guarantees:
//
//   - Determinism: the same arguments, options and seed yield identical curves.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewPoints, ErrBadParameter, ErrNeedRandSource)
//     for invalid build parameters, wrapped with the constructor name.
//   - O(n) time and memory per constructor.
package builder
