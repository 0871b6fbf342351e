// SPDX-License-Identifier: MIT

package writhe

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/writhe/geom"
	"github.com/katalvlaran/writhe/matrix"
)

const (
	methodWrithe = "Writhe"
	methodMatrix = "ContributionMatrix"
)

// Writhe computes the writhe of the closed polygonal curve c.
//
// Stages:
//  1. Validate c (≥ 3 points, all coordinates finite).
//  2. Standardize c (divide by the largest coordinate, centre it) and build
//     the N×N contribution matrix (see ContributionMatrix).
//  3. Reduce it with Accumulate using the configured SumMode.
//
// c is never modified and no state survives the call: two calls with the
// same curve and options return identical bits, whatever the worker count.
//
// Errors:
//   - ErrInvalidCurve    - fewer than 3 points.
//   - ErrNonFiniteInput  - a NaN or ±Inf coordinate.
//
// Complexity: O(N²) time, O(N²) memory.
func Writhe(c geom.Curve, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	m, err := contributionMatrix(c, o)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodWrithe, err)
	}
	wr, err := Accumulate(m, o.sum)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodWrithe, err)
	}

	return wr, nil
}

// ContributionMatrix returns the N×N matrix whose entry (i, j) is
// Contribution(segment i, segment j), with segment i = (c[i-1 mod N], c[i]).
// Entries for which Excluded(N, i, j) holds are exactly zero.
//
// The matrix is symmetric up to rounding: swapping the roles of two
// segments yields the same solid angle. Entries are computed on
// geom.Standardize(c); solid angles do not depend on position or scale, so
// they equal the entries of c itself up to rounding.
//
// Errors: ErrInvalidCurve, ErrNonFiniteInput.
func ContributionMatrix(c geom.Curve, opts ...Option) (*matrix.Dense, error) {
	m, err := contributionMatrix(c, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMatrix, err)
	}

	return m, nil
}

func contributionMatrix(c geom.Curve, o Options) (*matrix.Dense, error) {
	if err := geom.Validate(c); err != nil {
		return nil, err
	}
	// Solid angles are similarity invariant; standardizing keeps every cross
	// product in range for curves at any finite scale.
	segs, err := geom.Segments(geom.Standardize(c))
	if err != nil {
		return nil, err
	}
	n := len(segs)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	workers := min(o.workers, n)
	if workers <= 1 {
		if err = fillRows(m, segs, 0, n); err != nil {
			return nil, err
		}

		return m, nil
	}

	// Contiguous row blocks; each worker Sets only its own cells.
	block := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += block {
		hi := min(lo+block, n)
		g.Go(func() error { return fillRows(m, segs, lo, hi) })
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

// fillRows writes rows [lo, hi) of m. Excluded cells keep their zero value.
// Contribution is finite for standardized input; Set rejects anything else,
// so a non-finite value surfaces as matrix.ErrNaNInf instead of a NaN writhe.
func fillRows(m *matrix.Dense, segs []geom.Segment, lo, hi int) error {
	n := len(segs)
	for i := lo; i < hi; i++ {
		for j := range n {
			if Excluded(n, i, j) {
				continue
			}
			if err := m.Set(i, j, Contribution(segs[i], segs[j])); err != nil {
				return err
			}
		}
	}

	return nil
}
