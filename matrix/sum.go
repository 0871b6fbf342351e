// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const ctxSum = "Sum"

// Sum reduces all elements of m to a single value.
//
// Elements are visited through At in ascending row-major order: (0,0),
// (0,1), …, (r-1,c-1). Together with a fixed mode this makes the result a
// pure function of the matrix contents, independent of how the matrix was
// filled.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrUnknownSumMode for an unsupported mode.
//   - any error returned by At, wrapped.
//
// Complexity: O(r*c) time, O(1) space.
func Sum(m Matrix, mode SumMode) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("%s: %w", ctxSum, ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return 0, fmt.Errorf("%s: %w", ctxSum, ErrNilMatrix)
	}
	if mode != SumCompensated && mode != SumNaive {
		return 0, fmt.Errorf("%s: mode=%d: %w", ctxSum, int(mode), ErrUnknownSumMode)
	}

	acc := accumulator{mode: mode}
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", ctxSum, err)
			}
			acc.add(v)
		}
	}

	return acc.result(), nil
}

// accumulator is a running sum with optional Neumaier compensation.
type accumulator struct {
	mode SumMode
	sum  float64
	comp float64 // lost low-order bits, compensated mode only
}

func (a *accumulator) add(v float64) {
	if a.mode == SumNaive {
		a.sum += v
		return
	}
	t := a.sum + v
	if math.Abs(a.sum) >= math.Abs(v) {
		a.comp += (a.sum - t) + v
	} else {
		a.comp += (v - t) + a.sum
	}
	a.sum = t
}

func (a *accumulator) result() float64 {
	return a.sum + a.comp
}
