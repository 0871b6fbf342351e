// SPDX-License-Identifier: MIT

package writhe

import (
	"fmt"
	"math"

	"github.com/katalvlaran/writhe/matrix"
)

// gaussNorm is the 1/(4π) normalization of the Gauss linking integral.
const gaussNorm = 1 / (4 * math.Pi)

// Accumulate reduces a contribution matrix to a writhe value:
//
//	Wr = 1/(4π) · Σ_{i,j} m[i,j]
//
// The sum runs in ascending row-major order with the given mode (see
// matrix.Sum). Excluded entries are expected to be zero already.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrUnknownSumMode.
//
// Complexity: O(r·c).
func Accumulate(m matrix.Matrix, mode matrix.SumMode) (float64, error) {
	s, err := matrix.Sum(m, mode)
	if err != nil {
		return 0, fmt.Errorf("Accumulate: %w", err)
	}

	return s * gaussNorm, nil
}
