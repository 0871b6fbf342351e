// SPDX-License-Identifier: MIT

// Package matrix: interface and enum types.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i or j is outside the matrix.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds for bad indices and ErrNaNInf for
	// non-finite v.
	Set(i, j int, v float64) error
}

// SumMode selects the reduction strategy used by Sum.
//
//   - SumCompensated - Neumaier's variant of Kahan summation. The running
//     compensation recovers the low-order bits lost by each addition, so the
//     error stays O(ε) independent of the number of terms.
//   - SumNaive - plain left-to-right accumulation; error grows O(n·ε).
//
// Both modes visit elements in ascending row-major order.
type SumMode int

const (
	// SumCompensated is the default reduction.
	SumCompensated SumMode = iota

	// SumNaive adds elements one by one with no error compensation.
	SumNaive
)

// String implements fmt.Stringer.
func (m SumMode) String() string {
	switch m {
	case SumCompensated:
		return "compensated"
	case SumNaive:
		return "naive"
	default:
		return "SumMode(?)"
	}
}
