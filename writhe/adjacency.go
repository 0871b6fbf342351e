// SPDX-License-Identifier: MIT

package writhe

// Excluded reports whether the pair (i, j) of an n-segment closed polygon is
// left out of the pair sum: i == j, or the two segments share an endpoint
// going around the cycle in either direction. Equivalently
//
//	(i − j) mod n ∈ {0, 1, n−1}
//
// The solid-angle formula is singular for such pairs, so their contribution
// is defined to be exactly zero. For n == 3 every pair is excluded. For
// n <= 0 every pair is reported excluded.
//
// Complexity: O(1).
func Excluded(n, i, j int) bool {
	if n <= 0 {
		return true
	}
	d := ((i-j)%n + n) % n

	return d == 0 || d == 1 || d == n-1
}
