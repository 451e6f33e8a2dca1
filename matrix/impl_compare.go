// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/rowmat/feq"

// Equal reports whether a and b have identical row counts, identical column
// counts row by row, and every pair of cells equal under feq.EqualEps with the
// configured tolerance (WithEpsilon; DefaultEpsilon otherwise).
//
// Any shape mismatch at any row yields false, so ragged matrices compare
// faithfully. A nil matrix is treated as 0×0.
//
// Complexity: O(r*c), early exit on the first mismatch.
func Equal(a, b *Matrix, opts ...Option) bool {
	eps := gatherOptions(opts...).eps

	ra, rb := rowsOf(a), rowsOf(b)
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		x, y := ra[i].data, rb[i].data
		if len(x) != len(y) {
			return false
		}
		for j := range x {
			if !feq.EqualEps(x[j], y[j], eps) {
				return false
			}
		}
	}

	return true
}

// NotEqual is the logical negation of Equal.
func NotEqual(a, b *Matrix, opts ...Option) bool { return !Equal(a, b, opts...) }

// rowsOf returns the row slice of m, or nil for a nil matrix.
func rowsOf(m *Matrix) []Row {
	if m == nil {
		return nil
	}

	return m.rows
}
