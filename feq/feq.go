// SPDX-License-Identifier: MIT

// Package feq provides the approximate floating-point equality predicate
// used by matrix comparison.
//
// Purpose:
//   - Give a single, documented tolerance policy for "equal enough" float64s.
//   - Keep the policy out of the matrix kernels so it can be tuned in one place.
//
// Policy:
//   - Exactly equal values (including matching infinities) are equal.
//   - NaN is never equal to anything, itself included.
//   - Otherwise a and b are equal when |a-b| ≤ eps (absolute test, which covers
//     values near zero) or |a-b| ≤ eps·max(|a|,|b|) (relative test, which covers
//     large magnitudes).
//
// Complexity: O(1), no allocations.
package feq

import "math"

// DefaultEpsilon is the tolerance used by Equal. It matches the numeric
// tolerance of the matrix package.
const DefaultEpsilon = 1e-9

// Equal reports whether a and b are equal within DefaultEpsilon.
func Equal(a, b float64) bool { return EqualEps(a, b, DefaultEpsilon) }

// EqualEps reports whether a and b are equal within eps, using the combined
// absolute/relative test described in the package comment.
// A negative eps is treated as |eps|; a NaN eps makes every inexact pair unequal.
func EqualEps(a, b, eps float64) bool {
	// Fast exit: identical bit patterns aside, == also handles ±Inf pairs.
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	// Opposite or mixed infinities never compare equal past this point.
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	if eps < 0 {
		eps = -eps
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	return diff <= eps*math.Max(math.Abs(a), math.Abs(b))
}
