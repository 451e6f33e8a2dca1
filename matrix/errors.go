// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag and
// tests check them via errors.Is. No kernel panics on user-triggered errors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites wrap
// with fmt.Errorf("<op>: %w", ErrX) so errors.Is keeps matching.
//
// ERROR PRIORITY (enforced in validators and tests):
// nil -> ragged rows -> dimension mismatch. Indexing only ever yields ErrOutOfRange.

var (
	// ErrInvalidDimensions is returned when a requested row/column count is negative.
	// Zero is legal: empty rows and 0×0 matrices are first-class values.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, len).
	// Public indexers (Row, At, Set, Ref) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows signals that an operator needing a rectangular matrix got
	// rows of unequal length.
	ErrRaggedRows = errors.New("matrix: rows have unequal lengths")

	// ErrNilMatrix indicates that a nil *Matrix was passed to an operator.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
