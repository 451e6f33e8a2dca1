// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/ragged/shape checks here.
//  - Return sentinels wrapped with the validator name so call sites can add
//    their operation tag on top and errors.Is still matches.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Rectangular → Shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRectangular returns ErrRaggedRows if any row differs in length from row 0.
// Assumes m is not nil. Complexity: O(r).
func ValidateRectangular(m *Matrix) error {
	if !m.IsRectangular() {
		return validatorErrorf("ValidateRectangular", ErrRaggedRows)
	}

	return nil
}

// ValidateSameShape returns ErrDimensionMismatch unless a and b have equal
// Rows() and Cols(). Assumes both are non-nil.
func ValidateSameShape(a, b *Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateUnary checks a single operand: non-nil and rectangular.
func ValidateUnary(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateRectangular(m)
}

// ValidateBinarySameShape checks both operands with ValidateUnary, then shape equality.
// Errors: ErrNilMatrix, ErrRaggedRows, ErrDimensionMismatch (in that priority).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateUnary(a); err != nil {
		return err
	}
	if err := ValidateUnary(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible checks both operands with ValidateUnary, then a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrRaggedRows, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateUnary(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateUnary(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
