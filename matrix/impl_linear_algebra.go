// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic operators on *Matrix: scalar and
// element-wise addition, scalar scaling, matrix multiplication and transpose.
// All operators are pure: inputs are never mutated and every call returns a
// freshly allocated result. All of them validate operands up front and fail
// fast with wrapped sentinels (ErrNilMatrix, ErrRaggedRows, ErrDimensionMismatch).
//
// Determinism:
//   - Fixed loop orders (i→j for element-wise, i→k→j for Mul), so results are
//     bitwise reproducible for a given input.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAddScalar = "AddScalar"
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mapScalar returns a new matrix with out[i][j] = fn(m[i][j]).
// Shared by AddScalar and Scale.
//
// Errors:
//   - ErrNilMatrix, ErrRaggedRows (wrapped with opTag).
//
// Complexity: Time O(r*c), Space O(r*c).
func mapScalar(m *Matrix, opTag string, fn func(float64) float64) (*Matrix, error) {
	if err := ValidateUnary(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := m.Shape()
	out, err := New(rows, cols, 0)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for i := 0; i < rows; i++ {
		src, dst := m.rows[i].data, out.rows[i].data
		for j := 0; j < cols; j++ {
			dst[j] = fn(src[j])
		}
	}

	return out, nil
}

// AddScalar returns m + d: a new matrix of the same shape with d added to
// every element.
//
// Errors: ErrNilMatrix, ErrRaggedRows.
// Complexity: O(r*c).
func AddScalar(m *Matrix, d float64) (*Matrix, error) {
	return mapScalar(m, opAddScalar, func(v float64) float64 { return v + d })
}

// Scale returns m * d: a new matrix of the same shape with every element
// multiplied by d. d = 0 yields an explicit zero matrix of the same shape.
//
// Errors: ErrNilMatrix, ErrRaggedRows.
// Complexity: O(r*c).
func Scale(m *Matrix, d float64) (*Matrix, error) {
	return mapScalar(m, opScale, func(v float64) float64 { return v * d })
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and the loop.
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Shape()
	out, err := New(rows, cols, 0)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for i := 0; i < rows; i++ {
		ra, rb, dst := a.rows[i].data, b.rows[i].data, out.rows[i].data
		for j := 0; j < cols; j++ {
			dst[j] = ra[j] + sign*rb[j]
		}
	}

	return out, nil
}

// Add returns the element-wise sum a + b, shaped like a.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrRaggedRows (non-rectangular operand),
//     ErrDimensionMismatch (shapes differ).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the element-wise difference a − b. Same contract as Add.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// C has a.Rows() rows and b.Cols() columns;
// C[i][j] = Σ_{k=0}^{b.Rows()-1} a[i][k]·b[k][j], accumulated in ascending k.
//
// Errors:
//   - ErrNilMatrix, ErrRaggedRows, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity: Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - i→k→j order walks both operands row-wise; no zero-skipping so NaN/Inf
//     in b propagate exactly as in the textbook sum.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), b.Rows(), b.Cols()
	out, err := New(aRows, bCols, 0)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, k, j int
		av      float64
	)
	for i = 0; i < aRows; i++ {
		ra, dst := a.rows[i].data, out.rows[i].data
		for k = 0; k < inner; k++ {
			av = ra[k]
			rb := b.rows[k].data
			for j = 0; j < bCols; j++ {
				dst[j] += av * rb[j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ: a new Cols()×Rows() matrix with out[i][j] = m[j][i].
// Rectangular inputs of any shape are supported.
//
// Errors: ErrNilMatrix, ErrRaggedRows.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateUnary(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Shape()
	out, err := New(cols, rows, 0) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < rows; i++ {
		src := m.rows[i].data
		for j := 0; j < cols; j++ {
			out.rows[j].data[i] = src[j]
		}
	}

	return out, nil
}
