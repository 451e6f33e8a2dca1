// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Avoid any logic duplication: each facade delegates to one implementation.

package matrix

// ---------- Constructors ----------

// NewZeros returns a rows×cols zero matrix. Thin alias of New(rows, cols, 0).
func NewZeros(rows, cols int) (*Matrix, error) { return New(rows, cols, 0) }

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Matrix, error) {
	I, err := New(n, n, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.rows[i].data[i] = 1
	}

	return I, nil
}

// ZerosLike returns a zero matrix with the same Rows() and Cols() as m.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New(m.Rows(), m.Cols(), 0)
}

// ---------- Operator aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// Shift is an alias for AddScalar: m + d.
func Shift(m *Matrix, d float64) (*Matrix, error) { return AddScalar(m, d) }

// ScaleBy is an alias for Scale: m * d.
func ScaleBy(m *Matrix, d float64) (*Matrix, error) { return Scale(m, d) }

// T is an alias for Transpose.
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }
