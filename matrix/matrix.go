// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage & safe accessors.
//
// Purpose:
//   - Own an ordered sequence of Row values; rows own their buffers.
//   - Expose bounds-checked row and cell access that returns ErrOutOfRange.
//   - Keep shape queries O(1): Rows() is the row count, Cols() is the length
//     of row 0 (0 when there are no rows).
//
// Rectangularity is a caller-maintained invariant at construction time:
// FromRows copies ragged input as-is. Operators that need a rectangular
// operand validate it (ValidateRectangular) and return ErrRaggedRows.
//
// Complexity quicksheet:
//   - New/FromRows/Clone/ToSlices: O(r*c); Row/At/Set/Rows/Cols: O(1);
//     IsRectangular: O(r).

package matrix

import "fmt"

// matrixAccessErrorf wraps err with Matrix method context and coordinates.
func matrixAccessErrorf(method string, coords string, err error) error {
	return fmt.Errorf("Matrix.%s(%s): %w", method, coords, err)
}

// Matrix is a dense matrix stored as a slice of owned rows.
// The zero value is a valid 0×0 matrix.
type Matrix struct {
	rows []Row // row i is rows[i]; the slice is never resized after construction
}

var _ fmt.Stringer = (*Matrix)(nil)

// New returns a rows×cols matrix with every element equal to init.
// Returns ErrInvalidDimensions when rows < 0 or cols < 0.
// Complexity: O(rows*cols).
func New(rows, cols int, init float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	m := &Matrix{rows: make([]Row, rows)}
	for i := range m.rows {
		m.rows[i].data = filled(cols, init)
	}

	return m, nil
}

// FromRows builds a matrix with one Row per inner slice, copying values in
// order. No length normalization is performed.
// Complexity: O(total elements).
func FromRows(data [][]float64) *Matrix {
	m := &Matrix{rows: make([]Row, len(data))}
	for i, values := range data {
		m.rows[i].data = make([]float64, len(values))
		copy(m.rows[i].data, values)
	}

	return m
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the column count of row 0, or 0 if there are no rows.
// On a ragged matrix this may not describe the other rows.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}

	return len(m.rows[0].data)
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Row returns a reference to row i. Mutations through it are visible in m.
// Returns ErrOutOfRange when i is outside [0, Rows()).
func (m *Matrix) Row(i int) (*Row, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, matrixAccessErrorf(ctxRow, fmt.Sprint(i), ErrOutOfRange)
	}

	return &m.rows[i], nil
}

// At returns element (i, j). Either index being out of range yields ErrOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) {
	r, err := m.Row(i)
	if err != nil {
		return 0, err
	}
	v, err := r.At(j)
	if err != nil {
		return 0, matrixAccessErrorf(ctxAt, fmt.Sprintf("%d,%d", i, j), err)
	}

	return v, nil
}

// Set assigns v at (i, j) in place. Either index being out of range yields ErrOutOfRange.
func (m *Matrix) Set(i, j int, v float64) error {
	r, err := m.Row(i)
	if err != nil {
		return err
	}
	if err = r.Set(j, v); err != nil {
		return matrixAccessErrorf(ctxSet, fmt.Sprintf("%d,%d", i, j), err)
	}

	return nil
}

// IsRectangular reports whether every row has the length of row 0.
// Complexity: O(r).
func (m *Matrix) IsRectangular() bool {
	c := m.Cols()
	for i := range m.rows {
		if len(m.rows[i].data) != c {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of m. The returned matrix shares no storage.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: make([]Row, len(m.rows))}
	for i := range m.rows {
		out.rows[i].data = m.rows[i].Values()
	}

	return out
}

// ToSlices returns a copy of the contents as nested slices (row-major).
func (m *Matrix) ToSlices() [][]float64 {
	out := make([][]float64, len(m.rows))
	for i := range m.rows {
		out[i] = m.rows[i].Values()
	}

	return out
}
