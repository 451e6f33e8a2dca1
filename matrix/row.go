// SPDX-License-Identifier: MIT

// Package matrix - Row storage & safe accessors.
//
// Purpose:
//   - Own one contiguous buffer of float64 values per matrix row.
//   - Guarantee safety at the public surface: At/Set/Ref return ErrOutOfRange
//     instead of panicking.
//
// A Row has no arithmetic of its own; every operator lives at the Matrix level
// and is built on these accessors.
//
// Complexity quicksheet:
//   - NewRow/RowOf/Clone: O(n); At/Set/Ref/Len: O(1).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRef = "Ref"
	ctxRow = "Row"
)

// rowErrorf wraps err with Row method context and the offending index.
func rowErrorf(method string, i int, err error) error {
	return fmt.Errorf("Row.%s(%d): %w", method, i, err)
}

// Row is a fixed-length, mutable-in-place sequence of float64 values.
// The zero value is an empty row.
type Row struct {
	data []float64 // owned storage; never shared with callers
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Row)(nil)

// NewRow returns a row of size elements, all equal to init.
// Returns ErrInvalidDimensions when size < 0.
// Complexity: O(size).
func NewRow(size int, init float64) (*Row, error) {
	if size < 0 {
		return nil, fmt.Errorf("NewRow(%d): %w", size, ErrInvalidDimensions)
	}

	return &Row{data: filled(size, init)}, nil
}

// RowOf returns a row holding a copy of values, in order.
// Complexity: O(len(values)).
func RowOf(values ...float64) *Row {
	data := make([]float64, len(values))
	copy(data, values)

	return &Row{data: data}
}

// filled allocates n values set to init. make() zero-fills, so init==0 skips the loop.
func filled(n int, init float64) []float64 {
	data := make([]float64, n)
	if init != 0 {
		for i := range data {
			data[i] = init
		}
	}

	return data
}

// Len returns the number of elements. Complexity: O(1).
func (r *Row) Len() int { return len(r.data) }

// Columns is an alias of Len, read from the matrix point of view.
func (r *Row) Columns() int { return len(r.data) }

// check validates 0 ≤ i < Len() and wraps ErrOutOfRange with method context.
func (r *Row) check(method string, i int) error {
	if i < 0 || i >= len(r.data) {
		return rowErrorf(method, i, ErrOutOfRange)
	}

	return nil
}

// At returns element i or ErrOutOfRange.
// Complexity: O(1).
func (r *Row) At(i int) (float64, error) {
	if err := r.check(ctxAt, i); err != nil {
		return 0, err
	}

	return r.data[i], nil
}

// Set writes v into element i in place, or returns ErrOutOfRange.
// Complexity: O(1).
func (r *Row) Set(i int, v float64) error {
	if err := r.check(ctxSet, i); err != nil {
		return err
	}
	r.data[i] = v

	return nil
}

// Ref returns a pointer to element i for in-place updates such as *p += x.
// The pointer stays valid for the lifetime of the row; rows never reallocate.
// Returns ErrOutOfRange for an invalid index.
func (r *Row) Ref(i int) (*float64, error) {
	if err := r.check(ctxRef, i); err != nil {
		return nil, err
	}

	return &r.data[i], nil
}

// Values returns a copy of the row contents.
func (r *Row) Values() []float64 {
	out := make([]float64, len(r.data))
	copy(out, r.data)

	return out
}

// Clone returns a deep copy that shares no storage with r.
func (r *Row) Clone() *Row { return RowOf(r.data...) }

// String renders the row as "[v0 v1 ...]" using the default cell width.
func (r *Row) String() string {
	var sb builder
	sb.row(r, DefaultWidth)

	return sb.String()
}
