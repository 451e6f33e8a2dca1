// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rowmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewRow_Fill verifies size and fill value.
func TestNewRow_Fill(t *testing.T) {
	r, err := matrix.NewRow(4, 2.5)
	require.NoError(t, err)
	require.Equal(t, 4, r.Len())
	require.Equal(t, 4, r.Columns())
	require.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, r.Values())

	z, err := matrix.NewRow(3, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, z.Values())
}

// TestNewRow_Empty ensures zero-length rows are legal.
func TestNewRow_Empty(t *testing.T) {
	r, err := matrix.NewRow(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, r.Len())

	_, err = r.At(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNewRow_Negative ensures negative sizes are rejected.
func TestNewRow_Negative(t *testing.T) {
	_, err := matrix.NewRow(-1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowOf_CopiesInput ensures the literal list is copied, not aliased.
func TestRowOf_CopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	r := matrix.RowOf(src...)
	src[0] = 99

	v, err := r.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestRow_AtSetOutOfRange(t *testing.T) {
	r := matrix.RowOf(1, 2, 3)

	_, err := r.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.EqualError(t, err, "Row.At(3): matrix: index out of range")

	_, err = r.At(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, r.Set(3, 0), matrix.ErrOutOfRange)

	_, err = r.Ref(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestRow_SetAndRef(t *testing.T) {
	r := matrix.RowOf(1, 2, 3)
	require.NoError(t, r.Set(1, 20))

	p, err := r.Ref(2)
	require.NoError(t, err)
	*p += 0.5

	require.Equal(t, []float64{1, 20, 3.5}, r.Values())
}

// TestRow_CloneIndependence ensures Clone and Values never share storage.
func TestRow_CloneIndependence(t *testing.T) {
	r := matrix.RowOf(1, 2)
	c := r.Clone()
	require.NoError(t, c.Set(0, 7))

	vals := r.Values()
	vals[1] = 42

	require.Equal(t, []float64{1, 2}, r.Values())
	require.Equal(t, []float64{7, 2}, c.Values())
}

func TestRow_String(t *testing.T) {
	require.Equal(t, "[       1        2]", matrix.RowOf(1, 2).String())
	require.Equal(t, "[]", matrix.RowOf().String())
}
