// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions for kernels.
//   • Keep random data seeded so failures reproduce.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/rowmat/matrix"
	"github.com/stretchr/testify/require"
)

// approxTol is the tolerance used when comparing snapshots of computed matrices.
const approxTol = 1e-9

// MustNew allocates an r×c matrix filled with v or fails the test.
func MustNew(tb testing.TB, r, c int, v float64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(r, c, v)
	require.NoError(tb, err)

	return m
}

// MustAt reads m[i][j] or fails the test.
func MustAt(tb testing.TB, m *matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RequireSlices asserts that m holds want, cell by cell, within approxTol.
// The diff printed on failure comes from go-cmp.
func RequireSlices(tb testing.TB, want [][]float64, m *matrix.Matrix) {
	tb.Helper()
	require.NotNil(tb, m)
	got := m.ToSlices()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, approxTol), cmpopts.EquateEmpty()); diff != "" {
		tb.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// RandomMatrix returns an r×c matrix with entries in [-1, 1) drawn from rng.
func RandomMatrix(rng *rand.Rand, r, c int) *matrix.Matrix {
	data := make([][]float64, r)
	for i := range data {
		data[i] = make([]float64, c)
		for j := range data[i] {
			data[i][j] = rng.Float64()*2 - 1
		}
	}

	return matrix.FromRows(data)
}
