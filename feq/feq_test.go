// SPDX-License-Identifier: MIT

package feq_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rowmat/feq"
	"github.com/stretchr/testify/require"
)

func TestEqual_Exact(t *testing.T) {
	require.True(t, feq.Equal(0, 0))
	require.True(t, feq.Equal(-3.25, -3.25))
	require.True(t, feq.Equal(math.Inf(1), math.Inf(1)))
	require.True(t, feq.Equal(math.Inf(-1), math.Inf(-1)))
}

func TestEqual_NaNNeverEqual(t *testing.T) {
	nan := math.NaN()
	require.False(t, feq.Equal(nan, nan))
	require.False(t, feq.Equal(nan, 0))
	require.False(t, feq.Equal(1, nan))
}

func TestEqual_Infinities(t *testing.T) {
	require.False(t, feq.Equal(math.Inf(1), math.Inf(-1)))
	require.False(t, feq.Equal(math.Inf(1), math.MaxFloat64))
}

func TestEqual_AbsoluteNearZero(t *testing.T) {
	require.True(t, feq.Equal(0, 1e-10))
	require.True(t, feq.Equal(0.1+0.2, 0.3))
	require.False(t, feq.Equal(0, 1e-8))
}

func TestEqual_RelativeLargeMagnitude(t *testing.T) {
	// 1e12 apart by 1e-1 is a relative error of 1e-13.
	require.True(t, feq.Equal(1e12, 1e12+0.1))
	// 1e12 apart by 1e4 is a relative error of 1e-8.
	require.False(t, feq.Equal(1e12, 1e12+1e4))
}

func TestEqualEps_CustomTolerance(t *testing.T) {
	require.True(t, feq.EqualEps(1.0, 1.05, 0.1))
	require.False(t, feq.EqualEps(1.0, 1.05, 0.01))
	// Negative tolerance is normalized.
	require.True(t, feq.EqualEps(1.0, 1.05, -0.1))
	// Zero tolerance degenerates to exact comparison.
	require.False(t, feq.EqualEps(1.0, math.Nextafter(1.0, 2), 0))
}

func TestEqual_Symmetric(t *testing.T) {
	pairs := [][2]float64{
		{1, 1 + 1e-10},
		{1e9, 1e9 + 0.5},
		{-4, 4},
		{0, 5e-10},
	}
	for _, p := range pairs {
		require.Equal(t, feq.Equal(p[0], p[1]), feq.Equal(p[1], p[0]), "pair %v", p)
	}
}
