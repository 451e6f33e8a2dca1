// SPDX-License-Identifier: MIT

package floatfmt_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/rowmat/floatfmt"
	"github.com/stretchr/testify/require"
)

func TestFixed_PadsToWidth(t *testing.T) {
	cases := []struct {
		v     float64
		width int
		want  string
	}{
		{1, 8, "       1"},
		{-2.5, 8, "    -2.5"},
		{0, 8, "       0"},
		{123456, 8, "  123456"},
		{3.75, 4, "3.75"},
		{7, 1, "7"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, floatfmt.Fixed(tc.v, tc.width), "v=%v width=%d", tc.v, tc.width)
	}
}

func TestFixed_ShrinksPrecision(t *testing.T) {
	// Shortest form is 0.30000000000000004.
	require.Equal(t, "     0.3", floatfmt.Fixed(0.1+0.2, 8))

	got := floatfmt.Fixed(123456789, 8)
	require.Len(t, got, 8)
	require.Equal(t, "1.23e+08", got)

	got = floatfmt.Fixed(math.Pi, 8)
	require.Equal(t, "3.141593", got)
}

func TestFixed_NoPadding(t *testing.T) {
	require.Equal(t, "0.30000000000000004", floatfmt.Fixed(0.1+0.2, 0))
	require.Equal(t, "-1", floatfmt.Fixed(-1, -5))
}

func TestFixed_TooWideIsNotTruncated(t *testing.T) {
	got := floatfmt.Fixed(-1e100, 4)
	require.Equal(t, "-1e+100", got)
}

func TestFixed_SpecialValues(t *testing.T) {
	require.Equal(t, "    +Inf", floatfmt.Fixed(math.Inf(1), 8))
	require.Equal(t, "    -Inf", floatfmt.Fixed(math.Inf(-1), 8))
	require.Equal(t, "     NaN", floatfmt.Fixed(math.NaN(), 8))
}

func TestFormatter_Stringer(t *testing.T) {
	f := floatfmt.Formatter{Value: 4, Width: 3}
	require.Equal(t, "  4", fmt.Sprint(f))
}
