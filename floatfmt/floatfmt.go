// SPDX-License-Identifier: MIT

// Package floatfmt renders float64 values as fixed-width text for tabular
// output (matrix printing).
//
// Rendering rule:
//   - Start from the shortest %g representation that round-trips.
//   - If it is wider than the requested width, lower the %g precision one digit
//     at a time until it fits, stopping at a single significant digit.
//   - Right-align the result in a field of the requested width.
//
// A value that cannot fit even at one digit (e.g. "-1e+100" in width 4) is
// returned unpadded rather than truncated, so no information is hidden.
package floatfmt

import (
	"strconv"
	"strings"
)

// DefaultWidth is the cell width used by matrix printing.
const DefaultWidth = 8

// Fixed returns v rendered right-aligned in a field of width characters.
// width <= 0 disables padding and returns the shortest representation.
// Complexity: O(width) per call.
func Fixed(v float64, width int) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if width <= 0 {
		return s
	}

	// Shrink precision until the text fits.
	for prec := width - 1; len(s) > width && prec >= 1; prec-- {
		s = strconv.FormatFloat(v, 'g', prec, 64)
	}

	return pad(s, width)
}

// pad right-aligns s within width using spaces.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", width-len(s)) + s
}

// Formatter adapts a value to fmt.Stringer with a fixed width, handy with
// fmt.Fprint when building larger layouts.
type Formatter struct {
	Value float64
	Width int
}

// String implements fmt.Stringer.
func (f Formatter) String() string { return Fixed(f.Value, f.Width) }
