// SPDX-License-Identifier: MIT

// Package matrix - text rendering.
//
// Layout:
//
//	[[   r0c0    r0c1]
//	 [   r1c0    r1c1]]
//
//   - Each cell is floatfmt.Fixed(v, width), cells separated by one space.
//   - Rows after the first are prefixed with "\n " so brackets align.
//   - A matrix without rows prints "[]"; an empty row prints "[]".
//   - Every row prints its own length, so ragged matrices print faithfully.

package matrix

import (
	"io"
	"strings"

	"github.com/katalvlaran/rowmat/floatfmt"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtCellSep  = " "
	_fmtRowBreak = "\n "
)

// builder accumulates the rendered text.
type builder struct{ strings.Builder }

// row writes one bracketed row.
func (b *builder) row(r *Row, width int) {
	b.WriteString(_fmtOpen)
	for j, v := range r.data {
		if j > 0 {
			b.WriteString(_fmtCellSep)
		}
		b.WriteString(floatfmt.Fixed(v, width))
	}
	b.WriteString(_fmtClose)
}

// matrix writes the whole bracketed matrix. nil renders as "[]".
func (b *builder) matrix(m *Matrix, width int) {
	b.WriteString(_fmtOpen)
	for i := range rowsOf(m) {
		if i > 0 {
			b.WriteString(_fmtRowBreak)
		}
		b.row(&m.rows[i], width)
	}
	b.WriteString(_fmtClose)
}

// Sprint renders m with the given options (WithWidth).
func Sprint(m *Matrix, opts ...Option) string {
	var b builder
	b.matrix(m, gatherOptions(opts...).width)

	return b.String()
}

// Fprint writes the rendering of m to w. It returns the first write error.
func Fprint(w io.Writer, m *Matrix, opts ...Option) error {
	_, err := io.WriteString(w, Sprint(m, opts...))

	return err
}

// String implements fmt.Stringer using DefaultWidth.
func (m *Matrix) String() string { return Sprint(m) }
