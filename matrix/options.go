// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for comparison and printing.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"math"

	"github.com/katalvlaran/rowmat/feq"
	"github.com/katalvlaran/rowmat/floatfmt"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance of Equal: cells compare with feq.EqualEps.
	DefaultEpsilon = feq.DefaultEpsilon

	// DefaultWidth is the per-cell field width used by String and Fprint.
	DefaultWidth = floatfmt.DefaultWidth
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicWidthInvalid   = "matrix: WithWidth: width must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps   float64 // >= 0; DefaultEpsilon
	width int     // >= 0; DefaultWidth (0 disables padding)
}

// WithEpsilon sets the tolerance used by Equal/NotEqual.
// Panics when eps is NaN, ±Inf or negative.
//
// Notes:
//   - eps = 0 makes Equal an exact comparison (NaN still never equals NaN).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithWidth sets the cell width used by Fprint. 0 prints the shortest
// representation with no padding. Panics when width < 0.
func WithWidth(width int) Option {
	if width < 0 {
		panic(panicWidthInvalid)
	}

	return func(o *Options) { o.width = width }
}

// NewOptions resolves opts over the defaults. Exposed so callers (e.g. CLIs)
// can inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the effective comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Width returns the effective cell width.
func (o Options) Width() int { return o.width }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon, width: DefaultWidth}
}

// gatherOptions applies user setters on top of defaults, in order.
// Nil setters are skipped so callers can pass conditional options.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
