// SPDX-License-Identifier: MIT

// Package elementwise: functional configuration for Apply and Select.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state besides slog.Default().
//   - No dead switches: each option changes what Apply does and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Tolerances drive the zero test used to prune sparse results; they do
//     not change the scalar kernels (comparison operators carry their own).
//   - Storage preference only matters where a kernel has a choice: the Full
//     class on two sparse operands.
package elementwise

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/lvmatrix/kernel"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTol is the relative tolerance of the zero test.
	DefaultRelTol = scalar.DefaultRelTol

	// DefaultAbsTol is the absolute tolerance of the zero test.
	DefaultAbsTol = scalar.DefaultAbsTol

	// DefaultSparseStorage selects a dense result for Full-class sparse × sparse
	// operations (every cell is typically non-zero there).
	DefaultSparseStorage = false
)

// ---------- Panic messages ----------

const (
	panicRelTolInvalid = "elementwise: WithRelTol requires a finite value >= 0"
	panicAbsTolInvalid = "elementwise: WithAbsTol requires a finite value >= 0"
	panicNilLogger     = "elementwise: WithLogger requires a non-nil logger"
)

// Option mutates Options; constructors validate eagerly.
type Option func(*Options)

// Options is the resolved per-call configuration. Fields are unexported;
// use the WithX constructors.
type Options struct {
	relTol        float64
	absTol        float64
	sparseStorage bool
	logger        *slog.Logger
	workspace     *kernel.Workspace
}

// WithRelTol sets the relative tolerance of the zero test.
// Panics when tol is negative, NaN or infinite.
func WithRelTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = tol }
}

// WithAbsTol sets the absolute tolerance of the zero test.
// Panics when tol is negative, NaN or infinite.
func WithAbsTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.absTol = tol }
}

// WithSparseStorage requests a sparse result where the kernel can produce
// either (Full class, two sparse operands).
func WithSparseStorage() Option {
	return func(o *Options) { o.sparseStorage = true }
}

// WithDenseStorage restores the default dense result for that case.
func WithDenseStorage() Option {
	return func(o *Options) { o.sparseStorage = false }
}

// WithLogger routes the per-call debug record to l.
// Panics on a nil logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithWorkspace reuses ws for the column scatter state instead of allocating
// one per call. ws must not be shared by concurrent calls.
func WithWorkspace(ws *kernel.Workspace) Option {
	return func(o *Options) { o.workspace = ws }
}

// gatherOptions applies user setters on top of the defaults, last writer wins.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		relTol:        DefaultRelTol,
		absTol:        DefaultAbsTol,
		sparseStorage: DefaultSparseStorage,
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// tolerance returns the zero-test policy of o.
func (o Options) tolerance() scalar.Tolerance {
	return scalar.Tolerance{RelTol: o.relTol, AbsTol: o.absTol}
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
