// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// Config carries the per-call policy shared by all kernels.
// A nil *Config is valid and means "all defaults".
type Config struct {
	// Zero is the structural zero substituted for missing operands.
	// Nil means float64(0).
	Zero any

	// IsZero decides which computed values a sparse result drops.
	// Nil means scalar.DefaultTolerance.IsZero.
	IsZero func(any) bool

	// Keep normalizes single-sided values copied without calling f
	// (Identity-class union, left-pattern and overlay kernels). Nil copies.
	Keep func(any) (any, error)

	// DataType is stamped on the result. scalar.Mixed when unknown.
	DataType scalar.Type

	// Block is an optional float64 block kernel: dst[k] = f(a[k], b[k]).
	// Used by the dense kernels when both operands are float64-tagged.
	Block func(dst, a, b []float64)

	// Workspace is reused when non-nil; otherwise each call allocates one.
	Workspace *Workspace
}

func (c *Config) zero() any {
	if c == nil || c.Zero == nil {
		return float64(0)
	}

	return c.Zero
}

func (c *Config) isZero(v any) bool {
	if c == nil || c.IsZero == nil {
		return scalar.DefaultTolerance.IsZero(v)
	}

	return c.IsZero(v)
}

func (c *Config) keep(v any) (any, error) {
	if c == nil || c.Keep == nil {
		return v, nil
	}

	return c.Keep(v)
}

func (c *Config) dataType() scalar.Type {
	if c == nil {
		return scalar.Mixed
	}

	return c.DataType
}

func (c *Config) block() func(dst, a, b []float64) {
	if c == nil {
		return nil
	}

	return c.Block
}

// workspace returns the configured workspace grown to rows, or a fresh one.
func (c *Config) workspace(rows int) *Workspace {
	if c == nil || c.Workspace == nil {
		return NewWorkspace(rows)
	}
	c.Workspace.Grow(rows)

	return c.Workspace
}

// call applies fn in the requested orientation.
func call(fn scalar.Func, x, y any, inverse bool) (any, error) {
	if inverse {
		return fn(y, x)
	}

	return fn(x, y)
}

// kernelErrorf wraps err with a kernel tag, preserving the sentinel.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkSparseSparse validates operands of the sparse × sparse kernels and
// reports whether both are pattern matrices.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrPatternMatrix (exactly one pattern).
func checkSparseSparse(tag string, a, b *matrix.Sparse) (bool, error) {
	if a == nil || b == nil {
		return false, kernelErrorf(tag, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return false, kernelErrorf(tag, err)
	}
	if a.IsPattern() != b.IsPattern() {
		return false, kernelErrorf(tag, matrix.ErrPatternMatrix)
	}

	return a.IsPattern(), nil
}

// checkValued rejects pattern operands for kernels that need values.
func checkValued(tag string, s *matrix.Sparse) error {
	if s == nil {
		return kernelErrorf(tag, matrix.ErrNilMatrix)
	}
	if s.IsPattern() {
		return kernelErrorf(tag, matrix.ErrPatternMatrix)
	}

	return nil
}
