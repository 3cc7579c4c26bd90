// SPDX-License-Identifier: MIT

// Package elementwise - algorithm selection.
//
// Selection table (left, right): D = dense, S = sparse, s = scalar.
//
//	class          | D,D   | D,S / S,D             | S,S              | S,s / s,S                  | D,s / s,D
//	---------------+-------+-----------------------+------------------+----------------------------+-------------
//	Identity       | dense | overlay               | union            | background check           | dense-scalar
//	ZeroPreserving | dense | mask                  | intersect        | mask                       | dense-scalar
//	General        | dense | full                  | union-zero       | background check           | dense-scalar
//	Full           | dense | full                  | full             | full                       | dense-scalar
//	LeftIdentity   | dense | D,S overlay; S,D mask | left             | S,s mask; s,S background   | dense-scalar
//
// s,s calls f once. Full on S,S yields a dense result unless
// WithSparseStorage is given.

package elementwise

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/kernel"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// runFunc is the uniform signature every selected kernel is adapted to.
type runFunc func(a, b any, fn scalar.Func, cfg *kernel.Config) (any, error)

// Kernel is a selected algorithm, bound to the operand formats it was
// selected for.
type Kernel struct {
	Name  string
	Class ZeroClass
	Left  Format
	Right Format
	run   runFunc
}

// Apply runs the kernel. a and b must match k.Left and k.Right:
// *matrix.Dense, *matrix.Sparse or a canonical scalar value.
//
// Errors:
//   - ErrUnsupportedOperand when an operand does not match its format,
//   - ErrUnsupportedCombination for a zero Kernel,
//   - any kernel error (matrix.ErrDimensionMismatch, scalar kernel errors).
func (k Kernel) Apply(a, b any, fn scalar.Func, cfg *kernel.Config) (any, error) {
	if k.run == nil {
		return nil, ErrUnsupportedCombination
	}
	if fn == nil {
		return nil, fmt.Errorf("%s: nil scalar kernel: %w", k.Name, ErrUnsupportedCombination)
	}

	return k.run(a, b, fn, cfg)
}

// Select returns the kernel for an operator class and two operand formats.
// Errors: ErrUnsupportedCombination for an unknown class or format.
// Complexity: O(1).
func Select(class ZeroClass, left, right Format, opts ...Option) (Kernel, error) {
	return selectKernel(class, left, right, gatherOptions(opts...))
}

func selectKernel(class ZeroClass, left, right Format, o Options) (Kernel, error) {
	if class < Identity || class > LeftIdentity || !validFormat(left) || !validFormat(right) {
		return Kernel{}, fmt.Errorf("Select(%s, %s, %s): %w", class, left, right, ErrUnsupportedCombination)
	}

	k := Kernel{Class: class, Left: left, Right: right}
	switch {
	case left == FormatScalar && right == FormatScalar:
		k.Name, k.run = "scalar", runScalar

	case left == FormatDense && right == FormatDense:
		k.Name, k.run = "dense-dense", runDenseDense

	case left == FormatDense && right == FormatScalar, left == FormatScalar && right == FormatDense:
		k.Name, k.run = "dense-scalar", denseScalarRun(left == FormatScalar)

	case left == FormatSparse && right == FormatSparse:
		k.Name, k.run = selectSparseSparse(class, o.sparseStorage)

	case left == FormatScalar || right == FormatScalar:
		k.Name, k.run = selectSparseScalar(class, left == FormatScalar)

	default:
		k.Name, k.run = selectDenseSparse(class, left == FormatSparse)
	}

	return k, nil
}

func validFormat(f Format) bool {
	return f == FormatScalar || f == FormatDense || f == FormatSparse
}

func selectSparseSparse(class ZeroClass, sparseStorage bool) (string, runFunc) {
	switch class {
	case Identity:
		return "sparse-union", sparseSparseRun(kernel.SparseUnion)
	case ZeroPreserving:
		return "sparse-intersect", sparseSparseRun(kernel.SparseIntersect)
	case General:
		return "sparse-union-zero", sparseSparseRun(kernel.SparseUnionZero)
	case LeftIdentity:
		return "sparse-left", sparseSparseRun(kernel.SparseLeft)
	default: // Full
		if sparseStorage {
			return "sparse-full-sparse", sparseSparseRun(kernel.SparseFullSparse)
		}
		return "sparse-full", sparseSparseRun(kernel.SparseFull)
	}
}

// selectDenseSparse picks the dense × sparse kernel; sparseLeft marks the
// S,D orientation.
func selectDenseSparse(class ZeroClass, sparseLeft bool) (string, runFunc) {
	switch {
	case class == Identity, class == LeftIdentity && !sparseLeft:
		return "dense-sparse-overlay", denseSparseRun(kernel.DenseSparseOverlay, sparseLeft)
	case class == ZeroPreserving, class == LeftIdentity && sparseLeft:
		return "dense-sparse-mask", denseSparseRun(kernel.DenseSparseMask, sparseLeft)
	default: // General, Full
		return "dense-sparse-full", denseSparseRun(kernel.DenseSparseFull, sparseLeft)
	}
}

// selectSparseScalar picks the sparse × scalar kernel; scalarLeft marks the
// s,S orientation.
func selectSparseScalar(class ZeroClass, scalarLeft bool) (string, runFunc) {
	switch {
	case class == ZeroPreserving, class == LeftIdentity && !scalarLeft:
		return "sparse-scalar-mask", sparseScalarRun(kernel.SparseScalarMask, scalarLeft)
	case class == Full:
		return "sparse-scalar-full", sparseScalarRun(kernel.SparseScalarFull, scalarLeft)
	default: // Identity, General, LeftIdentity s,S
		return "sparse-scalar", sparseScalarRun(kernel.SparseScalar, scalarLeft)
	}
}

// ---------- adapters to runFunc ----------

func runScalar(a, b any, fn scalar.Func, _ *kernel.Config) (any, error) {
	return fn(a, b)
}

func runDenseDense(a, b any, fn scalar.Func, cfg *kernel.Config) (any, error) {
	da, ok := a.(*matrix.Dense)
	db, ok2 := b.(*matrix.Dense)
	if !ok || !ok2 {
		return nil, operandError("dense-dense", a, b)
	}

	return unwrap(kernel.DenseDense(da, db, fn, cfg))
}

func denseScalarRun(scalarLeft bool) runFunc {
	return func(a, b any, fn scalar.Func, cfg *kernel.Config) (any, error) {
		m, c := a, b
		if scalarLeft {
			m, c = b, a
		}
		d, ok := m.(*matrix.Dense)
		if !ok {
			return nil, operandError("dense-scalar", a, b)
		}

		return unwrap(kernel.DenseScalar(d, c, fn, scalarLeft, cfg))
	}
}

func sparseSparseRun[R matrix.Matrix](f func(a, b *matrix.Sparse, fn scalar.Func, cfg *kernel.Config) (R, error)) runFunc {
	return func(a, b any, fn scalar.Func, cfg *kernel.Config) (any, error) {
		sa, ok := a.(*matrix.Sparse)
		sb, ok2 := b.(*matrix.Sparse)
		if !ok || !ok2 {
			return nil, operandError("sparse-sparse", a, b)
		}

		return unwrap(f(sa, sb, fn, cfg))
	}
}

func denseSparseRun[R matrix.Matrix](
	f func(d *matrix.Dense, s *matrix.Sparse, fn scalar.Func, inverse bool, cfg *kernel.Config) (R, error),
	sparseLeft bool,
) runFunc {
	return func(a, b any, fn scalar.Func, cfg *kernel.Config) (any, error) {
		x, y := a, b
		if sparseLeft {
			x, y = b, a
		}
		d, ok := x.(*matrix.Dense)
		s, ok2 := y.(*matrix.Sparse)
		if !ok || !ok2 {
			return nil, operandError("dense-sparse", a, b)
		}

		return unwrap(f(d, s, fn, sparseLeft, cfg))
	}
}

func sparseScalarRun[R matrix.Matrix](
	f func(s *matrix.Sparse, c any, fn scalar.Func, inverse bool, cfg *kernel.Config) (R, error),
	scalarLeft bool,
) runFunc {
	return func(a, b any, fn scalar.Func, cfg *kernel.Config) (any, error) {
		m, c := a, b
		if scalarLeft {
			m, c = b, a
		}
		s, ok := m.(*matrix.Sparse)
		if !ok {
			return nil, operandError("sparse-scalar", a, b)
		}

		return unwrap(f(s, c, fn, scalarLeft, cfg))
	}
}

// unwrap drops typed-nil results so callers never see a non-nil interface
// holding a nil pointer.
func unwrap[R matrix.Matrix](r R, err error) (any, error) {
	if err != nil {
		return nil, err
	}

	return r, nil
}

func operandError(kernelName string, a, b any) error {
	return fmt.Errorf("%s: operands %T, %T: %w", kernelName, a, b, ErrUnsupportedOperand)
}
