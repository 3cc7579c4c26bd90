// SPDX-License-Identifier: MIT

package elementwise

import (
	"fmt"
	"log/slog"
	"reflect"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmatrix/kernel"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// Operator is a binary elementwise operator as seen by the engine.
type Operator struct {
	// Name identifies the operator in dispatch and in error messages.
	Name string

	// Class is the zero-behavior class; it drives kernel selection.
	Class ZeroClass

	// Fn, when set, is used for every element and Dispatch is ignored.
	Fn scalar.Func

	// Out is the declared result tag of Fn (scalar.Mixed when unknown).
	Out scalar.Type

	// Dispatch resolves a kernel by the operands' type tags.
	Dispatch scalar.Dispatcher

	// Keep normalizes values copied without calling f (Identity and
	// LeftIdentity kernels). Nil copies them unchanged.
	Keep func(any) (any, error)

	// Block is an optional float64 block kernel for the dense paths.
	Block func(dst, a, b []float64)
}

// operand is a classified Apply argument.
type operand struct {
	format Format
	m      matrix.Matrix // *matrix.Dense or *matrix.Sparse; nil for scalars
	value  any           // canonical scalar value
	tag    scalar.Type
	plain  bool // converted from a Go slice
	vector bool // converted from a 1-D Go slice
}

// operandValue returns what the kernels receive.
func (o operand) operandValue() any {
	if o.format == FormatScalar {
		return o.value
	}

	return o.m
}

// Apply evaluates op elementwise over a and b.
//
// MAIN DESCRIPTION:
//   - Accepts scalars, *matrix.Dense, *matrix.Sparse, any other matrix.Matrix,
//     gonum mat.Matrix values and plain Go slices ([]any, [][]any,
//     []float64, [][]float64) in any combination.
//   - Picks the storage-format-specific kernel from op.Class and the operand
//     formats, so sparse operands are never densified unless the operator
//     forces it.
//
// Implementation:
//   - Stage 1: classify and convert operands (slices and gonum matrices
//     become *matrix.Dense).
//   - Stage 2: validate shapes; equal, or broadcastable along singleton
//     dimensions; otherwise matrix.ErrDimensionMismatch before any work.
//   - Stage 3: bind the scalar kernel once (op.Fn, or op.Dispatch via
//     scalar.Bind).
//   - Stage 4: select the kernel, run it, convert the result back.
//
// Behavior highlights:
//   - The result datatype is stamped only when both operands share the same
//     concrete tag; the stamped tag is the kernel's declared result tag.
//   - When every matrix operand was a plain Go slice the result is returned
//     as [][]any ([]any for 1-D input); scalar × scalar returns the scalar.
//
// Errors:
//   - ErrNilOperand, ErrUnsupportedOperand, ErrUnsupportedCombination,
//     matrix.ErrDimensionMismatch, scalar.ErrKernelNotFound, and any error
//     returned by the scalar kernel, each wrapped with op.Name.
//
// Complexity:
//   - See the selected kernel; conversions of plain inputs add O(r*c).
func Apply(op Operator, a, b any, opts ...Option) (any, error) {
	o := gatherOptions(opts...)
	name := op.Name
	if name == "" {
		name = "apply"
	}

	// Stage 1: classify.
	la, err := classify(a)
	if err != nil {
		return nil, applyErrorf(name, err)
	}
	lb, err := classify(b)
	if err != nil {
		return nil, applyErrorf(name, err)
	}

	// Stage 2: shapes.
	if la.m != nil && lb.m != nil {
		if err = broadcast(&la, &lb); err != nil {
			return nil, applyErrorf(name, err)
		}
	}

	// Stage 3: scalar kernel.
	fn, out, err := bind(op, name, la.tag, lb.tag)
	if err != nil {
		return nil, applyErrorf(name, err)
	}

	// Stage 4: select and run.
	k, err := selectKernel(op.Class, la.format, lb.format, o)
	if err != nil {
		return nil, applyErrorf(name, err)
	}
	shared := scalar.Unify(la.tag, lb.tag)
	cfg := &kernel.Config{
		Zero:      scalar.Zero(shared),
		IsZero:    o.tolerance().IsZero,
		Keep:      op.Keep,
		Block:     op.Block,
		Workspace: o.workspace,
	}
	if shared != scalar.Mixed {
		cfg.DataType = out
	}

	o.logger.With(slog.String("component", "elementwise")).Debug("apply",
		slog.String("op", name),
		slog.String("class", op.Class.String()),
		slog.String("left", la.format.String()),
		slog.String("right", lb.format.String()),
		slog.String("kernel", k.Name),
		slog.String("datatype", cfg.DataType.String()),
	)

	res, err := k.Apply(la.operandValue(), lb.operandValue(), fn, cfg)
	if err != nil {
		return nil, applyErrorf(name, err)
	}

	return convertBack(res, la, lb)
}

// classify converts an Apply argument into an operand.
func classify(x any) (operand, error) {
	switch v := x.(type) {
	case nil:
		return operand{}, ErrNilOperand
	case *matrix.Dense:
		if v == nil {
			return operand{}, ErrNilOperand
		}
		return operand{format: FormatDense, m: v, tag: v.DataType()}, nil
	case *matrix.Sparse:
		if v == nil {
			return operand{}, ErrNilOperand
		}
		return operand{format: FormatSparse, m: v, tag: v.DataType()}, nil
	case matrix.Matrix:
		d, err := matrix.AsDense(v)
		if err != nil {
			return operand{}, err
		}
		return operand{format: FormatDense, m: d, tag: d.DataType()}, nil
	case mat.Matrix:
		d, err := matrix.FromGonum(v)
		if err != nil {
			return operand{}, err
		}
		return operand{format: FormatDense, m: d, tag: d.DataType()}, nil
	case [][]any:
		return plainOperand(matrix.FromRows(v))
	case [][]float64:
		return plainOperand(matrix.FromFloatRows(v))
	case []any:
		op, err := plainOperand(matrix.FromVector(v))
		op.vector = true
		return op, err
	case []float64:
		op, err := plainOperand(matrix.FromFloats(v))
		op.vector = true
		return op, err
	}

	switch reflect.TypeOf(x).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.Func:
		return operand{}, fmt.Errorf("%T: %w", x, ErrUnsupportedOperand)
	}
	c := scalar.Canonical(x)
	tag := scalar.TypeOf(c)
	if tag == scalar.Other {
		tag = scalar.Mixed
	}

	return operand{format: FormatScalar, value: c, tag: tag}, nil
}

func plainOperand(d *matrix.Dense, err error) (operand, error) {
	if err != nil {
		return operand{}, err
	}

	return operand{format: FormatDense, m: d, tag: d.DataType(), plain: true}, nil
}

// broadcast validates the shapes of two matrix operands and stretches
// singleton dimensions in place.
func broadcast(a, b *operand) error {
	r, c, stretched, err := matrix.BroadcastShape(a.m.Rows(), a.m.Cols(), b.m.Rows(), b.m.Cols())
	if err != nil {
		return err
	}
	if !stretched {
		return nil
	}
	if a.m, err = matrix.BroadcastTo(a.m, r, c); err != nil {
		return err
	}
	if b.m, err = matrix.BroadcastTo(b.m, r, c); err != nil {
		return err
	}
	// A stretched vector is a matrix now.
	a.vector, b.vector = a.vector && r == 1, b.vector && r == 1

	return nil
}

// bind resolves the scalar kernel for the operand tags. Heterogeneous tags
// bind lazily (one resolution per runtime type pair), so substituted zeros
// never reach a kernel resolved for another signature.
func bind(op Operator, name string, at, bt scalar.Type) (scalar.Func, scalar.Type, error) {
	if op.Fn != nil {
		return op.Fn, op.Out, nil
	}
	if op.Dispatch == nil {
		return nil, scalar.Mixed, fmt.Errorf("no scalar kernel: %w", ErrUnsupportedCombination)
	}
	if scalar.Unify(at, bt) == scalar.Mixed {
		at, bt = scalar.Mixed, scalar.Mixed
	}

	return scalar.Bind(op.Dispatch, name, at, bt)
}

// convertBack returns the result in the caller's representation.
func convertBack(res any, a, b operand) (any, error) {
	m, ok := res.(matrix.Matrix)
	if !ok {
		return res, nil // scalar × scalar
	}
	plain := (a.m == nil || a.plain) && (b.m == nil || b.plain)
	if !plain {
		return m, nil
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, err
	}
	vector := (a.m == nil || a.vector) && (b.m == nil || b.vector)
	if vector {
		return d.ToVector(), nil
	}

	return d.ToRows(), nil
}
