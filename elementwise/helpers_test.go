// SPDX-License-Identifier: MIT

package elementwise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/elementwise"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

func num(v any) float64 {
	f, err := scalar.ToFloat64(v)
	if err != nil {
		panic(err)
	}

	return f
}

func truthy(v any) (any, error) { return scalar.Truthy(v) }

// Local operators, one per class, with direct scalar functions.
var (
	opOr = elementwise.Operator{
		Name: "or", Class: elementwise.Identity, Out: scalar.Bool, Keep: truthy,
		Fn: func(a, b any) (any, error) { return num(a) != 0 || num(b) != 0, nil },
	}
	opAnd = elementwise.Operator{
		Name: "and", Class: elementwise.ZeroPreserving, Out: scalar.Bool,
		Fn: func(a, b any) (any, error) { return num(a) != 0 && num(b) != 0, nil },
	}
	opAdd = elementwise.Operator{
		Name: "add", Class: elementwise.Identity, Out: scalar.Float64,
		Fn: func(a, b any) (any, error) { return num(a) + num(b), nil },
	}
	opSub = elementwise.Operator{
		Name: "subtract", Class: elementwise.General, Out: scalar.Float64,
		Fn: func(a, b any) (any, error) { return num(a) - num(b), nil },
	}
	opMul = elementwise.Operator{
		Name: "multiply", Class: elementwise.ZeroPreserving, Out: scalar.Float64,
		Fn: func(a, b any) (any, error) { return num(a) * num(b), nil },
	}
	opLarger = elementwise.Operator{
		Name: "larger", Class: elementwise.Full, Out: scalar.Bool,
		Fn: func(a, b any) (any, error) { return num(a) > num(b), nil },
	}
	opEqual = elementwise.Operator{
		Name: "equal", Class: elementwise.Full, Out: scalar.Bool,
		Fn: func(a, b any) (any, error) { return num(a) == num(b), nil },
	}
	opMod = elementwise.Operator{
		Name: "mod", Class: elementwise.LeftIdentity, Out: scalar.Float64,
		Fn: func(a, b any) (any, error) {
			x, y := num(a), num(b)
			if y == 0 {
				return x, nil
			}
			return x - y*float64(int(x/y)), nil
		},
	}
)

var allOps = []elementwise.Operator{opOr, opAnd, opAdd, opSub, opMul, opLarger, opEqual, opMod}

func sparseOf(t *testing.T, rows [][]float64) *matrix.Sparse {
	t.Helper()
	d, err := matrix.FromFloatRows(rows)
	require.NoError(t, err)
	s, err := matrix.SparseFromDense(d, nil)
	require.NoError(t, err)

	return s
}

func denseOf(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.FromFloatRows(rows)
	require.NoError(t, err)

	return d
}

// cellsOf densifies a result; unstored sparse cells become zero of the
// operator's result type so dense and sparse paths compare equal.
func cellsOf(t *testing.T, res any, out scalar.Type) []any {
	t.Helper()
	m, ok := res.(matrix.Matrix)
	require.True(t, ok, "result %T is not a matrix", res)
	d, err := matrix.AsDense(m)
	require.NoError(t, err)
	cells := append([]any(nil), d.Data()...)
	if s, ok := m.(*matrix.Sparse); ok {
		for i := 0; i < s.Rows(); i++ {
			for j := 0; j < s.Cols(); j++ {
				if !s.Has(i, j) {
					cells[i*s.Cols()+j] = scalar.Zero(out)
				}
			}
		}
	}

	return cells
}
