// SPDX-License-Identifier: MIT

package kernel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

var errBoom = errors.New("boom")

// Scalar functions used across the kernel tests. Inputs are float64 or bool.

func num(v any) float64 {
	f, err := scalar.ToFloat64(v)
	if err != nil {
		panic(err)
	}

	return f
}

func add(a, b any) (any, error) { return num(a) + num(b), nil }
func sub(a, b any) (any, error) { return num(a) - num(b), nil }
func mul(a, b any) (any, error) { return num(a) * num(b), nil }
func or(a, b any) (any, error)  { return num(a) != 0 || num(b) != 0, nil }
func and(a, b any) (any, error) { return num(a) != 0 && num(b) != 0, nil }
func gt(a, b any) (any, error)  { return num(a) > num(b), nil }
func eq(a, b any) (any, error)  { return num(a) == num(b), nil }
func fail(a, b any) (any, error) {
	return nil, errBoom
}

// leftMod is x mod y with mod(x, 0) == x (LeftIdentity class).
func leftMod(a, b any) (any, error) {
	x, y := num(a), num(b)
	if y == 0 {
		return x, nil
	}

	return x - y*float64(int(x/y)), nil
}

func truthy(v any) (any, error) { return scalar.Truthy(v) }

// sparseOf compresses float rows into CSC.
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

// reverseColumns rewrites s with every column's row order reversed, so
// kernels see unsorted row indices.
func reverseColumns(t *testing.T, s *matrix.Sparse) *matrix.Sparse {
	t.Helper()
	idx := append([]int(nil), s.RowIndex()...)
	val := append([]any(nil), s.Values()...)
	ptr := s.ColPtr()
	for j := 0; j+1 < len(ptr); j++ {
		for lo, hi := ptr[j], ptr[j+1]-1; lo < hi; lo, hi = lo+1, hi-1 {
			idx[lo], idx[hi] = idx[hi], idx[lo]
			val[lo], val[hi] = val[hi], val[lo]
		}
	}
	out, err := matrix.NewSparseCSC(s.Rows(), s.Cols(), val, idx, append([]int(nil), ptr...), s.DataType())
	require.NoError(t, err)

	return out
}

// reference evaluates fn on every cell of the densified operands.
func reference(t *testing.T, a, b matrix.Matrix, fn scalar.Func) []any {
	t.Helper()
	da, err := matrix.AsDense(a)
	require.NoError(t, err)
	db, err := matrix.AsDense(b)
	require.NoError(t, err)
	out := make([]any, len(da.Data()))
	for k := range out {
		out[k], err = fn(da.Data()[k], db.Data()[k])
		require.NoError(t, err)
	}

	return out
}

// cells densifies m and normalizes values so float and bool results compare
// with a reference computed by a plain loop.
func cells(t *testing.T, m matrix.Matrix, zero any) []any {
	t.Helper()
	if s, ok := m.(*matrix.Sparse); ok {
		d := s.ToDense()
		out := append([]any(nil), d.Data()...)
		for i := 0; i < s.Rows(); i++ {
			for j := 0; j < s.Cols(); j++ {
				if !s.Has(i, j) {
					out[i*s.Cols()+j] = zero
				}
			}
		}
		return out
	}
	d, err := matrix.AsDense(m)
	require.NoError(t, err)

	return d.Data()
}
