// SPDX-License-Identifier: MIT

package elementwise_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmatrix/elementwise"
	"github.com/katalvlaran/lvmatrix/kernel"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// TestApply_Scenarios covers the three reference scenarios end to end.
func TestApply_Scenarios(t *testing.T) {
	t.Parallel()

	a := sparseOf(t, [][]float64{{1, 0}, {0, 2}})
	b := sparseOf(t, [][]float64{{0, 3}, {4, 0}})

	res, err := elementwise.Apply(opOr, a, b)
	require.NoError(t, err)
	or := res.(*matrix.Sparse)
	require.Equal(t, 4, or.Nnz())
	require.Equal(t, scalar.Bool, or.DataType())
	require.Equal(t, []any{true, true, true, true}, or.ToDense().Data())

	res, err = elementwise.Apply(opAnd, a, b)
	require.NoError(t, err)
	and := res.(*matrix.Sparse)
	require.Equal(t, 0, and.Nnz())
	require.Equal(t, []any{false, false, false, false}, and.ToDense().Data())

	d := denseOf(t, [][]float64{{1, 2}, {3, 4}})
	s := sparseOf(t, [][]float64{{0, 2}, {3, 0}})
	res, err = elementwise.Apply(opLarger, d, s)
	require.NoError(t, err)
	gt := res.(*matrix.Dense)
	require.Equal(t, []any{true, false, false, true}, gt.Data())
	require.Equal(t, scalar.Bool, gt.DataType())
}

// TestApply_DimensionMismatch checks that 2×3 against 3×2 fails for every
// operator and every format combination, before any scalar kernel runs.
func TestApply_DimensionMismatch(t *testing.T) {
	t.Parallel()

	d23 := denseOf(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	d32 := denseOf(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	s23 := sparseOf(t, [][]float64{{1, 0, 3}, {0, 5, 0}})
	s32 := sparseOf(t, [][]float64{{1, 0}, {0, 4}, {5, 0}})

	pairs := map[string][2]any{
		"D,D": {d23, d32},
		"D,S": {d23, s32},
		"S,D": {s23, d32},
		"S,S": {s23, s32},
		"P,P": {[][]float64{{1, 2, 3}, {4, 5, 6}}, [][]float64{{1, 2}, {3, 4}, {5, 6}}},
	}
	for _, op := range allOps {
		for name, p := range pairs {
			op, name, p := op, name, p
			op.Fn = func(a, b any) (any, error) { return nil, errors.New("must not run") }
			t.Run(op.Name+"/"+name, func(t *testing.T) {
				t.Parallel()
				_, err := elementwise.Apply(op, p[0], p[1])
				require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			})
		}
	}
}

// TestApply_SparseDenseAgreement checks that every format combination yields
// the same cells as the all-dense computation, for every class.
func TestApply_SparseDenseAgreement(t *testing.T) {
	t.Parallel()

	ra := [][]float64{{1, 0, 0, -4}, {0, 2, 0, 0}, {3, 0, 5, 0}}
	rb := [][]float64{{2, 0, 1, 0}, {0, -2, 0, 0}, {3, 7, 0, 0}}

	for _, op := range allOps {
		op := op
		t.Run(op.Name, func(t *testing.T) {
			t.Parallel()
			want, err := elementwise.Apply(op, denseOf(t, ra), denseOf(t, rb))
			require.NoError(t, err)
			wantCells := cellsOf(t, want, op.Out)

			combos := map[string][2]any{
				"D,S": {denseOf(t, ra), sparseOf(t, rb)},
				"S,D": {sparseOf(t, ra), denseOf(t, rb)},
				"S,S": {sparseOf(t, ra), sparseOf(t, rb)},
			}
			for name, c := range combos {
				got, err := elementwise.Apply(op, c[0], c[1])
				require.NoError(t, err, name)
				assert.Equal(t, wantCells, cellsOf(t, got, op.Out), name)
			}
		})
	}
}

// TestApply_SparseScalarAgreement does the same for matrix × scalar operands.
func TestApply_SparseScalarAgreement(t *testing.T) {
	t.Parallel()

	ra := [][]float64{{1, 0, 0}, {0, -2, 3}}
	for _, op := range allOps {
		for _, c := range []float64{0, 2} {
			op, c := op, c
			t.Run(op.Name, func(t *testing.T) {
				t.Parallel()
				for _, scalarLeft := range []bool{false, true} {
					dense := []any{denseOf(t, ra), c}
					sparse := []any{sparseOf(t, ra), c}
					if scalarLeft {
						dense[0], dense[1] = dense[1], dense[0]
						sparse[0], sparse[1] = sparse[1], sparse[0]
					}
					want, err := elementwise.Apply(op, dense[0], dense[1])
					require.NoError(t, err)
					got, err := elementwise.Apply(op, sparse[0], sparse[1])
					require.NoError(t, err)
					assert.Equal(t, cellsOf(t, want, op.Out), cellsOf(t, got, op.Out), "scalar left=%v", scalarLeft)
				}
			})
		}
	}
}

// TestApply_PlainInputs checks conversion of Go slices and back.
func TestApply_PlainInputs(t *testing.T) {
	t.Parallel()

	res, err := elementwise.Apply(opAdd, [][]any{{1.0, 2.0}, {3.0, 4.0}}, [][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)
	require.Equal(t, [][]any{{2.0, 3.0}, {4.0, 5.0}}, res)

	res, err = elementwise.Apply(opLarger, []float64{1, 5}, 2.0)
	require.NoError(t, err)
	require.Equal(t, []any{false, true}, res)

	// A plain operand mixed with a library matrix yields a library matrix.
	res, err = elementwise.Apply(opAdd, []float64{1, 2}, denseOf(t, [][]float64{{1, 1}}))
	require.NoError(t, err)
	_, ok := res.(*matrix.Dense)
	require.True(t, ok)

	res, err = elementwise.Apply(opAdd, 2.0, 3.0)
	require.NoError(t, err)
	require.Equal(t, 5.0, res)
}

// TestApply_Broadcast checks singleton broadcasting for both formats.
func TestApply_Broadcast(t *testing.T) {
	t.Parallel()

	res, err := elementwise.Apply(opAdd, [][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{10, 0, 20})
	require.NoError(t, err)
	require.Equal(t, [][]any{{11.0, 2.0, 23.0}, {14.0, 5.0, 26.0}}, res)

	col := sparseOf(t, [][]float64{{1}, {0}})
	row := sparseOf(t, [][]float64{{0, 2, 0}})
	res, err = elementwise.Apply(opMul, col, row)
	require.NoError(t, err)
	out := res.(*matrix.Sparse)
	require.Equal(t, 1, out.Nnz())
	v, _ := out.At(0, 1)
	require.Equal(t, 2.0, v)
}

// TestApply_Datatype checks result tag stamping.
func TestApply_Datatype(t *testing.T) {
	t.Parallel()

	a := sparseOf(t, [][]float64{{1, 0}})
	mixed, err := matrix.FromRows([][]any{{1, 2.5}})
	require.NoError(t, err)

	res, err := elementwise.Apply(opEqual, a, a)
	require.NoError(t, err)
	require.Equal(t, scalar.Bool, res.(matrix.Matrix).DataType())

	res, err = elementwise.Apply(opEqual, a, mixed)
	require.NoError(t, err)
	require.Equal(t, scalar.Mixed, res.(matrix.Matrix).DataType())
}

// TestApply_Dispatch checks dispatcher binding and its errors.
func TestApply_Dispatch(t *testing.T) {
	t.Parallel()

	reg := scalar.NewRegistry()
	reg.Register("add", scalar.Float64, scalar.Float64, scalar.Float64, func(a, b any) (any, error) {
		return a.(float64) + b.(float64), nil
	})
	op := elementwise.Operator{Name: "add", Class: elementwise.Identity, Dispatch: reg}

	res, err := elementwise.Apply(op, sparseOf(t, [][]float64{{1, 0}}), sparseOf(t, [][]float64{{2, 3}}))
	require.NoError(t, err)
	s := res.(*matrix.Sparse)
	require.Equal(t, scalar.Float64, s.DataType())
	require.Equal(t, []any{3.0, 3.0}, s.ToDense().Data())

	_, err = elementwise.Apply(op, "x", "y")
	require.ErrorIs(t, err, scalar.ErrKernelNotFound)

	// Heterogeneous tags bind lazily: int64 × float64 has no kernel.
	ints, err := matrix.FromRows([][]any{{1, 2}})
	require.NoError(t, err)
	_, err = elementwise.Apply(op, ints, denseOf(t, [][]float64{{1, 1}}))
	require.ErrorIs(t, err, scalar.ErrKernelNotFound)
}

// TestApply_Errors covers operand and operator validation.
func TestApply_Errors(t *testing.T) {
	t.Parallel()

	d := denseOf(t, [][]float64{{1}})
	var nilDense *matrix.Dense
	var nilSparse *matrix.Sparse

	_, err := elementwise.Apply(opAdd, nil, d)
	require.ErrorIs(t, err, elementwise.ErrNilOperand)
	_, err = elementwise.Apply(opAdd, d, nilDense)
	require.ErrorIs(t, err, elementwise.ErrNilOperand)
	_, err = elementwise.Apply(opAdd, nilSparse, d)
	require.ErrorIs(t, err, elementwise.ErrNilOperand)
	_, err = elementwise.Apply(opAdd, map[string]int{}, d)
	require.ErrorIs(t, err, elementwise.ErrUnsupportedOperand)
	_, err = elementwise.Apply(opAdd, [][]any{{1}, {2, 3}}, d)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = elementwise.Apply(elementwise.Operator{Name: "none", Class: elementwise.Identity}, d, d)
	require.ErrorIs(t, err, elementwise.ErrUnsupportedCombination)

	bad := opAdd
	bad.Class = 0
	_, err = elementwise.Apply(bad, d, d)
	require.ErrorIs(t, err, elementwise.ErrUnsupportedCombination)

	boom := errors.New("boom")
	failing := opAdd
	failing.Fn = func(a, b any) (any, error) { return nil, boom }
	_, err = elementwise.Apply(failing, sparseOf(t, [][]float64{{1}}), sparseOf(t, [][]float64{{1}}))
	require.ErrorIs(t, err, boom)
}

// TestApply_Gonum accepts gonum matrices as operands.
func TestApply_Gonum(t *testing.T) {
	t.Parallel()

	g := mat.NewDense(1, 2, []float64{1, 0})
	res, err := elementwise.Apply(opMul, g, sparseOf(t, [][]float64{{3, 4}}))
	require.NoError(t, err)
	out := res.(*matrix.Sparse)
	require.Equal(t, 1, out.Nnz())
}

// TestApply_Options covers storage preference, tolerances, workspace reuse and logging.
func TestApply_Options(t *testing.T) {
	t.Parallel()

	a := sparseOf(t, [][]float64{{1, 0}, {0, 2}})
	b := sparseOf(t, [][]float64{{1, 3}, {0, 0}})

	res, err := elementwise.Apply(opEqual, a, b)
	require.NoError(t, err)
	_, ok := res.(*matrix.Dense)
	require.True(t, ok)

	res, err = elementwise.Apply(opEqual, a, b, elementwise.WithSparseStorage())
	require.NoError(t, err)
	s, ok := res.(*matrix.Sparse)
	require.True(t, ok)
	require.Equal(t, 2, s.Nnz())

	res, err = elementwise.Apply(opEqual, a, b, elementwise.WithSparseStorage(), elementwise.WithDenseStorage())
	require.NoError(t, err)
	_, ok = res.(*matrix.Dense)
	require.True(t, ok)

	// A loose absolute tolerance prunes the small sum.
	x := sparseOf(t, [][]float64{{1e-6, 1}})
	y := sparseOf(t, [][]float64{{1e-7, 0}})
	res, err = elementwise.Apply(opAdd, x, y, elementwise.WithAbsTol(1e-3), elementwise.WithRelTol(0))
	require.NoError(t, err)
	require.Equal(t, 1, res.(*matrix.Sparse).Nnz())

	res, err = elementwise.Apply(opAdd, x, y, elementwise.WithWorkspace(kernel.NewWorkspace(1)))
	require.NoError(t, err)
	require.Equal(t, 2, res.(*matrix.Sparse).Nnz())

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err = elementwise.Apply(opOr, a, b, elementwise.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "component=elementwise")
	assert.Contains(t, buf.String(), "kernel=sparse-union")
}

// TestOptions_Panics verifies option constructors reject nonsense.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { elementwise.WithRelTol(-1) })
	require.Panics(t, func() { elementwise.WithAbsTol(-1) })
	require.Panics(t, func() { elementwise.WithLogger(nil) })
	require.NotPanics(t, func() { elementwise.WithAbsTol(0) })
}
