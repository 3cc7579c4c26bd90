package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// TestBroadcastShape covers the right-aligned singleton rules.
func TestBroadcastShape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		ar, ac, br, bc int
		r, c           int
		stretched      bool
		err            error
	}{
		{"equal", 2, 3, 2, 3, 2, 3, false, nil},
		{"row vector", 1, 3, 4, 3, 4, 3, true, nil},
		{"column vector", 4, 1, 4, 3, 4, 3, true, nil},
		{"outer", 4, 1, 1, 3, 4, 3, true, nil},
		{"transposed", 2, 3, 3, 2, 0, 0, false, matrix.ErrDimensionMismatch},
		{"incompatible", 2, 2, 3, 2, 0, 0, false, matrix.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, c, s, err := matrix.BroadcastShape(tc.ar, tc.ac, tc.br, tc.bc)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, [3]any{tc.r, tc.c, tc.stretched}, [3]any{r, c, s})
		})
	}
}

// TestBroadcastTo checks both formats stretch identically.
func TestBroadcastTo(t *testing.T) {
	t.Parallel()

	row := MustRows(t, [][]any{{1.0, 0.0, 3.0}})
	out, err := matrix.BroadcastTo(row, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []any{1.0, 0.0, 3.0, 1.0, 0.0, 3.0}, out.(*matrix.Dense).Data())

	srow, err := matrix.SparseFromDense(row, nil)
	require.NoError(t, err)
	sout, err := matrix.BroadcastTo(srow, 2, 3)
	require.NoError(t, err)
	sp := sout.(*matrix.Sparse)
	require.Equal(t, 4, sp.Nnz())
	require.Equal(t, out.(*matrix.Dense).Data(), sp.ToDense().Data())

	col := MustRows(t, [][]any{{2.0}, {0.0}})
	scol, err := matrix.SparseFromDense(col, nil)
	require.NoError(t, err)
	sout, err = matrix.BroadcastTo(scol, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []any{2.0, 2.0, 2.0, 0.0, 0.0, 0.0}, sout.(*matrix.Sparse).ToDense().Data())

	gout, err := matrix.BroadcastTo(hide{col}, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []any{2.0, 2.0, 0.0, 0.0}, gout.(*matrix.Dense).Data())

	same, err := matrix.BroadcastTo(row, 1, 3)
	require.NoError(t, err)
	require.Same(t, row, same)

	_, err = matrix.BroadcastTo(row, 2, 4)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
