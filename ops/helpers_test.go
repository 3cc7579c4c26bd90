// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

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

// rowsOf densifies a matrix result; unstored cells come back as the typed
// zero of the result.
func rowsOf(t *testing.T, res any) [][]any {
	t.Helper()
	m, ok := res.(matrix.Matrix)
	require.True(t, ok, "result %T is not a matrix", res)
	d, err := matrix.AsDense(m)
	require.NoError(t, err)

	return d.ToRows()
}
