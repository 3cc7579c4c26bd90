// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense/Sparse tests.
//   • Keep fixtures explicit: CSC triples are written out by hand so the
//     tests double as documentation of the storage layout.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// hide wraps any Matrix to hide its concrete type from type switches,
// forcing the generic At-based paths.
type hide struct{ matrix.Matrix }

// MustRows builds a Dense from nested rows or fails the test.
func MustRows(t *testing.T, rows [][]any) *matrix.Dense {
	t.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return d
}

// MustCSC builds a validated Sparse or fails the test.
func MustCSC(t *testing.T, r, c int, values []any, index, ptr []int) *matrix.Sparse {
	t.Helper()
	s, err := matrix.NewSparseCSC(r, c, values, index, ptr, scalar.Infer(values))
	require.NoError(t, err)

	return s
}

// sample3x3 is
//
//	[1 0 4]
//	[0 3 0]
//	[2 0 5]
//
// with column 2 stored in reverse row order (unsorted).
func sample3x3(t *testing.T) *matrix.Sparse {
	t.Helper()

	return MustCSC(t, 3, 3,
		[]any{1.0, 2.0, 3.0, 5.0, 4.0},
		[]int{0, 2, 1, 2, 0},
		[]int{0, 2, 3, 5},
	)
}
