// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and Sparse.
// This file contains ONLY the read interface both storage formats satisfy.
// Errors and constructors live in dedicated files.
package matrix

import "github.com/katalvlaran/lvmatrix/scalar"

// Matrix is the read-only view shared by *Dense and *Sparse.
// Kernels work on the concrete types; Matrix exists for validators,
// broadcasting and callers that do not care about the storage format.
//
// Complexity notes: all methods are O(1) except At on Sparse (O(nnz in column))
// and Clone (O(size of storage)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j). Unstored sparse positions
	// report the typed zero of the matrix datatype.
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (any, error)

	// DataType returns the homogeneous element tag or scalar.Mixed.
	DataType() scalar.Type

	// Clone returns a deep copy of the matrix storage.
	Clone() Matrix
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix = (*Dense)(nil)
	_ Matrix = (*Sparse)(nil)
)
