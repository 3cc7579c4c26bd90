// SPDX-License-Identifier: MIT

// Package kernel implements the storage-format-specific elementwise kernels.
//
// Every kernel applies a binary scalar function f elementwise to two operands
// and allocates its result. Kernels differ in which positions they visit,
// chosen by how f behaves on the structural zero:
//
//   - Sparse × sparse: SparseUnion, SparseUnionZero, SparseIntersect,
//     SparseLeft, SparseFull and SparseFullSparse.
//   - Dense × sparse: DenseSparseOverlay, DenseSparseMask, DenseSparseFull;
//     each takes an inverse flag so the sparse operand can be f's left
//     argument without transposing.
//   - Scalar broadcast: SparseScalar, SparseScalarMask, SparseScalarFull,
//     DenseScalar.
//   - DenseDense, with an optional float64 block fast path.
//
// Sparse kernels never assume sorted row indices inside a CSC column. They
// scatter one column at a time into a Workspace (mark arrays keyed by a
// monotonically increasing token) and gather in discovery order.
//
// Kernels trust the caller on class selection: running, say, SparseIntersect
// with an operator for which f(x, 0) != 0 silently drops values. Picking the
// right kernel is the job of package elementwise.
package kernel
