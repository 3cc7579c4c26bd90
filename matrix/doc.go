// Package matrix offers the two storage formats of the elementwise engine.
//
// The matrix package provides:
//
//   - Dense: row-major flat buffer of element values with O(1) access.
//   - Sparse: compressed sparse column (CSC) triple (values, row index,
//     column pointer) storing only explicit entries. Row indices inside a
//     column are NOT required to be sorted.
//   - Builder: a triplet (i, j, v) accumulator that compresses into Sparse.
//   - Converters between Dense, Sparse, plain Go slices and gonum matrices,
//     plus right-aligned singleton broadcasting.
//
// Elements are untyped (`any`); each matrix carries an optional homogeneous
// scalar.Type tag, set only when every stored value provably has that type.
//
// See the examples in this package for usage patterns.
package matrix
