// SPDX-License-Identifier: MIT

// Package kernel - dense × sparse kernels.
//
// Orientation: with inverse == false the call is f(d, s); with inverse == true
// it is f(s, d). The sparse operand is never transposed or densified.
//
// Errors (all kernels):
//   - ErrNilMatrix, ErrDimensionMismatch (before any traversal),
//     ErrPatternMatrix (the sparse operand must carry values),
//     the first error returned by f or Keep.

package kernel

import (
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// checkDenseSparse validates a dense × sparse operand pair.
func checkDenseSparse(tag string, d *matrix.Dense, s *matrix.Sparse) error {
	if d == nil || s == nil {
		return kernelErrorf(tag, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSameShape(d, s); err != nil {
		return kernelErrorf(tag, err)
	}

	return checkValued(tag, s)
}

// DenseSparseOverlay is the density-preserving kernel, for operators with
// f(d, 0) == d (resp. f(0, d) == d when inverse).
//
// Implementation:
//   - Stage 1: copy the dense buffer through cfg.Keep.
//   - Stage 2: overwrite every position stored in s with f(d, s).
//
// Complexity:
//   - Time O(rows*cols + nnz), Space O(rows*cols).
func DenseSparseOverlay(d *matrix.Dense, s *matrix.Sparse, fn scalar.Func, inverse bool, cfg *Config) (*matrix.Dense, error) {
	const tag = "DenseSparseOverlay"
	if err := checkDenseSparse(tag, d, s); err != nil {
		return nil, err
	}

	rows, cols := d.Shape()
	src := d.Data()
	data := make([]any, len(src))
	var err error
	for k, x := range src {
		if data[k], err = cfg.keep(x); err != nil {
			return nil, kernelErrorf(tag, err)
		}
	}

	si, sp, sv := s.RowIndex(), s.ColPtr(), s.Values()
	var off int
	for j := 0; j < cols; j++ {
		for k := sp[j]; k < sp[j+1]; k++ {
			off = si[k]*cols + j
			if data[off], err = call(fn, src[off], sv[k], inverse); err != nil {
				return nil, kernelErrorf(tag, err)
			}
		}
	}

	return matrix.NewDenseFrom(rows, cols, data, cfg.dataType())
}

// DenseSparseMask is the zero-background kernel, for operators with
// f(d, 0) == 0 (resp. f(0, d) == 0 when inverse). Only positions stored in s
// are evaluated; the result is sparse with pattern ⊆ pattern(s).
//
// Complexity:
//   - Time O(nnz + cols), Space O(nnz + cols).
func DenseSparseMask(d *matrix.Dense, s *matrix.Sparse, fn scalar.Func, inverse bool, cfg *Config) (*matrix.Sparse, error) {
	const tag = "DenseSparseMask"
	if err := checkDenseSparse(tag, d, s); err != nil {
		return nil, err
	}

	rows, cols := d.Shape()
	src := d.Data()
	out := newAccumulator(cols, s.Nnz(), false)
	si, sp, sv := s.RowIndex(), s.ColPtr(), s.Values()
	var v any
	var err error
	for j := 0; j < cols; j++ {
		for k := sp[j]; k < sp[j+1]; k++ {
			if v, err = call(fn, src[si[k]*cols+j], sv[k], inverse); err != nil {
				return nil, kernelErrorf(tag, err)
			}
			out.add(si[k], v, cfg)
		}
		out.close(j)
	}

	return out.sparse(rows, cols, cfg.dataType()), nil
}

// DenseSparseFull evaluates every cell, for operators with no useful zero
// behavior. Per column, stored entries are scattered and combined as
// f(d, s); every other row gets f(d, zero).
//
// Complexity:
//   - Time O(rows*cols + nnz), Space O(rows*cols) plus an O(rows) workspace.
func DenseSparseFull(d *matrix.Dense, s *matrix.Sparse, fn scalar.Func, inverse bool, cfg *Config) (*matrix.Dense, error) {
	const tag = "DenseSparseFull"
	if err := checkDenseSparse(tag, d, s); err != nil {
		return nil, err
	}

	rows, cols := d.Shape()
	ws := cfg.workspace(rows)
	defer ws.release()
	zero := cfg.zero()
	src := d.Data()
	data := make([]any, len(src))
	si, sp, sv := s.RowIndex(), s.ColPtr(), s.Values()

	var off, tok int
	var err error
	for j := 0; j < cols; j++ {
		tok = ws.next()
		for k := sp[j]; k < sp[j+1]; k++ {
			ws.markA[si[k]] = tok
			off = si[k]*cols + j
			if data[off], err = call(fn, src[off], sv[k], inverse); err != nil {
				return nil, kernelErrorf(tag, err)
			}
		}
		for i := 0; i < rows; i++ {
			if ws.markA[i] == tok {
				continue
			}
			off = i*cols + j
			if data[off], err = call(fn, src[off], zero, inverse); err != nil {
				return nil, kernelErrorf(tag, err)
			}
		}
	}

	return matrix.NewDenseFrom(rows, cols, data, cfg.dataType())
}
