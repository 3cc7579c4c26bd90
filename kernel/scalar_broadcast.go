// SPDX-License-Identifier: MIT

// Package kernel - matrix × scalar kernels.
//
// Orientation: inverse == false computes f(m, c); inverse == true computes
// f(c, m).

package kernel

import (
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// SparseScalarMask applies f only to stored entries of s and prunes new
// zeros; pattern(result) ⊆ pattern(s). Sound when f(0, c) == 0.
//
// Errors: ErrNilMatrix, ErrPatternMatrix, errors from f.
// Complexity: Time O(nnz + cols), Space O(nnz + cols).
func SparseScalarMask(s *matrix.Sparse, c any, fn scalar.Func, inverse bool, cfg *Config) (*matrix.Sparse, error) {
	const tag = "SparseScalarMask"
	if err := checkValued(tag, s); err != nil {
		return nil, err
	}

	rows, cols := s.Shape()
	out := newAccumulator(cols, s.Nnz(), false)
	si, sp, sv := s.RowIndex(), s.ColPtr(), s.Values()
	var v any
	var err error
	for j := 0; j < cols; j++ {
		for k := sp[j]; k < sp[j+1]; k++ {
			if v, err = call(fn, sv[k], c, inverse); err != nil {
				return nil, kernelErrorf(tag, err)
			}
			out.add(si[k], v, cfg)
		}
		out.close(j)
	}

	return out.sparse(rows, cols, cfg.dataType()), nil
}

// SparseScalarFull materializes a dense result: stored entries get f(s, c),
// every other cell the background f(0, c), evaluated once.
//
// Errors: ErrNilMatrix, ErrPatternMatrix, errors from f.
// Complexity: Time O(rows*cols + nnz), Space O(rows*cols).
func SparseScalarFull(s *matrix.Sparse, c any, fn scalar.Func, inverse bool, cfg *Config) (*matrix.Dense, error) {
	const tag = "SparseScalarFull"
	if err := checkValued(tag, s); err != nil {
		return nil, err
	}
	bg, err := call(fn, cfg.zero(), c, inverse)
	if err != nil {
		return nil, kernelErrorf(tag, err)
	}

	return sparseScalarDense(tag, s, c, bg, fn, inverse, cfg)
}

// SparseScalar chooses between the mask and the dense result at run time.
//
// MAIN DESCRIPTION:
//   - The background value bg = f(0, c) is computed once. When bg is zero
//     under cfg.IsZero the result is the sparse mask; otherwise every
//     unstored cell equals bg and a dense result is materialized.
//
// Returns:
//   - *matrix.Sparse or *matrix.Dense, as matrix.Matrix.
//
// Errors: as SparseScalarMask.
// Complexity: O(nnz + cols) for a zero background, O(rows*cols) otherwise.
func SparseScalar(s *matrix.Sparse, c any, fn scalar.Func, inverse bool, cfg *Config) (matrix.Matrix, error) {
	const tag = "SparseScalar"
	if err := checkValued(tag, s); err != nil {
		return nil, err
	}
	bg, err := call(fn, cfg.zero(), c, inverse)
	if err != nil {
		return nil, kernelErrorf(tag, err)
	}
	if cfg.isZero(bg) {
		return SparseScalarMask(s, c, fn, inverse, cfg)
	}

	return sparseScalarDense(tag, s, c, bg, fn, inverse, cfg)
}

// sparseScalarDense fills bg and overwrites stored positions.
func sparseScalarDense(tag string, s *matrix.Sparse, c, bg any, fn scalar.Func, inverse bool, cfg *Config) (*matrix.Dense, error) {
	rows, cols := s.Shape()
	data := make([]any, rows*cols)
	for k := range data {
		data[k] = bg
	}
	si, sp, sv := s.RowIndex(), s.ColPtr(), s.Values()
	var err error
	for j := 0; j < cols; j++ {
		for k := sp[j]; k < sp[j+1]; k++ {
			if data[si[k]*cols+j], err = call(fn, sv[k], c, inverse); err != nil {
				return nil, kernelErrorf(tag, err)
			}
		}
	}

	return matrix.NewDenseFrom(rows, cols, data, cfg.dataType())
}

// DenseScalar applies f to every cell of d. When cfg.Block is set, d is
// float64-tagged and c is a float64, the whole buffer goes through the block
// kernel in one call.
//
// Errors: ErrNilMatrix, errors from f.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func DenseScalar(d *matrix.Dense, c any, fn scalar.Func, inverse bool, cfg *Config) (*matrix.Dense, error) {
	const tag = "DenseScalar"
	if d == nil {
		return nil, kernelErrorf(tag, matrix.ErrNilMatrix)
	}

	rows, cols := d.Shape()
	src := d.Data()
	if blk := cfg.block(); blk != nil && d.DataType() == scalar.Float64 {
		cf, okc := c.(float64)
		fx, okx := unboxFloats(src)
		if okc && okx {
			fill := make([]float64, len(src))
			for k := range fill {
				fill[k] = cf
			}
			return matrix.NewDenseFrom(rows, cols, floatBlock(blk, fx, fill, inverse), cfg.dataType())
		}
	}

	data := make([]any, len(src))
	var err error
	for k, x := range src {
		if data[k], err = call(fn, x, c, inverse); err != nil {
			return nil, kernelErrorf(tag, err)
		}
	}

	return matrix.NewDenseFrom(rows, cols, data, cfg.dataType())
}
