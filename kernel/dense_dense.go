// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// DenseDense applies f cell by cell to two equally shaped dense matrices.
//
// Implementation:
//   - Fast path: cfg.Block set and both operands float64-tagged, the flat
//     buffers go through the block kernel in one call.
//   - Otherwise: single flat loop over the row-major buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, errors from f.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func DenseDense(a, b *matrix.Dense, fn scalar.Func, cfg *Config) (*matrix.Dense, error) {
	const tag = "DenseDense"
	if a == nil || b == nil {
		return nil, kernelErrorf(tag, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return nil, kernelErrorf(tag, err)
	}

	rows, cols := a.Shape()
	x, y := a.Data(), b.Data()
	if blk := cfg.block(); blk != nil && a.DataType() == scalar.Float64 && b.DataType() == scalar.Float64 {
		fx, okx := unboxFloats(x)
		fy, oky := unboxFloats(y)
		if okx && oky {
			return matrix.NewDenseFrom(rows, cols, floatBlock(blk, fx, fy, false), cfg.dataType())
		}
	}

	data := make([]any, len(x))
	var err error
	for k := range x {
		if data[k], err = fn(x[k], y[k]); err != nil {
			return nil, kernelErrorf(tag, err)
		}
	}

	return matrix.NewDenseFrom(rows, cols, data, cfg.dataType())
}

// unboxFloats copies a float64-tagged buffer into a []float64.
// ok is false when a value is not a float64 (a mislabeled buffer); callers
// then take the generic path.
func unboxFloats(src []any) (out []float64, ok bool) {
	out = make([]float64, len(src))
	for k, v := range src {
		if out[k], ok = v.(float64); !ok {
			return nil, false
		}
	}

	return out, true
}

// floatBlock runs blk over (a, b), or (b, a) when inverse, and boxes the result.
func floatBlock(blk func(dst, a, b []float64), a, b []float64, inverse bool) []any {
	dst := make([]float64, len(a))
	if inverse {
		blk(dst, b, a)
	} else {
		blk(dst, a, b)
	}
	out := make([]any, len(dst))
	for k, v := range dst {
		out[k] = v
	}

	return out
}
