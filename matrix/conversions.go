// SPDX-License-Identifier: MIT

// Package matrix - conversions between Go arrays, gonum matrices and the
// two storage formats.
//
// Purpose:
//   - Accept the representations callers actually hold ([][]any, [][]float64,
//     []any, gonum mat.Matrix) and hand kernels a *Dense or *Sparse.
//   - Convert results back without loss: dense <-> sparse round-trips keep
//     every non-zero value and its position.
//
// AI-Hints:
//   - Every value crossing into the package goes through scalar.Canonical,
//     so int/float32/uint8 inputs dispatch as int64/float64.
//   - SparseFromDense takes the zero predicate explicitly; pass
//     scalar.DefaultTolerance.IsZero for the library-wide policy.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmatrix/scalar"
)

const (
	ctxFromRows  = "FromRows"
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// InferType returns the common tag of values or scalar.Mixed.
// Values are expected to be canonical.
func InferType(values []any) scalar.Type { return scalar.Infer(values) }

// FromRows builds a Dense from a row-major nested slice.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrBadShape when rows differ in length.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]any) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	data := make([]any, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFromRows, i, len(row), c, ErrBadShape)
		}
		for _, v := range row {
			data = append(data, scalar.Canonical(v))
		}
	}

	return &Dense{r: r, c: c, data: data, datatype: InferType(data)}, nil
}

// FromFloatRows builds a float64-tagged Dense from a nested float slice.
// Errors as FromRows.
func FromFloatRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	data := make([]any, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFromRows, i, len(row), c, ErrBadShape)
		}
		for _, v := range row {
			data = append(data, v)
		}
	}

	return &Dense{r: r, c: c, data: data, datatype: scalar.Float64}, nil
}

// FromVector builds a 1×n Dense row vector.
// Errors: ErrInvalidDimensions on an empty slice.
func FromVector(v []any) (*Dense, error) {
	if len(v) == 0 {
		return nil, matrixErrorf("FromVector", ErrInvalidDimensions)
	}
	data := make([]any, len(v))
	for i, x := range v {
		data[i] = scalar.Canonical(x)
	}

	return &Dense{r: 1, c: len(v), data: data, datatype: InferType(data)}, nil
}

// FromFloats builds a float64-tagged 1×n Dense row vector.
func FromFloats(v []float64) (*Dense, error) {
	if len(v) == 0 {
		return nil, matrixErrorf("FromFloats", ErrInvalidDimensions)
	}
	data := make([]any, len(v))
	for i, x := range v {
		data[i] = x
	}

	return &Dense{r: 1, c: len(v), data: data, datatype: scalar.Float64}, nil
}

// ToRows copies the matrix into a fresh nested slice.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]any {
	out := make([][]any, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]any, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// ToVector flattens the matrix into a fresh row-major slice.
func (m *Dense) ToVector() []any {
	out := make([]any, len(m.data))
	copy(out, m.data)

	return out
}

// FromGonum copies any gonum matrix into a float64-tagged Dense.
// Errors: ErrNilMatrix for a nil input, ErrInvalidDimensions for an empty one.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(ctxFromGonum, ErrInvalidDimensions)
	}
	data := make([]any, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = g.At(i, j)
		}
	}

	return &Dense{r: r, c: c, data: data, datatype: scalar.Float64}, nil
}

// ToGonum converts the matrix into a *mat.Dense.
// Errors: ErrNotNumeric when a value has no real float64 form.
// Complexity: O(r*c).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	buf := make([]float64, len(m.data))
	var err error
	for k, v := range m.data {
		if buf[k], err = scalar.ToFloat64(v); err != nil {
			return nil, fmt.Errorf("%s: %v: %w", ctxToGonum, err, ErrNotNumeric)
		}
	}

	return mat.NewDense(m.r, m.c, buf), nil
}

// ToGonum converts the matrix into a *mat.Dense; unstored cells are 0.
// Errors: ErrPatternMatrix for pattern matrices, ErrNotNumeric as (*Dense).ToGonum.
// Complexity: O(r*c + nnz).
func (m *Sparse) ToGonum() (*mat.Dense, error) {
	if m.values == nil {
		return nil, matrixErrorf(ctxToGonum, ErrPatternMatrix)
	}
	out := mat.NewDense(m.r, m.c, nil)
	for j := 0; j < m.c; j++ {
		for k := m.ptr[j]; k < m.ptr[j+1]; k++ {
			f, err := scalar.ToFloat64(m.values[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %v: %w", ctxToGonum, err, ErrNotNumeric)
			}
			out.Set(m.index[k], j, f)
		}
	}

	return out, nil
}

// SparseFromDense compresses d, storing only cells for which isZero is false.
// A nil isZero means scalar.DefaultTolerance.IsZero.
//
// Behavior highlights:
//   - Columns come out row-sorted.
//   - The datatype of d is kept.
//
// Complexity:
//   - Time O(r*c), Space O(nnz + c).
func SparseFromDense(d *Dense, isZero func(any) bool) (*Sparse, error) {
	if d == nil {
		return nil, matrixErrorf("SparseFromDense", ErrNilMatrix)
	}
	if isZero == nil {
		isZero = scalar.DefaultTolerance.IsZero
	}
	ptr := make([]int, d.c+1)
	index := make([]int, 0)
	values := make([]any, 0)
	var v any
	for j := 0; j < d.c; j++ {
		for i := 0; i < d.r; i++ {
			v = d.data[i*d.c+j]
			if isZero(v) {
				continue
			}
			index = append(index, i)
			values = append(values, v)
		}
		ptr[j+1] = len(index)
	}

	return &Sparse{r: d.r, c: d.c, values: values, index: index, ptr: ptr, datatype: d.datatype}, nil
}

// matrixErrorf wraps err with an operation tag, preserving the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
