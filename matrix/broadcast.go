// SPDX-License-Identifier: MIT

// Package matrix - singleton-dimension broadcasting for 2-D operands.
//
// Rules (right-aligned, as in NumPy):
//   - Equal dimensions are kept.
//   - A dimension of 1 stretches to the other operand's dimension.
//   - Anything else is ErrDimensionMismatch.

package matrix

import (
	"fmt"
)

// BroadcastShape returns the common shape of an ar×ac and a br×bc operand and
// whether either of them has to be stretched.
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func BroadcastShape(ar, ac, br, bc int) (rows, cols int, stretched bool, err error) {
	dims := [2][2]int{{ar, br}, {ac, bc}}
	var out [2]int
	for k, d := range dims {
		switch {
		case d[0] == d[1]:
			out[k] = d[0]
		case d[0] == 1:
			out[k] = d[1]
			stretched = true
		case d[1] == 1:
			out[k] = d[0]
			stretched = true
		default:
			return 0, 0, false, fmt.Errorf("BroadcastShape: %dx%d vs %dx%d: %w", ar, ac, br, bc, ErrDimensionMismatch)
		}
	}

	return out[0], out[1], stretched, nil
}

// BroadcastTo stretches m to rows×cols. It returns m itself when the shape
// already matches.
//
// Behavior highlights:
//   - Dense input yields a Dense copy; Sparse input stays sparse (each stored
//     entry is replicated, never densified).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a non-singleton dimension differs).
//
// Complexity:
//   - Dense: O(rows*cols). Sparse: O(cols + nnz of the result).
func BroadcastTo(m Matrix, rows, cols int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	mr, mc := m.Rows(), m.Cols()
	if mr == rows && mc == cols {
		return m, nil
	}
	if (mr != rows && mr != 1) || (mc != cols && mc != 1) {
		return nil, fmt.Errorf("BroadcastTo: %dx%d to %dx%d: %w", mr, mc, rows, cols, ErrDimensionMismatch)
	}

	switch x := m.(type) {
	case *Dense:
		return broadcastDense(x, rows, cols), nil
	case *Sparse:
		return broadcastSparse(x, rows, cols), nil
	default:
		data := make([]any, rows*cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v, err := m.At(i%mr, j%mc)
				if err != nil {
					return nil, matrixErrorf("BroadcastTo", err)
				}
				data[i*cols+j] = v
			}
		}
		return &Dense{r: rows, c: cols, data: data, datatype: m.DataType()}, nil
	}
}

// broadcastDense tiles singleton dimensions; i%r maps every target row onto
// row 0 when r == 1 and onto itself otherwise.
func broadcastDense(m *Dense, rows, cols int) *Dense {
	data := make([]any, rows*cols)
	for i := 0; i < rows; i++ {
		si := i % m.r
		for j := 0; j < cols; j++ {
			data[i*cols+j] = m.data[si*m.c+j%m.c]
		}
	}

	return &Dense{r: rows, c: cols, data: data, datatype: m.datatype}
}

// broadcastSparse replicates source column j%c into each target column and,
// for a single-row source, each stored entry into every target row.
func broadcastSparse(m *Sparse, rows, cols int) *Sparse {
	ptr := make([]int, cols+1)
	index := make([]int, 0)
	var values []any
	if m.values != nil {
		values = make([]any, 0)
	}
	for j := 0; j < cols; j++ {
		sj := j % m.c
		for k := m.ptr[sj]; k < m.ptr[sj+1]; k++ {
			if m.r == rows {
				index = append(index, m.index[k])
				if values != nil {
					values = append(values, m.values[k])
				}
				continue
			}
			// m.r == 1: the single stored entry fills the whole column.
			for i := 0; i < rows; i++ {
				index = append(index, i)
				if values != nil {
					values = append(values, m.values[k])
				}
			}
		}
		ptr[j+1] = len(index)
	}

	return &Sparse{r: rows, c: cols, values: values, index: index, ptr: ptr, datatype: m.datatype}
}
