// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (compressed sparse column).
//
// Purpose:
//   - Store only explicit entries: per column j, ptr[j]..ptr[j+1] delimits the
//     slice of index (row numbers) and values belonging to that column.
//   - Support pattern-only matrices (values == nil) for structural work.
//   - Validate the storage invariants once, at construction, so kernels can
//     trust them.
//
// Invariants (checked by NewSparseCSC):
//   - len(ptr) == cols+1, ptr[0] == 0, ptr non-decreasing, ptr[cols] == len(index).
//   - values == nil or len(values) == len(index).
//   - every row index in [0, rows), no duplicate (row, col) pair.
//   - row indices within a column need NOT be sorted.
//
// Complexity quicksheet:
//   - NewSparseCSC: O(rows + cols + nnz); At: O(nnz in column);
//     ToDense: O(r*c); Transpose: O(rows + cols + nnz).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmatrix/scalar"
)

// ctxCSC tags construction errors.
const ctxCSC = "NewSparseCSC"

// Sparse is a CSC matrix of element values.
type Sparse struct {
	r, c     int         // dimensions (> 0)
	values   []any       // parallel to index; nil for a pattern matrix
	index    []int       // row index of every stored entry
	ptr      []int       // column pointers, len == c+1
	datatype scalar.Type // homogeneous tag of stored values or scalar.Mixed
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sparse)(nil)

// NewSparse returns an empty rows×cols sparse matrix (no stored entries).
// Errors: ErrInvalidDimensions.
// Complexity: O(cols).
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Sparse{
		r:        rows,
		c:        cols,
		values:   []any{},
		index:    []int{},
		ptr:      make([]int, cols+1),
		datatype: scalar.Mixed,
	}, nil
}

// NewSparseCSC wraps a CSC triple after validating every storage invariant.
// MAIN DESCRIPTION:
//   - Ownership-transfer constructor: the slices are kept, not copied.
//
// Implementation:
//   - Stage 1: validate dimensions and slice lengths.
//   - Stage 2: validate column pointers (start at 0, non-decreasing, end at nnz).
//   - Stage 3: per column, validate row range and detect duplicates with a
//     mark array (token = column+1), so unsorted columns are accepted.
//
// Inputs:
//   - values: stored values or nil for a pattern matrix.
//   - index : row index per stored entry.
//   - ptr   : column pointers, len cols+1.
//   - dt    : homogeneous tag the caller vouches for, or scalar.Mixed.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidStructure (wrapped with column context).
//
// Complexity:
//   - Time O(rows + cols + nnz), Space O(rows).
func NewSparseCSC(rows, cols int, values []any, index, ptr []int, dt scalar.Type) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if err := validateCSC(rows, cols, values, index, ptr); err != nil {
		return nil, err
	}
	if values == nil {
		dt = scalar.Mixed
	}

	return &Sparse{r: rows, c: cols, values: values, index: index, ptr: ptr, datatype: dt}, nil
}

// WrapCSC assembles a Sparse without validation.
// Only for producers whose output satisfies the CSC invariants by
// construction (kernels, converters); everything else uses NewSparseCSC.
// Complexity: O(1).
func WrapCSC(rows, cols int, values []any, index, ptr []int, dt scalar.Type) *Sparse {
	if values == nil {
		dt = scalar.Mixed
	}

	return &Sparse{r: rows, c: cols, values: values, index: index, ptr: ptr, datatype: dt}
}

// NewPattern builds a pattern-only sparse matrix (no values).
// Errors and complexity as NewSparseCSC.
func NewPattern(rows, cols int, index, ptr []int) (*Sparse, error) {
	return NewSparseCSC(rows, cols, nil, index, ptr, scalar.Mixed)
}

// validateCSC checks the CSC invariants listed in the file header.
func validateCSC(rows, cols int, values []any, index, ptr []int) error {
	if len(ptr) != cols+1 {
		return fmt.Errorf("%s: len(ptr)=%d want %d: %w", ctxCSC, len(ptr), cols+1, ErrInvalidStructure)
	}
	if ptr[0] != 0 || ptr[cols] != len(index) {
		return fmt.Errorf("%s: ptr bounds [%d,%d] for nnz %d: %w", ctxCSC, ptr[0], ptr[cols], len(index), ErrInvalidStructure)
	}
	if values != nil && len(values) != len(index) {
		return fmt.Errorf("%s: len(values)=%d len(index)=%d: %w", ctxCSC, len(values), len(index), ErrInvalidStructure)
	}

	var j, k, i int
	for j = 0; j < cols; j++ {
		if ptr[j+1] < ptr[j] || ptr[j+1] > len(index) {
			return fmt.Errorf("%s: col %d: ptr %d after %d (nnz %d): %w", ctxCSC, j, ptr[j+1], ptr[j], len(index), ErrInvalidStructure)
		}
	}

	mark := make([]int, rows) // mark[i] == j+1 when row i was seen in column j
	for j = 0; j < cols; j++ {
		for k = ptr[j]; k < ptr[j+1]; k++ {
			i = index[k]
			if i < 0 || i >= rows {
				return fmt.Errorf("%s: col %d: row %d out of range: %w", ctxCSC, j, i, ErrInvalidStructure)
			}
			if mark[i] == j+1 {
				return fmt.Errorf("%s: col %d: duplicate row %d: %w", ctxCSC, j, i, ErrInvalidStructure)
			}
			mark[i] = j + 1
		}
	}

	return nil
}

// Rows returns the row count.
func (m *Sparse) Rows() int { return m.r }

// Cols returns the column count.
func (m *Sparse) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Sparse) Shape() (rows, cols int) { return m.r, m.c }

// DataType returns the homogeneous element tag or scalar.Mixed.
func (m *Sparse) DataType() scalar.Type { return m.datatype }

// Nnz returns the number of stored entries.
func (m *Sparse) Nnz() int { return m.ptr[m.c] }

// IsPattern reports whether the matrix stores a pattern only.
func (m *Sparse) IsPattern() bool { return m.values == nil }

// Values exposes the stored values (nil for a pattern). Read-only by contract.
func (m *Sparse) Values() []any { return m.values }

// RowIndex exposes the row index of every stored entry. Read-only by contract.
func (m *Sparse) RowIndex() []int { return m.index }

// ColPtr exposes the column pointers (len Cols()+1). Read-only by contract.
func (m *Sparse) ColPtr() []int { return m.ptr }

// find returns the storage position of (row, col) or -1.
// Columns are not sorted, so this is a linear scan of the column.
func (m *Sparse) find(row, col int) int {
	for k := m.ptr[col]; k < m.ptr[col+1]; k++ {
		if m.index[k] == row {
			return k
		}
	}

	return -1
}

// At returns the stored value at (row, col), the typed zero when the
// position is not stored, and true/false for pattern matrices.
// Errors: ErrOutOfRange.
// Complexity: O(nnz in column).
func (m *Sparse) At(row, col int) (any, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return nil, fmt.Errorf("Sparse.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	k := m.find(row, col)
	if m.values == nil {
		return k >= 0, nil
	}
	if k < 0 {
		return scalar.Zero(m.datatype), nil
	}

	return m.values[k], nil
}

// Has reports whether (row, col) is an explicitly stored position.
func (m *Sparse) Has(row, col int) bool {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return false
	}

	return m.find(row, col) >= 0
}

// Clone returns a deep copy of all three arrays.
// Complexity: O(nnz + cols).
func (m *Sparse) Clone() Matrix {
	out := &Sparse{
		r:        m.r,
		c:        m.c,
		index:    append([]int(nil), m.index...),
		ptr:      append([]int(nil), m.ptr...),
		datatype: m.datatype,
	}
	if m.values != nil {
		out.values = append(make([]any, 0, len(m.values)), m.values...)
	}

	return out
}

// Pattern returns a pattern-only copy (structure without values).
func (m *Sparse) Pattern() *Sparse {
	return &Sparse{
		r:        m.r,
		c:        m.c,
		index:    append([]int(nil), m.index...),
		ptr:      append([]int(nil), m.ptr...),
		datatype: scalar.Mixed,
	}
}

// Do visits every stored entry column by column (storage order inside a
// column) and calls f(i, j, v); v is nil for pattern matrices.
// Stops early when f returns false.
func (m *Sparse) Do(f func(i, j int, v any) bool) {
	var v any
	for j := 0; j < m.c; j++ {
		for k := m.ptr[j]; k < m.ptr[j+1]; k++ {
			if m.values != nil {
				v = m.values[k]
			}
			if !f(m.index[k], j, v) {
				return
			}
		}
	}
}

// ToDense materializes the matrix; unstored cells get the typed zero of the
// datatype (pattern matrices become a boolean mask).
// Complexity: O(r*c + nnz).
func (m *Sparse) ToDense() *Dense {
	dt := m.datatype
	if m.values == nil {
		dt = scalar.Bool
	}
	zero := scalar.Zero(dt)
	data := make([]any, m.r*m.c)
	for i := range data {
		data[i] = zero
	}
	for j := 0; j < m.c; j++ {
		for k := m.ptr[j]; k < m.ptr[j+1]; k++ {
			if m.values == nil {
				data[m.index[k]*m.c+j] = true
				continue
			}
			data[m.index[k]*m.c+j] = m.values[k]
		}
	}

	return &Dense{r: m.r, c: m.c, data: data, datatype: dt}
}

// Transpose returns the c×r transpose in CSC form.
// Implementation:
//   - Stage 1: count entries per row (the columns of the result).
//   - Stage 2: prefix-sum into result pointers.
//   - Stage 3: scatter entries; within a result column the order follows
//     the source column order, so output columns come out row-sorted.
//
// Complexity:
//   - Time O(rows + cols + nnz), Space O(rows + nnz).
func (m *Sparse) Transpose() *Sparse {
	nnz := m.ptr[m.c]
	ptr := make([]int, m.r+1)
	for k := 0; k < nnz; k++ {
		ptr[m.index[k]+1]++
	}
	for i := 0; i < m.r; i++ {
		ptr[i+1] += ptr[i]
	}
	next := append([]int(nil), ptr[:m.r]...)
	index := make([]int, nnz)
	var values []any
	if m.values != nil {
		values = make([]any, nnz)
	}
	for j := 0; j < m.c; j++ {
		for k := m.ptr[j]; k < m.ptr[j+1]; k++ {
			i := m.index[k]
			p := next[i]
			next[i]++
			index[p] = j
			if values != nil {
				values[p] = m.values[k]
			}
		}
	}

	return &Sparse{r: m.c, c: m.r, values: values, index: index, ptr: ptr, datatype: m.datatype}
}

// String renders the matrix densely, row by row. Debugging only.
func (m *Sparse) String() string {
	var b strings.Builder
	d := m.ToDense()
	b.WriteString(fmt.Sprintf("Sparse %dx%d nnz=%d\n", m.r, m.c, m.Nnz()))
	b.WriteString(d.String())

	return b.String()
}
