// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Track the homogeneous element tag so kernels can dispatch once per call.
//
// AI-Hints:
//   - Kernels read Data() directly; treat the returned slice as read-only.
//   - NewDenseFrom takes ownership of the buffer: build it, hand it over, never touch it again.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmatrix/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxFrom = "From" // ctor tag for NewDenseFrom
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of element values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - datatype is the homogeneous element tag, scalar.Mixed when unknown.
type Dense struct {
	r, c     int         // row and column counts (> 0)
	data     []any       // contiguous row-major storage (len == r*c)
	datatype scalar.Type // homogeneous element tag or scalar.Mixed
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c matrix of float64 zeros.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the buffer and fill it with float64(0).
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - The result is tagged scalar.Float64.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewDenseOf(rows, cols, scalar.Float64)
}

// NewDenseOf creates an r×c matrix filled with the typed zero of dt.
// Complexity: O(r*c).
func NewDenseOf(rows, cols int, dt scalar.Type) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	zero := scalar.Zero(dt)
	buf := make([]any, rows*cols)
	for i := range buf {
		buf[i] = zero
	}

	return &Dense{r: rows, c: cols, data: buf, datatype: dt}, nil
}

// NewDenseFrom wraps an existing row-major buffer without copying it.
// MAIN DESCRIPTION:
//   - Ownership-transfer constructor used by kernels and converters.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2: validate len(data) == rows*cols.
//
// Inputs:
//   - data: row-major values; the caller must not mutate it afterwards.
//   - dt  : homogeneous tag the caller vouches for, or scalar.Mixed.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewDenseFrom(rows, cols int, data []any, dt scalar.Type) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Dense.%s: len=%d want %d: %w", ctxFrom, len(data), rows*cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: data, datatype: dt}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// DataType returns the homogeneous element tag or scalar.Mixed.
func (m *Dense) DataType() scalar.Type { return m.datatype }

// Data exposes the row-major backing buffer. Read-only by contract.
func (m *Dense) Data() []any { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (any, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element write; the value is canonicalized first.
//
// Behavior highlights:
//   - Writing a value whose tag differs from DataType() downgrades the
//     matrix to scalar.Mixed, keeping the homogeneity claim honest.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v any) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	v = scalar.Canonical(v)
	if m.datatype != scalar.Mixed && scalar.TypeOf(v) != m.datatype {
		m.datatype = scalar.Mixed
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same datatype).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]any, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, datatype: m.datatype}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v any) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders matrix rows as lines with comma-separated values.
// Intended for logs and debugging; not for hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%v", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
