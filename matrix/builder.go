// SPDX-License-Identifier: MIT

// Package matrix - triplet (COO) builder for CSC matrices.
//
// Purpose:
//   - Collect (row, col, value) triplets in any order and compress them into
//     a valid Sparse in O(rows + cols + n).
//   - Resolve duplicates deterministically: the last appended value wins.
//
// AI-Hints:
//   - Build does not prune zeros; append only what should be stored.
//   - A Builder is reusable: Reset keeps the shape and drops the triplets.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/scalar"
)

const ctxAppend = "Builder.Append"

type triplet struct {
	i, j int
	v    any
}

// Builder accumulates triplets for a rows×cols sparse matrix.
type Builder struct {
	r, c    int
	pattern bool
	data    []triplet
}

// NewBuilder returns a value builder for a rows×cols matrix.
// Errors: ErrInvalidDimensions.
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Builder{r: rows, c: cols}, nil
}

// NewPatternBuilder returns a builder whose result stores no values;
// the v argument of Append is ignored.
func NewPatternBuilder(rows, cols int) (*Builder, error) {
	b, err := NewBuilder(rows, cols)
	if err != nil {
		return nil, err
	}
	b.pattern = true

	return b, nil
}

// Len returns the number of appended triplets (duplicates included).
func (b *Builder) Len() int { return len(b.data) }

// Reset drops all triplets, keeping shape and capacity.
func (b *Builder) Reset() { b.data = b.data[:0] }

// Append records v at (i, j). Values are canonicalized.
// Errors: ErrOutOfRange.
func (b *Builder) Append(i, j int, v any) error {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return fmt.Errorf("%s(%d,%d): %w", ctxAppend, i, j, ErrOutOfRange)
	}
	if b.pattern {
		v = nil
	} else {
		v = scalar.Canonical(v)
	}
	b.data = append(b.data, triplet{i: i, j: j, v: v})

	return nil
}

// Build compresses the triplets into a CSC matrix.
//
// Implementation:
//   - Stage 1: bucket triplets per column (counting sort on j), keeping
//     append order inside each bucket.
//   - Stage 2: per column, walk the bucket and keep the last write per row
//     via a position map (pos[i] = slot+1 within the current column).
//   - Stage 3: compact and stamp the datatype with InferType.
//
// Behavior highlights:
//   - Output columns list rows in first-appearance order; they are not sorted.
//
// Complexity:
//   - Time O(rows + cols + n), Space O(rows + n).
func (b *Builder) Build() (*Sparse, error) {
	n := len(b.data)

	// Stage 1: counting sort by column.
	start := make([]int, b.c+1)
	for _, t := range b.data {
		start[t.j+1]++
	}
	for j := 0; j < b.c; j++ {
		start[j+1] += start[j]
	}
	order := make([]int, n)
	next := append([]int(nil), start[:b.c]...)
	for k, t := range b.data {
		order[next[t.j]] = k
		next[t.j]++
	}

	// Stage 2: deduplicate per column, last write wins.
	ptr := make([]int, b.c+1)
	index := make([]int, 0, n)
	var values []any
	if !b.pattern {
		values = make([]any, 0, n)
	}
	pos := make([]int, b.r)
	mark := make([]int, b.r)
	var p int
	for j := 0; j < b.c; j++ {
		for q := start[j]; q < start[j+1]; q++ {
			t := b.data[order[q]]
			if mark[t.i] == j+1 {
				if values != nil {
					values[pos[t.i]] = t.v
				}
				continue
			}
			mark[t.i] = j + 1
			pos[t.i] = p
			index = append(index, t.i)
			if values != nil {
				values = append(values, t.v)
			}
			p++
		}
		ptr[j+1] = p
	}

	// Stage 3: tag.
	dt := scalar.Mixed
	if values != nil {
		dt = InferType(values)
	}

	return &Sparse{r: b.r, c: b.c, values: values, index: index, ptr: ptr, datatype: dt}, nil
}
