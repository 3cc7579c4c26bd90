// SPDX-License-Identifier: MIT

// Package kernel - sparse × sparse kernels.
//
// Shared shape of every kernel here:
//   - Stage 1: validate (nil, equal shapes, pattern compatibility) before
//     touching any column.
//   - Stage 2: per column j, take a fresh token and scatter B (and A when
//     needed) into the workspace.
//   - Stage 3: gather in discovery order (A's stored rows, then B-only rows),
//     evaluate, prune zeros, append to the result column.
//
// Pattern operands: when both operands are patterns the union, union-zero,
// intersection and left kernels compute the result structure without calling
// f. Mixing a pattern with a valued operand is ErrPatternMatrix.
//
// Complexity (all but the full kernels):
//   - Time O(nnzA + nnzB + cols) plus one O(rows) workspace allocation when
//     none is supplied.

package kernel

import (
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// accumulator collects a CSC result column by column.
type accumulator struct {
	index   []int
	values  []any
	ptr     []int
	pattern bool
}

func newAccumulator(cols, capHint int, pattern bool) *accumulator {
	acc := &accumulator{
		index:   make([]int, 0, capHint),
		ptr:     make([]int, cols+1),
		pattern: pattern,
	}
	if !pattern {
		acc.values = make([]any, 0, capHint)
	}

	return acc
}

// add appends (i, v) unless v is zero under cfg.
func (acc *accumulator) add(i int, v any, cfg *Config) {
	if cfg.isZero(v) {
		return
	}
	acc.index = append(acc.index, i)
	acc.values = append(acc.values, v)
}

// mark appends a structural entry (pattern results).
func (acc *accumulator) mark(i int) { acc.index = append(acc.index, i) }

// close ends column j.
func (acc *accumulator) close(j int) { acc.ptr[j+1] = len(acc.index) }

func (acc *accumulator) sparse(rows, cols int, dt scalar.Type) *matrix.Sparse {
	return matrix.WrapCSC(rows, cols, acc.values, acc.index, acc.ptr, dt)
}

// scatter records column j of s under tok in (mark, x).
func scatter(s *matrix.Sparse, j, tok int, mark []int, x []any) {
	idx, ptr, val := s.RowIndex(), s.ColPtr(), s.Values()
	for k := ptr[j]; k < ptr[j+1]; k++ {
		mark[idx[k]] = tok
		if val != nil {
			x[idx[k]] = val[k]
		}
	}
}

// SparseUnion combines two sparse matrices over the union of their patterns
// for operators with f(x, 0) == x and f(0, y) == y.
//
// Behavior highlights:
//   - Both stored: f(a, b). One side stored: the value is copied through
//     cfg.Keep (no f call).
//   - Results that are zero under cfg.IsZero are dropped, so
//     nnz(result) <= nnzA + nnzB.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrPatternMatrix, or the first
//     error returned by f or Keep (the partial result is discarded).
//
// Complexity:
//   - Time O(nnzA + nnzB + cols), Space O(rows + nnzA + nnzB).
func SparseUnion(a, b *matrix.Sparse, fn scalar.Func, cfg *Config) (*matrix.Sparse, error) {
	const tag = "SparseUnion"
	pattern, err := checkSparseSparse(tag, a, b)
	if err != nil {
		return nil, err
	}

	rows, cols := a.Shape()
	ws := cfg.workspace(rows)
	defer ws.release()
	out := newAccumulator(cols, a.Nnz()+b.Nnz(), pattern)
	ai, ap, av := a.RowIndex(), a.ColPtr(), a.Values()
	bi, bp, bv := b.RowIndex(), b.ColPtr(), b.Values()

	var v any
	var i, k, tok int
	for j := 0; j < cols; j++ {
		tok = ws.next()
		scatter(b, j, tok, ws.markB, ws.xb)
		for k = ap[j]; k < ap[j+1]; k++ {
			i = ai[k]
			ws.markA[i] = tok
			if pattern {
				out.mark(i)
				continue
			}
			if ws.markB[i] == tok {
				v, err = fn(av[k], ws.xb[i])
			} else {
				v, err = cfg.keep(av[k])
			}
			if err != nil {
				return nil, kernelErrorf(tag, err)
			}
			out.add(i, v, cfg)
		}
		for k = bp[j]; k < bp[j+1]; k++ {
			i = bi[k]
			if ws.markA[i] == tok {
				continue
			}
			if pattern {
				out.mark(i)
				continue
			}
			if v, err = cfg.keep(bv[k]); err != nil {
				return nil, kernelErrorf(tag, err)
			}
			out.add(i, v, cfg)
		}
		out.close(j)
	}

	return out.sparse(rows, cols, cfg.dataType()), nil
}

// SparseUnionZero combines two sparse matrices over the union of their
// patterns, substituting the structural zero for the missing side:
// f(a, 0) for A-only positions and f(0, b) for B-only positions.
// For operators with f(0, 0) == 0 whose single-sided results are not copies.
//
// Errors and complexity as SparseUnion.
func SparseUnionZero(a, b *matrix.Sparse, fn scalar.Func, cfg *Config) (*matrix.Sparse, error) {
	const tag = "SparseUnionZero"
	pattern, err := checkSparseSparse(tag, a, b)
	if err != nil {
		return nil, err
	}

	rows, cols := a.Shape()
	ws := cfg.workspace(rows)
	defer ws.release()
	zero := cfg.zero()
	out := newAccumulator(cols, a.Nnz()+b.Nnz(), pattern)
	ai, ap, av := a.RowIndex(), a.ColPtr(), a.Values()
	bi, bp, bv := b.RowIndex(), b.ColPtr(), b.Values()

	var v any
	var i, k, tok int
	for j := 0; j < cols; j++ {
		tok = ws.next()
		scatter(b, j, tok, ws.markB, ws.xb)
		for k = ap[j]; k < ap[j+1]; k++ {
			i = ai[k]
			ws.markA[i] = tok
			if pattern {
				out.mark(i)
				continue
			}
			if ws.markB[i] == tok {
				v, err = fn(av[k], ws.xb[i])
			} else {
				v, err = fn(av[k], zero)
			}
			if err != nil {
				return nil, kernelErrorf(tag, err)
			}
			out.add(i, v, cfg)
		}
		for k = bp[j]; k < bp[j+1]; k++ {
			i = bi[k]
			if ws.markA[i] == tok {
				continue
			}
			if pattern {
				out.mark(i)
				continue
			}
			if v, err = fn(zero, bv[k]); err != nil {
				return nil, kernelErrorf(tag, err)
			}
			out.add(i, v, cfg)
		}
		out.close(j)
	}

	return out.sparse(rows, cols, cfg.dataType()), nil
}

// SparseIntersect evaluates f only where both operands store a value, for
// operators with f(x, 0) == f(0, y) == 0. nnz(result) <= min(nnzA, nnzB).
//
// Errors as SparseUnion.
// Complexity: Time O(nnzA + nnzB + cols).
func SparseIntersect(a, b *matrix.Sparse, fn scalar.Func, cfg *Config) (*matrix.Sparse, error) {
	const tag = "SparseIntersect"
	pattern, err := checkSparseSparse(tag, a, b)
	if err != nil {
		return nil, err
	}

	rows, cols := a.Shape()
	ws := cfg.workspace(rows)
	defer ws.release()
	capHint := min(a.Nnz(), b.Nnz())
	out := newAccumulator(cols, capHint, pattern)
	ai, ap, av := a.RowIndex(), a.ColPtr(), a.Values()

	var v any
	var i, k, tok int
	for j := 0; j < cols; j++ {
		tok = ws.next()
		scatter(b, j, tok, ws.markB, ws.xb)
		for k = ap[j]; k < ap[j+1]; k++ {
			i = ai[k]
			if ws.markB[i] != tok {
				continue
			}
			if pattern {
				out.mark(i)
				continue
			}
			if v, err = fn(av[k], ws.xb[i]); err != nil {
				return nil, kernelErrorf(tag, err)
			}
			out.add(i, v, cfg)
		}
		out.close(j)
	}

	return out.sparse(rows, cols, cfg.dataType()), nil
}

// SparseLeft keeps the pattern of A, for operators with f(x, 0) == x and
// f(0, y) == 0 (shift- and modulo-like).
//
// Behavior highlights:
//   - Both stored: f(a, b). A only: a through cfg.Keep. B only: never surfaces.
//   - pattern(result) ⊆ pattern(A).
//
// Errors as SparseUnion.
// Complexity: Time O(nnzA + nnzB + cols).
func SparseLeft(a, b *matrix.Sparse, fn scalar.Func, cfg *Config) (*matrix.Sparse, error) {
	const tag = "SparseLeft"
	pattern, err := checkSparseSparse(tag, a, b)
	if err != nil {
		return nil, err
	}

	rows, cols := a.Shape()
	ws := cfg.workspace(rows)
	defer ws.release()
	out := newAccumulator(cols, a.Nnz(), pattern)
	ai, ap, av := a.RowIndex(), a.ColPtr(), a.Values()

	var v any
	var i, k, tok int
	for j := 0; j < cols; j++ {
		tok = ws.next()
		scatter(b, j, tok, ws.markB, ws.xb)
		for k = ap[j]; k < ap[j+1]; k++ {
			i = ai[k]
			if pattern {
				out.mark(i)
				continue
			}
			if ws.markB[i] == tok {
				v, err = fn(av[k], ws.xb[i])
			} else {
				v, err = cfg.keep(av[k])
			}
			if err != nil {
				return nil, kernelErrorf(tag, err)
			}
			out.add(i, v, cfg)
		}
		out.close(j)
	}

	return out.sparse(rows, cols, cfg.dataType()), nil
}

// fullCell walks every cell of column j, substituting zero for unstored
// operands, and hands each result to emit. f(zero, zero) is evaluated at
// most once per call and cached in *bg.
func fullCell(
	a, b *matrix.Sparse, j int, ws *Workspace, zero any, fn scalar.Func,
	bg *any, haveBG *bool, emit func(i int, v any),
) error {
	tok := ws.next()
	scatter(a, j, tok, ws.markA, ws.xa)
	scatter(b, j, tok, ws.markB, ws.xb)

	var x, y, v any
	var err error
	for i := 0; i < a.Rows(); i++ {
		inA, inB := ws.markA[i] == tok, ws.markB[i] == tok
		if !inA && !inB {
			if !*haveBG {
				if *bg, err = fn(zero, zero); err != nil {
					return err
				}
				*haveBG = true
			}
			emit(i, *bg)
			continue
		}
		x, y = zero, zero
		if inA {
			x = ws.xa[i]
		}
		if inB {
			y = ws.xb[i]
		}
		if v, err = fn(x, y); err != nil {
			return err
		}
		emit(i, v)
	}

	return nil
}

// checkFull validates operands of the full kernels: both must carry values.
func checkFull(tag string, a, b *matrix.Sparse) error {
	if _, err := checkSparseSparse(tag, a, b); err != nil {
		return err
	}

	return checkValued(tag, a)
}

// SparseFull visits every cell, treating unstored operands as zero, and
// returns a dense result. For operators where f(0, 0) != 0 (comparisons
// such as ==, >=).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrPatternMatrix, errors from f.
//
// Complexity:
//   - Time O(rows*cols + nnzA + nnzB), Space O(rows*cols).
func SparseFull(a, b *matrix.Sparse, fn scalar.Func, cfg *Config) (*matrix.Dense, error) {
	const tag = "SparseFull"
	if err := checkFull(tag, a, b); err != nil {
		return nil, err
	}

	rows, cols := a.Shape()
	ws := cfg.workspace(rows)
	defer ws.release()
	zero := cfg.zero()
	data := make([]any, rows*cols)
	var bg any
	var haveBG bool
	for j := 0; j < cols; j++ {
		err := fullCell(a, b, j, ws, zero, fn, &bg, &haveBG, func(i int, v any) {
			data[i*cols+j] = v
		})
		if err != nil {
			return nil, kernelErrorf(tag, err)
		}
	}

	return matrix.NewDenseFrom(rows, cols, data, cfg.dataType())
}

// SparseFullSparse is SparseFull with a sparse result: every cell is
// evaluated and zero results are omitted. Output columns are row-sorted.
//
// Errors as SparseFull.
// Complexity: Time O(rows*cols + nnzA + nnzB), Space O(rows + nnz(result)).
func SparseFullSparse(a, b *matrix.Sparse, fn scalar.Func, cfg *Config) (*matrix.Sparse, error) {
	const tag = "SparseFullSparse"
	if err := checkFull(tag, a, b); err != nil {
		return nil, err
	}

	rows, cols := a.Shape()
	ws := cfg.workspace(rows)
	defer ws.release()
	zero := cfg.zero()
	out := newAccumulator(cols, a.Nnz()+b.Nnz(), false)
	var bg any
	var haveBG bool
	emit := func(i int, v any) { out.add(i, v, cfg) }
	for j := 0; j < cols; j++ {
		if err := fullCell(a, b, j, ws, zero, fn, &bg, &haveBG, emit); err != nil {
			return nil, kernelErrorf(tag, err)
		}
		out.close(j)
	}

	return out.sparse(rows, cols, cfg.dataType()), nil
}
