// SPDX-License-Identifier: MIT

package kernel

import "math"

// Workspace holds the per-row scatter state of the column kernels.
//
//   - markA[i] == token means row i of the current column is stored in A;
//     xa[i] is its value. Same for markB/xb.
//   - Every column starts with a fresh token, so nothing is cleared between
//     columns.
//
// A Workspace must not be shared by concurrent calls.
type Workspace struct {
	markA, markB []int
	xa, xb       []any
	token        int
}

// NewWorkspace returns a workspace sized for rows rows.
func NewWorkspace(rows int) *Workspace {
	w := &Workspace{}
	w.Grow(rows)

	return w
}

// Grow makes room for at least rows rows. Existing marks stay valid.
func (w *Workspace) Grow(rows int) {
	if rows <= len(w.markA) {
		return
	}
	w.markA = append(w.markA, make([]int, rows-len(w.markA))...)
	w.markB = append(w.markB, make([]int, rows-len(w.markB))...)
	w.xa = append(w.xa, make([]any, rows-len(w.xa))...)
	w.xb = append(w.xb, make([]any, rows-len(w.xb))...)
}

// next starts a new column and returns its token.
func (w *Workspace) next() int {
	if w.token == math.MaxInt {
		clear(w.markA)
		clear(w.markB)
		w.token = 0
	}
	w.token++

	return w.token
}

// release drops value references so a reused workspace does not pin the
// previous call's elements.
func (w *Workspace) release() {
	clear(w.xa)
	clear(w.xb)
}
