// SPDX-License-Identifier: MIT
// Package elementwise: sentinel error set.
// All functions return these sentinels (possibly wrapped with an op tag);
// tests check them via errors.Is. Dimension errors come from package matrix
// (matrix.ErrDimensionMismatch) and dispatch errors from package scalar
// (scalar.ErrKernelNotFound).

package elementwise

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCombination is returned when no kernel exists for a
	// (class, left format, right format) triple, or the operator carries no
	// scalar kernel at all.
	ErrUnsupportedCombination = errors.New("elementwise: unsupported combination")

	// ErrNilOperand indicates a nil operand (untyped nil or a nil matrix pointer).
	ErrNilOperand = errors.New("elementwise: nil operand")

	// ErrUnsupportedOperand indicates an operand Apply cannot classify or convert.
	ErrUnsupportedOperand = errors.New("elementwise: unsupported operand type")
)

// applyErrorf wraps err with the operator name, preserving the sentinel.
func applyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
