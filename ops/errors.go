// SPDX-License-Identifier: MIT
// Package ops: sentinel error set.

package ops

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperator is returned by Lookup for an unregistered name.
	ErrUnknownOperator = errors.New("ops: unknown operator")

	// ErrComplexUnsupported indicates an operation with no meaning for
	// complex operands (ordering, modulo, shifts).
	ErrComplexUnsupported = errors.New("ops: operation undefined for complex values")

	// ErrNotInteger indicates a shift operand that is not integer-valued.
	ErrNotInteger = errors.New("ops: value is not an integer")

	// ErrNegativeShift indicates a negative shift count.
	ErrNegativeShift = errors.New("ops: negative shift count")
)

// opErrorf wraps err with the operator name.
func opErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}
