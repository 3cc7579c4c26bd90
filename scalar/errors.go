// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// All functions return these sentinels (possibly wrapped with %w); callers
// match them via errors.Is.

package scalar

import "errors"

var (
	// ErrKernelNotFound is returned when no registered signature matches the
	// operator name and operand type tags.
	ErrKernelNotFound = errors.New("scalar: no matching kernel")

	// ErrNotNumeric indicates that a value cannot be converted to a number.
	ErrNotNumeric = errors.New("scalar: value is not numeric")
)
