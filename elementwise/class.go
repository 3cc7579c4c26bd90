// SPDX-License-Identifier: MIT

package elementwise

import "fmt"

// ZeroClass describes how an operator behaves on the structural zero.
// It decides which positions a kernel must visit. The zero value is invalid.
type ZeroClass int

const (
	_ ZeroClass = iota

	// Identity: f(x, 0) == x and f(0, y) == y (addition, logical or).
	Identity

	// ZeroPreserving: f(x, 0) == 0 and f(0, y) == 0 (multiplication, and).
	ZeroPreserving

	// General: f(0, 0) == 0 but single-sided results are not copies
	// (subtraction, !=).
	General

	// Full: f(0, 0) may be non-zero; every cell is visited (==, >=, <=).
	Full

	// LeftIdentity: f(x, 0) == x and f(0, y) == 0 (shifts, modulo).
	LeftIdentity
)

// String returns the class name.
func (c ZeroClass) String() string {
	switch c {
	case Identity:
		return "identity"
	case ZeroPreserving:
		return "zero-preserving"
	case General:
		return "general"
	case Full:
		return "full"
	case LeftIdentity:
		return "left-identity"
	default:
		return fmt.Sprintf("ZeroClass(%d)", int(c))
	}
}

// Format is the storage format of an operand.
type Format int

const (
	_ Format = iota
	FormatScalar
	FormatDense
	FormatSparse
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatScalar:
		return "scalar"
	case FormatDense:
		return "dense"
	case FormatSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}
