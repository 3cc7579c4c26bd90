// SPDX-License-Identifier: MIT

// Package scalar - runtime type tags.
//
// Purpose:
//   - Tag element values so kernels can be resolved once per call instead of
//     once per element.
//   - Canonicalize Go's many numeric kinds into the few the engine dispatches on.

package scalar

import (
	"fmt"
	"math"
)

// Type is the runtime tag of an element value.
// The zero value is Mixed: "no homogeneous type is known".
type Type int

// Supported type tags.
const (
	Mixed Type = iota
	Float64
	Int64
	Bool
	Complex128
	String
	Other // any value outside the tags above (opaque element types)
	Any   // wildcard, valid only inside dispatch signatures
)

// String returns a human-readable name for the tag.
func (t Type) String() string {
	switch t {
	case Mixed:
		return "mixed"
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	case Complex128:
		return "complex128"
	case String:
		return "string"
	case Other:
		return "other"
	case Any:
		return "any"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// TypeOf returns the tag of a canonical value.
// Non-canonical numeric kinds (int, float32, ...) report Other; pass them
// through Canonical first.
// Complexity: O(1).
func TypeOf(v any) Type {
	switch v.(type) {
	case float64:
		return Float64
	case int64:
		return Int64
	case bool:
		return Bool
	case complex128:
		return Complex128
	case string:
		return String
	default:
		return Other
	}
}

// Canonical maps Go's numeric kinds onto the dispatch tags:
// signed and unsigned integers become int64 (unsigned values above
// math.MaxInt64 become float64 rather than wrapping), float32 becomes float64,
// complex64 becomes complex128. Every other value is returned unchanged.
func Canonical(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		if uint64(x) > math.MaxInt64 {
			return float64(x)
		}
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return float64(x)
		}
		return int64(x)
	case float32:
		return float64(x)
	case complex64:
		return complex128(x)
	default:
		return v
	}
}

// Zero returns the structural zero for tag t.
// Mixed, Other and Any fall back to float64(0).
func Zero(t Type) any {
	switch t {
	case Int64:
		return int64(0)
	case Bool:
		return false
	case Complex128:
		return complex128(0)
	case String:
		return ""
	default:
		return float64(0)
	}
}

// Unify returns a when both tags are the same concrete (non-Mixed) tag and
// Mixed otherwise.
func Unify(a, b Type) Type {
	if a == b && a != Mixed && a != Any {
		return a
	}

	return Mixed
}

// Infer returns the common tag of all values, or Mixed when they differ or
// the slice is empty.
// Complexity: O(n).
func Infer(values []any) Type {
	if len(values) == 0 {
		return Mixed
	}
	t := TypeOf(values[0])
	if t == Other {
		return Mixed
	}
	for _, v := range values[1:] {
		if TypeOf(v) != t {
			return Mixed
		}
	}

	return t
}
