// SPDX-License-Identifier: MIT

// Package scalar - tolerant equality and zero testing.
//
// Purpose:
//   - Decide whether a computed value counts as the structural zero so that
//     sparse kernels can prune it.
//   - Share one tolerance policy between zero pruning and float comparisons.
//
// Float comparisons delegate to gonum's EqualWithinAbsOrRel so the
// relative/absolute semantics match the rest of the gonum ecosystem.

package scalar

import (
	"math"
	"math/cmplx"

	gscalar "gonum.org/v1/gonum/floats/scalar"
)

// Default tolerances.
const (
	// DefaultRelTol is the relative tolerance used by DefaultTolerance.
	DefaultRelTol = 1e-12

	// DefaultAbsTol is the absolute tolerance used by DefaultTolerance.
	DefaultAbsTol = 1e-15
)

// DefaultTolerance is the policy used when a caller configures nothing.
var DefaultTolerance = Tolerance{RelTol: DefaultRelTol, AbsTol: DefaultAbsTol}

// Zeroer is implemented by opaque element types that know whether they are
// zero (big decimals, fractions, unit values, ...).
type Zeroer interface {
	IsZero() bool
}

// Tolerance holds the relative and absolute tolerances of a numeric policy.
// The zero value compares exactly.
type Tolerance struct {
	RelTol float64 // relative tolerance, >= 0
	AbsTol float64 // absolute tolerance, >= 0
}

// EqualFloat reports whether a and b are equal within the absolute or the
// relative tolerance.
// NaN is never equal to anything; equal infinities are equal.
// Complexity: O(1).
func (t Tolerance) EqualFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return gscalar.EqualWithinAbsOrRel(a, b, t.AbsTol, t.RelTol)
}

// EqualComplex compares real and imaginary parts independently.
func (t Tolerance) EqualComplex(a, b complex128) bool {
	return t.EqualFloat(real(a), real(b)) && t.EqualFloat(imag(a), imag(b))
}

// IsZero reports whether v counts as zero under this tolerance.
//
// Behavior highlights:
//   - nil and false are zero; int64 compares exactly.
//   - float64/complex128 use EqualFloat against 0 (NaN is never zero).
//   - Zeroer values decide for themselves; every other value is non-zero.
//
// Complexity:
//   - Time O(1), Space O(1).
func (t Tolerance) IsZero(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return t.EqualFloat(x, 0)
	case int64:
		return x == 0
	case bool:
		return !x
	case complex128:
		if cmplx.IsNaN(x) {
			return false
		}
		return t.EqualComplex(x, 0)
	case string:
		return x == ""
	case Zeroer:
		return x.IsZero()
	default:
		return false
	}
}
