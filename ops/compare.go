// SPDX-License-Identifier: MIT

package ops

import (
	"math"

	"github.com/katalvlaran/lvmatrix/elementwise"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// Comparison operators. Float comparisons use scalar.DefaultTolerance, so
// values within rounding error of each other are equal (and neither is
// larger). Strings compare lexically.
var (
	EqualOperator     = compareOperator(NameEqual, elementwise.Full)
	UnequalOperator   = compareOperator(NameUnequal, elementwise.General)
	LargerOperator    = compareOperator(NameLarger, elementwise.Full)
	SmallerOperator   = compareOperator(NameSmaller, elementwise.Full)
	LargerEqOperator  = compareOperator(NameLargerEq, elementwise.Full)
	SmallerEqOperator = compareOperator(NameSmallerEq, elementwise.Full)
)

func compareOperator(name string, class elementwise.ZeroClass) elementwise.Operator {
	return elementwise.Operator{Name: name, Class: class, Dispatch: defaultRegistry}
}

// Equal reports a == b elementwise. Every cell is visited: Equal(0, 0) is true.
func Equal(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(EqualOperator, a, b, opts...)
}

// Unequal reports a != b elementwise; unstored pairs stay false.
func Unequal(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(UnequalOperator, a, b, opts...)
}

// Larger reports a > b elementwise.
func Larger(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(LargerOperator, a, b, opts...)
}

// Smaller reports a < b elementwise.
func Smaller(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(SmallerOperator, a, b, opts...)
}

// LargerEq reports a >= b elementwise.
func LargerEq(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(LargerEqOperator, a, b, opts...)
}

// SmallerEq reports a <= b elementwise.
func SmallerEq(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(SmallerEqOperator, a, b, opts...)
}

// ordering maps a three-way comparison result (-1, 0, +1) to a boolean.
type ordering func(c int) bool

// cmpFloat compares within the default tolerance. ok is false when either
// value is NaN (unordered).
func cmpFloat(x, y float64) (c int, ok bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, false
	}
	switch {
	case scalar.DefaultTolerance.EqualFloat(x, y):
		return 0, true
	case x < y:
		return -1, true
	default:
		return 1, true
	}
}

func cmpInt(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func cmpString(x, y string) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// ordered registers an ordering comparison; complex operands are rejected.
// A NaN operand makes every ordering false.
func ordered(r *scalar.Registry, name string, f ordering) {
	numeric{
		out: scalar.Bool,
		f64: func(x, y float64) (any, error) {
			c, ok := cmpFloat(x, y)
			return ok && f(c), nil
		},
		i64: func(x, y int64) (any, error) { return f(cmpInt(x, y)), nil },
		str: func(x, y string) (any, error) { return f(cmpString(x, y)), nil },
	}.register(r, name)
}

// equality registers Equal (want == true) or Unequal (want == false).
func equality(r *scalar.Registry, name string, want bool) {
	numeric{
		out: scalar.Bool,
		f64: func(x, y float64) (any, error) {
			c, ok := cmpFloat(x, y)
			return (ok && c == 0) == want, nil
		},
		i64: func(x, y int64) (any, error) { return (x == y) == want, nil },
		c128: func(x, y complex128) (any, error) {
			return scalar.DefaultTolerance.EqualComplex(x, y) == want, nil
		},
		str: func(x, y string) (any, error) { return (x == y) == want, nil },
	}.register(r, name)
	r.Register(name, scalar.Bool, scalar.Bool, scalar.Bool, func(a, b any) (any, error) {
		return (a == b) == want, nil
	})
}

func registerCompare(r *scalar.Registry) {
	equality(r, NameEqual, true)
	equality(r, NameUnequal, false)
	ordered(r, NameLarger, func(c int) bool { return c > 0 })
	ordered(r, NameSmaller, func(c int) bool { return c < 0 })
	ordered(r, NameLargerEq, func(c int) bool { return c >= 0 })
	ordered(r, NameSmallerEq, func(c int) bool { return c <= 0 })
}
