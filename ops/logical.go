// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/lvmatrix/elementwise"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// Logical operators. Or and Xor are Identity-class: a side that is missing
// contributes its truth value through Keep, so stored numbers still come
// back as booleans.
var (
	OrOperator = elementwise.Operator{
		Name:     NameOr,
		Class:    elementwise.Identity,
		Dispatch: defaultRegistry,
		Keep:     keepTruthy,
	}
	XorOperator = elementwise.Operator{
		Name:     NameXor,
		Class:    elementwise.Identity,
		Dispatch: defaultRegistry,
		Keep:     keepTruthy,
	}
	AndOperator = elementwise.Operator{
		Name:     NameAnd,
		Class:    elementwise.ZeroPreserving,
		Dispatch: defaultRegistry,
	}
)

// Or returns the elementwise logical OR of a and b.
// Two sparse operands visit only their stored entries.
func Or(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(OrOperator, a, b, opts...)
}

// Xor returns the elementwise logical exclusive OR of a and b.
func Xor(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(XorOperator, a, b, opts...)
}

// And returns the elementwise logical AND of a and b.
// A sparse operand bounds the result to its stored entries.
func And(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(AndOperator, a, b, opts...)
}

func keepTruthy(v any) (any, error) { return scalar.Truthy(v) }

// logical registers f over booleans and, through scalar.Truthy, over any
// pair of values with a truth value.
func logical(r *scalar.Registry, name string, f func(x, y bool) bool) {
	r.Register(name, scalar.Bool, scalar.Bool, scalar.Bool, func(a, b any) (any, error) {
		x, okx := a.(bool)
		y, oky := b.(bool)
		if okx && oky {
			return f(x, y), nil
		}
		return truthyPair(name, a, b, f)
	})
	r.Register(name, scalar.Any, scalar.Any, scalar.Bool, func(a, b any) (any, error) {
		return truthyPair(name, a, b, f)
	})
}

func truthyPair(name string, a, b any, f func(x, y bool) bool) (any, error) {
	x, err := scalar.Truthy(a)
	if err != nil {
		return nil, opErrorf(name, err)
	}
	y, err := scalar.Truthy(b)
	if err != nil {
		return nil, opErrorf(name, err)
	}

	return f(x, y), nil
}

func registerLogical(r *scalar.Registry) {
	logical(r, NameOr, func(x, y bool) bool { return x || y })
	logical(r, NameXor, func(x, y bool) bool { return x != y })
	logical(r, NameAnd, func(x, y bool) bool { return x && y })
}
