// SPDX-License-Identifier: MIT

// Package ops - default kernel registry.
//
// Purpose:
//   - Hold the scalar kernels of every operator in one scalar.Registry.
//   - Register one exact kernel per homogeneous numeric tag and one promoting
//     (Any, Any) fallback per operator, so heterogeneous operands still
//     resolve without per-element type switches in the hot path.

package ops

import "github.com/katalvlaran/lvmatrix/scalar"

// Operator names as registered in the default registry.
const (
	NameOr          = "or"
	NameXor         = "xor"
	NameAnd         = "and"
	NameAdd         = "add"
	NameSubtract    = "subtract"
	NameDotMultiply = "dotMultiply"
	NameMod         = "mod"
	NameLeftShift   = "leftShift"
	NameEqual       = "equal"
	NameUnequal     = "unequal"
	NameLarger      = "larger"
	NameSmaller     = "smaller"
	NameLargerEq    = "largerEq"
	NameSmallerEq   = "smallerEq"
)

var defaultRegistry = scalar.NewRegistry()

func init() {
	registerLogical(defaultRegistry)
	registerArithmetic(defaultRegistry)
	registerCompare(defaultRegistry)
}

// Registry returns the registry backing every operator of this package.
// Signatures registered on it are visible to subsequent calls.
func Registry() *scalar.Registry { return defaultRegistry }

// numeric bundles the typed kernels of one operator. A nil member means the
// operator is undefined for that tag; int64 falls back to float64 when its
// kernel is missing.
type numeric struct {
	f64  func(x, y float64) (any, error)
	i64  func(x, y int64) (any, error)
	c128 func(x, y complex128) (any, error)
	str  func(x, y string) (any, error)
	out  scalar.Type // result tag; Mixed means "same as the operands"
}

// resultTag returns the declared result tag for operands tagged t.
func (k numeric) resultTag(t scalar.Type) scalar.Type {
	if k.out == scalar.Mixed {
		return t
	}

	return k.out
}

// register installs the exact kernels of k and the promoting fallback.
//
// Implementation:
//   - Exact kernels unbox with comma-ok and defer to the fallback when a
//     value does not carry the tag the signature promised.
//   - The fallback runs scalar.Promote and picks the widest kernel.
func (k numeric) register(r *scalar.Registry, name string) {
	promoted := k.promoted(name)

	if k.f64 != nil {
		r.Register(name, scalar.Float64, scalar.Float64, k.resultTag(scalar.Float64), func(a, b any) (any, error) {
			x, okx := a.(float64)
			y, oky := b.(float64)
			if !okx || !oky {
				return promoted(a, b)
			}
			return k.f64(x, y)
		})
	}
	if k.i64 != nil {
		r.Register(name, scalar.Int64, scalar.Int64, k.resultTag(scalar.Int64), func(a, b any) (any, error) {
			x, okx := a.(int64)
			y, oky := b.(int64)
			if !okx || !oky {
				return promoted(a, b)
			}
			return k.i64(x, y)
		})
	}
	if k.c128 != nil {
		r.Register(name, scalar.Complex128, scalar.Complex128, k.resultTag(scalar.Complex128), func(a, b any) (any, error) {
			x, okx := a.(complex128)
			y, oky := b.(complex128)
			if !okx || !oky {
				return promoted(a, b)
			}
			return k.c128(x, y)
		})
	}
	if k.str != nil {
		r.Register(name, scalar.String, scalar.String, k.resultTag(scalar.String), func(a, b any) (any, error) {
			x, okx := a.(string)
			y, oky := b.(string)
			if !okx || !oky {
				return promoted(a, b)
			}
			return k.str(x, y)
		})
	}
	r.Register(name, scalar.Any, scalar.Any, k.out, promoted)
}

// promoted returns the (Any, Any) kernel of k.
func (k numeric) promoted(name string) scalar.Func {
	return func(a, b any) (any, error) {
		x, y, t, err := scalar.Promote(a, b)
		if err != nil {
			return nil, opErrorf(name, err)
		}

		switch t {
		case scalar.Complex128:
			if k.c128 == nil {
				return nil, opErrorf(name, ErrComplexUnsupported)
			}
			return k.c128(x.(complex128), y.(complex128))
		case scalar.Int64:
			if k.i64 != nil {
				return k.i64(x.(int64), y.(int64))
			}
			x, _ = scalar.ToFloat64(x)
			y, _ = scalar.ToFloat64(y)
		}

		return k.f64(x.(float64), y.(float64))
	}
}
