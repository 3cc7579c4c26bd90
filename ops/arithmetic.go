// SPDX-License-Identifier: MIT

package ops

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/lvmatrix/elementwise"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// Arithmetic operators. The float64 block kernels run on the dense paths
// when both operands are float64-tagged.
var (
	AddOperator = elementwise.Operator{
		Name:     NameAdd,
		Class:    elementwise.Identity,
		Dispatch: defaultRegistry,
		Block:    addBlock,
	}
	SubtractOperator = elementwise.Operator{
		Name:     NameSubtract,
		Class:    elementwise.General,
		Dispatch: defaultRegistry,
		Block:    subtractBlock,
	}
	DotMultiplyOperator = elementwise.Operator{
		Name:     NameDotMultiply,
		Class:    elementwise.ZeroPreserving,
		Dispatch: defaultRegistry,
		Block:    vecmath.MulBlock,
	}
	ModOperator = elementwise.Operator{
		Name:     NameMod,
		Class:    elementwise.LeftIdentity,
		Dispatch: defaultRegistry,
	}
	LeftShiftOperator = elementwise.Operator{
		Name:     NameLeftShift,
		Class:    elementwise.LeftIdentity,
		Dispatch: defaultRegistry,
	}
)

// Add returns a + b elementwise.
func Add(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(AddOperator, a, b, opts...)
}

// Subtract returns a - b elementwise.
// Missing sparse entries take part as zeros, so S - S is a sparse union.
func Subtract(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(SubtractOperator, a, b, opts...)
}

// DotMultiply returns the elementwise (Hadamard) product of a and b.
func DotMultiply(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(DotMultiplyOperator, a, b, opts...)
}

// Mod returns the floored modulus of a by b elementwise.
//
// Behavior highlights:
//   - The result takes the sign of the divisor: Mod(-7, 3) == 2.
//   - Mod(x, 0) == x, which makes the operator left-identity and keeps the
//     sparsity pattern of a sparse left operand.
//   - Complex operands fail with ErrComplexUnsupported.
func Mod(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(ModOperator, a, b, opts...)
}

// LeftShift returns a << b elementwise over integers.
//
// Behavior highlights:
//   - Float operands must be integer-valued (ErrNotInteger otherwise).
//   - A zero left operand yields 0 for any count.
//   - Otherwise a negative count fails with ErrNegativeShift; counts >= 64
//     yield 0.
func LeftShift(a, b any, opts ...elementwise.Option) (any, error) {
	return elementwise.Apply(LeftShiftOperator, a, b, opts...)
}

func addBlock(dst, a, b []float64) {
	copy(dst, a)
	vecmath.AddBlockInPlace(dst, b)
}

func subtractBlock(dst, a, b []float64) {
	vecmath.ScaleBlock(dst, b, -1)
	vecmath.AddBlockInPlace(dst, a)
}

// floorMod is the floored float modulus with floorMod(x, 0) == x.
func floorMod(x, y float64) float64 {
	if y == 0 {
		return x
	}

	return x - y*math.Floor(x/y)
}

// floorModInt is the integer floorMod.
func floorModInt(x, y int64) int64 {
	if y == 0 {
		return x
	}
	m := x % y
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}

	return m
}

// shiftLeft applies x << n for a non-negative count.
// A zero x yields 0 for every count, so the left-identity contract holds
// whichever cells the kernel visits.
func shiftLeft(name string, x, n int64) (any, error) {
	if x == 0 {
		return int64(0), nil
	}
	if n < 0 {
		return nil, opErrorf(name, ErrNegativeShift)
	}
	if n >= 64 {
		return int64(0), nil
	}

	return x << uint(n), nil
}

func registerArithmetic(r *scalar.Registry) {
	numeric{
		f64:  func(x, y float64) (any, error) { return x + y, nil },
		i64:  func(x, y int64) (any, error) { return x + y, nil },
		c128: func(x, y complex128) (any, error) { return x + y, nil },
	}.register(r, NameAdd)

	numeric{
		f64:  func(x, y float64) (any, error) { return x - y, nil },
		i64:  func(x, y int64) (any, error) { return x - y, nil },
		c128: func(x, y complex128) (any, error) { return x - y, nil },
	}.register(r, NameSubtract)

	numeric{
		f64:  func(x, y float64) (any, error) { return x * y, nil },
		i64:  func(x, y int64) (any, error) { return x * y, nil },
		c128: func(x, y complex128) (any, error) { return x * y, nil },
	}.register(r, NameDotMultiply)

	numeric{
		f64: func(x, y float64) (any, error) { return floorMod(x, y), nil },
		i64: func(x, y int64) (any, error) { return floorModInt(x, y), nil },
	}.register(r, NameMod)

	// Shifts are integer-only: every pair goes through ToInt64.
	r.Register(NameLeftShift, scalar.Int64, scalar.Int64, scalar.Int64, func(a, b any) (any, error) {
		x, okx := a.(int64)
		n, okn := b.(int64)
		if okx && okn {
			return shiftLeft(NameLeftShift, x, n)
		}
		return shiftAny(a, b)
	})
	r.Register(NameLeftShift, scalar.Any, scalar.Any, scalar.Int64, shiftAny)
}

func shiftAny(a, b any) (any, error) {
	if scalar.TypeOf(scalar.Canonical(a)) == scalar.Complex128 {
		return nil, opErrorf(NameLeftShift, ErrComplexUnsupported)
	}
	x, err := scalar.ToInt64(a)
	if err != nil {
		return nil, opErrorf(NameLeftShift, ErrNotInteger)
	}
	if x == 0 {
		return int64(0), nil
	}
	if scalar.TypeOf(scalar.Canonical(b)) == scalar.Complex128 {
		return nil, opErrorf(NameLeftShift, ErrComplexUnsupported)
	}
	n, err := scalar.ToInt64(b)
	if err != nil {
		return nil, opErrorf(NameLeftShift, ErrNotInteger)
	}

	return shiftLeft(NameLeftShift, x, n)
}
