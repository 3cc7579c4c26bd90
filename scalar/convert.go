// SPDX-License-Identifier: MIT

package scalar

import "fmt"

// ToFloat64 converts a canonical numeric value to float64.
// Booleans map to 0/1; complex values are accepted only when their
// imaginary part is exactly zero.
func ToFloat64(v any) (float64, error) {
	switch x := Canonical(v).(type) {
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case complex128:
		if imag(x) == 0 {
			return real(x), nil
		}
	}

	return 0, fmt.Errorf("ToFloat64(%v): %w", v, ErrNotNumeric)
}

// ToInt64 converts an integer-valued number to int64.
func ToInt64(v any) (int64, error) {
	switch x := Canonical(v).(type) {
	case int64:
		return x, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case float64:
		if x == float64(int64(x)) {
			return int64(x), nil
		}
	}

	return 0, fmt.Errorf("ToInt64(%v): %w", v, ErrNotNumeric)
}

// ToComplex128 converts any numeric value to complex128.
func ToComplex128(v any) (complex128, error) {
	if c, ok := Canonical(v).(complex128); ok {
		return c, nil
	}
	f, err := ToFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("ToComplex128(%v): %w", v, ErrNotNumeric)
	}

	return complex(f, 0), nil
}

// Truthy reports the logical value of v: non-zero numbers are true,
// strings are true when non-empty, Zeroer values are true when not zero.
func Truthy(v any) (bool, error) {
	switch x := Canonical(v).(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	case float64:
		return x != 0, nil
	case int64:
		return x != 0, nil
	case complex128:
		return x != 0, nil
	case string:
		return x != "", nil
	case Zeroer:
		return !x.IsZero(), nil
	}

	return false, fmt.Errorf("Truthy(%v): %w", v, ErrNotNumeric)
}

// Promote converts a and b to a common numeric tag:
// complex128 if either is complex, int64 if both are int64, float64 otherwise.
//
// Errors:
//   - ErrNotNumeric when either value is not a number or a bool.
func Promote(a, b any) (any, any, Type, error) {
	a, b = Canonical(a), Canonical(b)
	ta, tb := TypeOf(a), TypeOf(b)
	if !isNumeric(ta) || !isNumeric(tb) {
		return nil, nil, Mixed, fmt.Errorf("Promote(%s, %s): %w", ta, tb, ErrNotNumeric)
	}

	switch {
	case ta == Complex128 || tb == Complex128:
		ca, _ := ToComplex128(a)
		cb, _ := ToComplex128(b)
		return ca, cb, Complex128, nil
	case ta == Int64 && tb == Int64:
		return a, b, Int64, nil
	default:
		fa, _ := ToFloat64(a)
		fb, _ := ToFloat64(b)
		return fa, fb, Float64, nil
	}
}

// isNumeric reports whether t takes part in numeric promotion.
func isNumeric(t Type) bool {
	return t == Float64 || t == Int64 || t == Bool || t == Complex128
}
