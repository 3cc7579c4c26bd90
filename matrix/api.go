// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - Prefer AsDense/AsSparse over type switches at call sites: they accept
//     either storage format and never copy when the format already matches.

package matrix

import "github.com/katalvlaran/lvmatrix/scalar"

// NewZeros returns a new float64 zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// ZerosLike returns a Dense of m's shape filled with the typed zero of m's datatype.
// Errors: ErrNilMatrix.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDenseOf(m.Rows(), m.Cols(), m.DataType())
}

// CloneMatrix returns a deep copy of m, same storage format.
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// AsDense returns m as a *Dense, materializing sparse storage when needed.
// Errors: ErrNilMatrix, or the first At error of an unknown implementation.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	switch x := m.(type) {
	case *Dense:
		return x, nil
	case *Sparse:
		return x.ToDense(), nil
	}

	r, c := m.Rows(), m.Cols()
	data := make([]any, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("AsDense", err)
			}
			data[i*c+j] = v
		}
	}

	return &Dense{r: r, c: c, data: data, datatype: m.DataType()}, nil
}

// AsSparse returns m as a *Sparse, compressing dense storage with the
// default zero policy.
func AsSparse(m Matrix) (*Sparse, error) {
	if s, ok := m.(*Sparse); ok && s != nil {
		return s, nil
	}
	d, err := AsDense(m)
	if err != nil {
		return nil, err
	}

	return SparseFromDense(d, scalar.DefaultTolerance.IsZero)
}

// Equal reports whether a and b have the same shape and every cell compares
// equal under tol (floats and complex values) or == (everything else).
// Storage formats may differ.
func Equal(a, b Matrix, tol scalar.Tolerance) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := AsDense(a)
	if err != nil {
		return false
	}
	db, err := AsDense(b)
	if err != nil {
		return false
	}
	for k := range da.data {
		if !cellEqual(da.data[k], db.data[k], tol) {
			return false
		}
	}

	return true
}

// cellEqual compares two element values; numbers are promoted first.
func cellEqual(x, y any, tol scalar.Tolerance) bool {
	px, py, t, err := scalar.Promote(x, y)
	if err != nil {
		return x == y
	}
	switch t {
	case scalar.Float64:
		return tol.EqualFloat(px.(float64), py.(float64))
	case scalar.Complex128:
		return tol.EqualComplex(px.(complex128), py.(complex128))
	default:
		return px == py
	}
}
