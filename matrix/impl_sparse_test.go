package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/scalar"
)

// TestNewSparseCSC_Invariants exercises every structural check.
func TestNewSparseCSC_Invariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		r, c   int
		values []any
		index  []int
		ptr    []int
		want   error
	}{
		{"zero rows", 0, 2, nil, []int{}, []int{0, 0, 0}, matrix.ErrInvalidDimensions},
		{"short ptr", 2, 2, []any{}, []int{}, []int{0, 0}, matrix.ErrInvalidStructure},
		{"ptr not starting at zero", 2, 1, []any{1.0}, []int{0}, []int{1, 1}, matrix.ErrInvalidStructure},
		{"ptr end != nnz", 2, 1, []any{1.0}, []int{0}, []int{0, 2}, matrix.ErrInvalidStructure},
		{"decreasing ptr", 2, 2, []any{1.0, 2.0}, []int{0, 1}, []int{0, 3, 2}, matrix.ErrInvalidStructure},
		{"interior ptr past nnz", 2, 3, []any{1.0, 2.0}, []int{0, 1}, []int{0, 3, 1, 2}, matrix.ErrInvalidStructure},
		{"negative interior ptr", 2, 2, []any{1.0, 2.0}, []int{0, 1}, []int{0, -1, 2}, matrix.ErrInvalidStructure},
		{"values length", 2, 1, []any{1.0}, []int{0, 1}, []int{0, 2}, matrix.ErrInvalidStructure},
		{"row out of range", 2, 1, []any{1.0}, []int{2}, []int{0, 1}, matrix.ErrInvalidStructure},
		{"negative row", 2, 1, []any{1.0}, []int{-1}, []int{0, 1}, matrix.ErrInvalidStructure},
		{"duplicate row", 3, 1, []any{1.0, 2.0}, []int{1, 1}, []int{0, 2}, matrix.ErrInvalidStructure},
		{"unsorted ok", 3, 1, []any{1.0, 2.0}, []int{2, 0}, []int{0, 2}, nil},
		{"pattern ok", 3, 1, nil, []int{2, 0}, []int{0, 2}, nil},
		{"same row other column ok", 2, 2, []any{1.0, 2.0}, []int{0, 0}, []int{0, 1, 2}, nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var err error
			require.NotPanics(t, func() {
				_, err = matrix.NewSparseCSC(tc.r, tc.c, tc.values, tc.index, tc.ptr, scalar.Float64)
			})
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSparseAccessors covers At, Has, Nnz and datatype handling.
func TestSparseAccessors(t *testing.T) {
	s := sample3x3(t)

	require.Equal(t, 5, s.Nnz())
	require.Equal(t, scalar.Float64, s.DataType())
	require.False(t, s.IsPattern())

	v, err := s.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = s.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	_, err = s.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.True(t, s.Has(0, 2))
	assert.False(t, s.Has(1, 2))
	assert.False(t, s.Has(-1, 0))
}

// TestNewSparseEmpty checks the empty constructor.
func TestNewSparseEmpty(t *testing.T) {
	s, err := matrix.NewSparse(2, 3)
	require.NoError(t, err)
	require.Equal(t, 0, s.Nnz())
	require.Equal(t, []int{0, 0, 0, 0}, s.ColPtr())

	_, err = matrix.NewSparse(2, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestSparsePattern checks pattern matrices report structure as booleans.
func TestSparsePattern(t *testing.T) {
	p := sample3x3(t).Pattern()
	require.True(t, p.IsPattern())
	require.Nil(t, p.Values())
	require.Equal(t, 5, p.Nnz())

	v, err := p.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, true, v)
	v, err = p.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, false, v)

	d := p.ToDense()
	require.Equal(t, scalar.Bool, d.DataType())
	require.Equal(t, []any{true, false, true, false, true, false, true, false, true}, d.Data())
}

// TestSparseToDenseAndBack checks Dense(Sparse(M)) == M and the reverse.
func TestSparseToDenseAndBack(t *testing.T) {
	s := sample3x3(t)
	d := s.ToDense()
	require.Equal(t, []any{1.0, 0.0, 4.0, 0.0, 3.0, 0.0, 2.0, 0.0, 5.0}, d.Data())

	back, err := matrix.SparseFromDense(d, nil)
	require.NoError(t, err)
	require.Equal(t, s.Nnz(), back.Nnz())
	require.True(t, matrix.Equal(s, back, scalar.DefaultTolerance))
	require.Equal(t, d.Data(), back.ToDense().Data())
}

// TestSparseClone ensures deep copies.
func TestSparseClone(t *testing.T) {
	s := sample3x3(t)
	c := s.Clone().(*matrix.Sparse)
	c.Values()[0] = 99.0

	v, _ := s.At(0, 0)
	require.Equal(t, 1.0, v)
}

// TestSparseTranspose checks shape, values and sorted output columns.
func TestSparseTranspose(t *testing.T) {
	s := sample3x3(t)
	tr := s.Transpose()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, s.Nnz(), tr.Nnz())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a, _ := s.At(i, j)
			b, _ := tr.At(j, i)
			require.Equal(t, a, b, "(%d,%d)", i, j)
		}
	}
	// Column 0 of the transpose is row 0 of s: columns 0 and 2, in order.
	require.Equal(t, []int{0, 2}, tr.RowIndex()[tr.ColPtr()[0]:tr.ColPtr()[1]])
}

// TestSparseDo checks storage-order traversal and early stop.
func TestSparseDo(t *testing.T) {
	s := sample3x3(t)
	var rows []int
	s.Do(func(i, _ int, _ any) bool {
		rows = append(rows, i)
		return true
	})
	require.Equal(t, []int{0, 2, 1, 2, 0}, rows)

	n := 0
	s.Do(func(_, _ int, _ any) bool {
		n++
		return false
	})
	require.Equal(t, 1, n)
	require.Contains(t, s.String(), "nnz=5")
}

// TestNewPattern builds a structure-only matrix and checks its boolean view.
func TestNewPattern(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewPattern(2, 2, []int{1, 0}, []int{0, 1, 2})
	require.NoError(t, err)
	require.True(t, p.IsPattern())
	require.Equal(t, 2, p.Nnz())
	require.Nil(t, p.Values())
	require.Equal(t, [][]any{{false, true}, {true, false}}, p.ToDense().ToRows())

	_, err = matrix.NewPattern(2, 1, []int{0, 0}, []int{0, 2})
	require.ErrorIs(t, err, matrix.ErrInvalidStructure)
}
