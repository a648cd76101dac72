package matrix

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustRows builds a matrix from literal rows or fails the test.
func mustRows(t *testing.T, rows ...[]float64) *Matrix {
	t.Helper()
	m, err := FromRows(rows)
	require.NoError(t, err)
	return m
}

// panicErr runs f and returns the error value it panicked with.
func panicErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	f()
	return nil
}

func TestNew(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := New(data, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, m.At(1, 2))

	// The input slice is copied.
	data[0] = 100
	assert.Equal(t, 1.0, m.At(0, 0))

	_, err = New(data, 4, 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestConstructors(t *testing.T) {
	z := Zeros(3, 2)
	assert.Equal(t, 6, z.Len())
	assert.Equal(t, 0.0, z.Sum())

	o := Ones(2, 2)
	assert.Equal(t, 4.0, o.Sum())

	r := RowFromSlice([]float64{1, 2, 3})
	rows, cols := r.Dims()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 3, cols)

	zl := ZerosLike(mustRows(t, []float64{1, 2}, []float64{3, 4}, []float64{5, 6}))
	assert.True(t, zl.Equal(Zeros(3, 2)))
}

func TestRand_Range(t *testing.T) {
	m := RandWith(rand.New(rand.NewPCG(1, 2)), 20, 20)
	for v := range m.Values() {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}

	// Package source still yields values in range.
	for v := range Rand(4, 4).Values() {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestRandWith_Seeded(t *testing.T) {
	a := RandWith(rand.New(rand.NewPCG(7, 7)), 3, 3)
	b := RandWith(rand.New(rand.NewPCG(7, 7)), 3, 3)
	assert.True(t, a.Equal(b))
}

func TestDot(t *testing.T) {
	a := mustRows(t, []float64{5, 4}, []float64{4, 6}, []float64{7, 3})
	b := mustRows(t, []float64{1, 2, 3}, []float64{4, 5, 1})
	want := mustRows(t,
		[]float64{21, 30, 19},
		[]float64{28, 38, 18},
		[]float64{19, 29, 24},
	)

	got := a.Dot(b)
	assert.True(t, got.Equal(want), "got\n%v", got)

	// Operands are untouched.
	assert.Equal(t, 5.0, a.At(0, 0))
	assert.Equal(t, 1.0, b.At(0, 0))
}

func TestDot_ShapeMismatch(t *testing.T) {
	a := Zeros(2, 3)
	b := Zeros(2, 3)
	err := panicErr(t, func() { a.Dot(b) })
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDot_ZeroRows(t *testing.T) {
	got := Zeros(0, 3).Dot(Ones(3, 2))
	rows, cols := got.Dims()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 2, cols)
}

func TestDot_Associative(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 20; i++ {
		n, k, p, q := 1+rng.IntN(5), 1+rng.IntN(5), 1+rng.IntN(5), 1+rng.IntN(5)
		a := RandWith(rng, n, k)
		b := RandWith(rng, k, p)
		c := RandWith(rng, p, q)

		left := a.Dot(b).Dot(c)
		right := a.Dot(b.Dot(c))
		assert.True(t, left.EqualApprox(right, 1e-12), "iteration %d", i)
	}
}

func TestElementwise(t *testing.T) {
	a := mustRows(t, []float64{1, 2}, []float64{3, 4})
	b := mustRows(t, []float64{10, 20}, []float64{30, 40})

	assert.True(t, a.Add(b).Equal(mustRows(t, []float64{11, 22}, []float64{33, 44})))
	assert.True(t, b.Sub(a).Equal(mustRows(t, []float64{9, 18}, []float64{27, 36})))
	assert.True(t, a.Hadamard(b).Equal(mustRows(t, []float64{10, 40}, []float64{90, 160})))

	c := a.Clone()
	c.AddAssign(b)
	assert.True(t, c.Equal(a.Add(b)))

	c.SubAssign(b)
	assert.True(t, c.Equal(a))

	c.MulAssign(b)
	assert.True(t, c.Equal(a.Hadamard(b)))

	d := a.Clone()
	d.AddScaled(-0.5, b)
	assert.True(t, d.Equal(mustRows(t, []float64{-4, -8}, []float64{-12, -16})))

	d.Scale(-1)
	assert.Equal(t, 40.0, d.Sum())
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := Zeros(2, 2)
	b := Zeros(2, 3)

	tests := []struct {
		name string
		op   func()
	}{
		{"add", func() { a.Add(b) }},
		{"sub", func() { a.Sub(b) }},
		{"hadamard", func() { a.Hadamard(b) }},
		{"add-assign", func() { a.AddAssign(b) }},
		{"sub-assign", func() { a.SubAssign(b) }},
		{"mul-assign", func() { a.MulAssign(b) }},
		{"add-scaled", func() { a.AddScaled(1, b) }},
		{"copy", func() { a.CopyFrom(b) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := panicErr(t, tt.op)
			assert.True(t, errors.Is(err, ErrShapeMismatch), "got %v", err)
		})
	}
}

func TestTranspose(t *testing.T) {
	m := mustRows(t, []float64{6, 4, 24}, []float64{1, -9, 8})
	m.Transpose()
	assert.True(t, m.Equal(mustRows(t, []float64{6, 1}, []float64{4, -9}, []float64{24, 8})), "got\n%v", m)

	col := mustRows(t, []float64{6}, []float64{1}, []float64{4}, []float64{24})
	col.Transpose()
	assert.True(t, col.Equal(mustRows(t, []float64{6, 1, 4, 24})))
}

func TestTranspose_SelfInverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 10; i++ {
		m := RandWith(rng, 1+rng.IntN(6), 1+rng.IntN(6))
		tt := m.T()
		for r := 0; r < m.Rows(); r++ {
			for c := 0; c < m.Cols(); c++ {
				assert.Equal(t, m.At(r, c), tt.At(c, r))
			}
		}
		tt.Transpose()
		assert.True(t, tt.Equal(m))
	}
}

func TestSplitColumns(t *testing.T) {
	m := mustRows(t, []float64{4, 3, 5}, []float64{1, 2, 5}, []float64{3, 4, 6})

	left, right, err := m.SplitColumns(2)
	require.NoError(t, err)
	assert.True(t, left.Equal(mustRows(t, []float64{4, 3}, []float64{1, 2}, []float64{3, 4})))
	assert.True(t, right.Equal(mustRows(t, []float64{5}, []float64{5}, []float64{6})))

	joined, err := ConcatColumns(left, right)
	require.NoError(t, err)
	assert.True(t, joined.Equal(m))
}

func TestSplitColumns_Invalid(t *testing.T) {
	m := Zeros(2, 3)
	for _, at := range []int{0, 3, 4, -1} {
		_, _, err := m.SplitColumns(at)
		assert.ErrorIs(t, err, ErrOutOfBounds, "at=%d", at)
	}

	_, err := ConcatColumns(Zeros(2, 1), Zeros(3, 1))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestBounds(t *testing.T) {
	m := Zeros(2, 2)

	assert.ErrorIs(t, panicErr(t, func() { m.At(2, 0) }), ErrOutOfBounds)
	assert.ErrorIs(t, panicErr(t, func() { m.At(0, -1) }), ErrOutOfBounds)
	assert.ErrorIs(t, panicErr(t, func() { m.Set(0, 2, 1) }), ErrOutOfBounds)
	assert.ErrorIs(t, panicErr(t, func() { m.Row(2) }), ErrOutOfBounds)
}

func TestRowsAndAddRow(t *testing.T) {
	m := Empty(2, 3)
	assert.Equal(t, 0, m.Rows())

	require.NoError(t, m.AddRow([]float64{1, 2, 3}))
	require.NoError(t, m.AddRow([]float64{4, 5, 6}))
	assert.ErrorIs(t, m.AddRow([]float64{1}), ErrShapeMismatch)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, m.Rows()*m.Cols(), m.Len())
	assert.Equal(t, []float64{4, 5, 6}, m.Row(1))

	var seen [][]float64
	for i, row := range m.IterRows() {
		assert.Equal(t, len(seen), i)
		seen = append(seen, row)
	}
	assert.Len(t, seen, 2)

	// Row views write through.
	m.Row(0)[1] = 20
	assert.Equal(t, 20.0, m.At(0, 1))
}

func TestApply(t *testing.T) {
	m := mustRows(t, []float64{-1, 2})
	m.Apply(func(x float64) float64 { return x * x })
	assert.Equal(t, []float64{1, 4}, m.Data())
}

func TestRowBuilder(t *testing.T) {
	b := NewRowBuilder(2, 3)
	require.NoError(t, b.AddRow([]float64{0, 1}))
	require.NoError(t, b.AddRow([]float64{1, 0}))
	assert.ErrorIs(t, b.AddRow([]float64{1, 2, 3}), ErrShapeMismatch)
	assert.Equal(t, 2, b.Rows())
	assert.Equal(t, 2, b.Cols())

	m := b.Build()
	assert.True(t, m.Equal(mustRows(t, []float64{0, 1}, []float64{1, 0})))
}

func TestRowBuilder_ZeroWidth(t *testing.T) {
	b := NewRowBuilder(0, 3)
	for range 3 {
		require.NoError(t, b.AddRow(nil))
	}
	assert.Equal(t, 3, b.Rows())

	rows, cols := b.Build().Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 0, cols)

	m, err := FromRows([][]float64{{}, {}, {}})
	require.NoError(t, err)
	rows, cols = m.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 0, cols)
	assert.Equal(t, 0, m.Len())
}

func TestString(t *testing.T) {
	m := mustRows(t, []float64{1, 0.5}, []float64{-2, 0})
	assert.Equal(t, "[1.0000,0.5000,]\n[-2.0000,0.0000,]", m.String())
}
