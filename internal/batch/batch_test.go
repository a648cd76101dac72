package batch

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/snail/internal/matrix"
)

// indexed returns an n-sample batch whose input row i is {i, -i} and whose
// expected row i is {10*i}, so every row identifies its source index.
func indexed(t *testing.T, n int) *Batch {
	t.Helper()
	in := make([][]float64, n)
	out := make([][]float64, n)
	for i := range n {
		in[i] = []float64{float64(i), -float64(i)}
		out[i] = []float64{10 * float64(i)}
	}
	b, err := FromRows(in, out)
	require.NoError(t, err)
	return b
}

func TestNew_RowMismatch(t *testing.T) {
	_, err := New(matrix.Zeros(3, 2), matrix.Zeros(2, 1))
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestBatch_Accessors(t *testing.T) {
	b := indexed(t, 4)

	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 2, b.InputSize())
	assert.Equal(t, 1, b.OutputSize())

	x, y := b.Sample(2)
	assert.Equal(t, []float64{2, -2}, x)
	assert.Equal(t, []float64{20}, y)
}

func TestBatch_All(t *testing.T) {
	b := indexed(t, 5)

	// Restartable: two passes see the same sequence.
	for pass := 0; pass < 2; pass++ {
		i := 0
		for x, y := range b.All() {
			assert.Equal(t, float64(i), x[0])
			assert.Equal(t, 10*float64(i), y[0])
			i++
		}
		assert.Equal(t, 5, i)
	}

	// Early break stops the sequence.
	count := 0
	for range b.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestFromColumns(t *testing.T) {
	data, err := matrix.FromRows([][]float64{{0, 1, 1}, {1, 1, 0}})
	require.NoError(t, err)

	b, err := FromColumns(data, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, b.InputSize())
	assert.Equal(t, 1, b.OutputSize())

	_, y := b.Sample(1)
	assert.Equal(t, []float64{0}, y)

	_, err = FromColumns(data, 3)
	assert.ErrorIs(t, err, matrix.ErrOutOfBounds)
}

func TestRandomChunk_WrapAround(t *testing.T) {
	src := indexed(t, 7)
	rng := rand.New(rand.NewPCG(11, 12))

	for _, size := range []int{0, 1, 3, 7, 10} {
		chunk, err := src.RandomChunkWith(rng, size)
		require.NoError(t, err)
		require.Equal(t, size, chunk.Len())
		if size == 0 {
			continue
		}

		x0, _ := chunk.Sample(0)
		offset := int(x0[0])
		for i := 0; i < size; i++ {
			x, y := chunk.Sample(i)
			want := (offset + i) % src.Len()
			sx, sy := src.Sample(want)
			assert.Equal(t, sx, x, "size %d row %d", size, i)
			assert.Equal(t, sy, y, "size %d row %d", size, i)
		}
	}
}

func TestRandomChunk_DefaultSource(t *testing.T) {
	src := indexed(t, 3)
	chunk, err := src.RandomChunk(5)
	require.NoError(t, err)
	assert.Equal(t, 5, chunk.Len())
	for x, y := range chunk.All() {
		assert.Equal(t, 10*x[0], y[0])
	}
}

func TestRandomChunk_Copies(t *testing.T) {
	src := indexed(t, 3)
	chunk, err := src.RandomChunk(3)
	require.NoError(t, err)

	chunk.Input().Set(0, 0, 99)
	for x := range src.All() {
		assert.NotEqual(t, 99.0, x[0])
	}
}

func TestRandomChunk_Empty(t *testing.T) {
	src, err := New(matrix.Zeros(0, 2), matrix.Zeros(0, 1))
	require.NoError(t, err)

	_, err = src.RandomChunk(4)
	assert.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestWindow(t *testing.T) {
	src := indexed(t, 4)
	w := src.window(3, 3)

	var got []float64
	for x := range w.All() {
		got = append(got, x[0])
	}
	assert.Equal(t, []float64{3, 0, 1}, got)
}

func TestCursor(t *testing.T) {
	src := indexed(t, 10)
	c := NewCursor(src, rand.New(rand.NewPCG(1, 1)))

	first, err := c.Next(4)
	require.NoError(t, err)
	assert.Equal(t, 4, first.Len())
	assert.Equal(t, 4, c.Position())

	for i := 0; i < first.Len(); i++ {
		x, _ := first.Sample(i)
		// Sample i is taken from i plus a jitter in [0, maxJitter).
		assert.GreaterOrEqual(t, int(x[0]), i)
		assert.Less(t, int(x[0]), i+maxJitter)
	}

	_, err = c.Next(8)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Position(), "position wraps around")
}

func TestCursor_Empty(t *testing.T) {
	src, err := New(matrix.Zeros(0, 1), matrix.Zeros(0, 1))
	require.NoError(t, err)

	_, err = NewCursor(src, nil).Next(1)
	assert.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestNew_Copies(t *testing.T) {
	in := matrix.Ones(2, 2)
	out := matrix.Zeros(2, 1)
	b, err := New(in, out)
	require.NoError(t, err)

	in.Set(0, 0, 99)
	out.Set(1, 0, 99)

	x, _ := b.Sample(0)
	_, y := b.Sample(1)
	assert.Equal(t, 1.0, x[0])
	assert.Equal(t, 0.0, y[0])
}

func TestSampling_ZeroWidthExpected(t *testing.T) {
	src, err := New(matrix.Zeros(3, 2), matrix.Zeros(3, 0))
	require.NoError(t, err)

	chunk, err := src.RandomChunkWith(rand.New(rand.NewPCG(5, 6)), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, chunk.Input().Rows())
	assert.Equal(t, 2, chunk.Expected().Rows())

	next, err := NewCursor(src, rand.New(rand.NewPCG(5, 6))).Next(4)
	require.NoError(t, err)
	assert.Equal(t, 4, next.Input().Rows())
	assert.Equal(t, 4, next.Expected().Rows())
}

func TestSampling_NegativeSize(t *testing.T) {
	src := indexed(t, 3)

	_, err := src.RandomChunk(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfBounds)

	_, err = NewCursor(src, nil).Next(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfBounds)
}
