// Package batch pairs input and expected-output matrices and samples
// sub-batches from them.
package batch

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/born-ml/snail/internal/matrix"
)

// Batch pairs an input matrix (N x D_in) with an expected-output matrix
// (N x D_out). Row i of each belongs to sample i.
//
// A Batch is immutable once constructed: it owns its matrices, sampling
// returns a new Batch, and the matrices and row views returned by Input,
// Expected, Sample and All must not be modified.
type Batch struct {
	input    *matrix.Matrix
	expected *matrix.Matrix
}

// New creates a batch from copies of input and expected, which must have
// equal row counts. Later changes to the arguments do not reach the batch.
func New(input, expected *matrix.Matrix) (*Batch, error) {
	if err := checkRows(input, expected); err != nil {
		return nil, err
	}
	return &Batch{input: input.Clone(), expected: expected.Clone()}, nil
}

// pair is New for matrices built by this package, which need no copy.
func pair(input, expected *matrix.Matrix) (*Batch, error) {
	if err := checkRows(input, expected); err != nil {
		return nil, err
	}
	return &Batch{input: input, expected: expected}, nil
}

func checkRows(input, expected *matrix.Matrix) error {
	if input.Rows() != expected.Rows() {
		return fmt.Errorf("%w: %d input rows vs %d expected rows",
			matrix.ErrShapeMismatch, input.Rows(), expected.Rows())
	}
	return nil
}

// FromRows creates a batch from per-sample input and expected rows.
//
// Example:
//
//	xor, _ := batch.FromRows(
//	    [][]float64{{0, 1}, {1, 0}, {1, 1}, {0, 0}},
//	    [][]float64{{1}, {1}, {0}, {0}},
//	)
func FromRows(inputs, expected [][]float64) (*Batch, error) {
	in, err := matrix.FromRows(inputs)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	out, err := matrix.FromRows(expected)
	if err != nil {
		return nil, fmt.Errorf("expected: %w", err)
	}
	return pair(in, out)
}

// FromColumns splits a dataset whose rows hold [input..., expected...] into a
// batch, using the first inputCols columns as input.
func FromColumns(data *matrix.Matrix, inputCols int) (*Batch, error) {
	in, out, err := data.SplitColumns(inputCols)
	if err != nil {
		return nil, err
	}
	return pair(in, out)
}

// Len returns the number of samples.
func (b *Batch) Len() int { return b.input.Rows() }

// InputSize returns the width of an input row.
func (b *Batch) InputSize() int { return b.input.Cols() }

// OutputSize returns the width of an expected row.
func (b *Batch) OutputSize() int { return b.expected.Cols() }

// Input returns the input matrix.
func (b *Batch) Input() *matrix.Matrix { return b.input }

// Expected returns the expected-output matrix.
func (b *Batch) Expected() *matrix.Matrix { return b.expected }

// Sample returns views of the input and expected rows of sample i.
// Panics if i is out of bounds.
func (b *Batch) Sample(i int) (input, expected []float64) {
	return b.input.Row(i), b.expected.Row(i)
}

// All yields (input, expected) row pairs in storage order. The sequence can
// be ranged over any number of times.
func (b *Batch) All() iter.Seq2[[]float64, []float64] {
	return func(yield func([]float64, []float64) bool) {
		for i := 0; i < b.Len(); i++ {
			if !yield(b.Sample(i)) {
				return
			}
		}
	}
}

// RandomChunk returns a batch of size rows taken from a contiguous
// wrap-around window starting at a random offset o: row i of the result is
// source row (o+i) mod Len().
//
// Samples within one chunk are adjacent, not independently drawn, and
// successive chunks may overlap. size may exceed Len(), in which case rows
// repeat. A negative size is a matrix.ErrOutOfBounds error.
func (b *Batch) RandomChunk(size int) (*Batch, error) {
	return b.RandomChunkWith(nil, size)
}

// RandomChunkWith is RandomChunk drawing the offset from rng. A nil rng uses
// the package source.
func (b *Batch) RandomChunkWith(rng *rand.Rand, size int) (*Batch, error) {
	if size < 0 {
		return nil, fmt.Errorf("random chunk: %w: negative size %d", matrix.ErrOutOfBounds, size)
	}
	if b.Len() == 0 {
		return nil, fmt.Errorf("random chunk: %w", matrix.ErrEmpty)
	}
	var offset int
	if rng != nil {
		offset = rng.IntN(b.Len())
	} else {
		offset = rand.IntN(b.Len())
	}
	return b.window(offset, size), nil
}

// window copies rows (offset+i) mod Len() for i in [0, size).
func (b *Batch) window(offset, size int) *Batch {
	in := matrix.NewRowBuilder(b.InputSize(), size)
	out := matrix.NewRowBuilder(b.OutputSize(), size)
	for i := 0; i < size; i++ {
		x, y := b.Sample((offset + i) % b.Len())
		// Widths come from the source rows, AddRow cannot fail.
		_ = in.AddRow(x)
		_ = out.AddRow(y)
	}
	return &Batch{input: in.Build(), expected: out.Build()}
}
