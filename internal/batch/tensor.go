package batch

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/born-ml/snail/internal/matrix"
)

// FromTensors builds a batch with one row per sample by flattening each
// input and expected tensor in row-major order, e.g. decoded [3, 32, 32]
// image tensors. Every input must flatten to the same width, and likewise
// every expected tensor.
func FromTensors(inputs, expected []tensor.Tensor) (*Batch, error) {
	if len(inputs) != len(expected) {
		return nil, fmt.Errorf("%w: %d input tensors vs %d expected tensors",
			matrix.ErrShapeMismatch, len(inputs), len(expected))
	}
	in, err := stackTensors(inputs)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	out, err := stackTensors(expected)
	if err != nil {
		return nil, fmt.Errorf("expected: %w", err)
	}
	return pair(in, out)
}

func stackTensors(ts []tensor.Tensor) (*matrix.Matrix, error) {
	if len(ts) == 0 {
		return matrix.Zeros(0, 0), nil
	}
	var b *matrix.RowBuilder
	for i, t := range ts {
		row, err := matrix.FlattenTensor(t)
		if err != nil {
			return nil, fmt.Errorf("tensor %d: %w", i, err)
		}
		if b == nil {
			b = matrix.NewRowBuilder(len(row), len(ts))
		}
		if err := b.AddRow(row); err != nil {
			return nil, fmt.Errorf("tensor %d: %w", i, err)
		}
	}
	return b.Build(), nil
}

// OneHot encodes class labels as rows of a len(labels) x classes matrix with
// a single 1 in the label's column.
func OneHot(labels []int, classes int) (*matrix.Matrix, error) {
	m := matrix.Zeros(len(labels), classes)
	for i, l := range labels {
		if l < 0 || l >= classes {
			return nil, fmt.Errorf("%w: label %d at %d not in [0,%d)", matrix.ErrOutOfBounds, l, i, classes)
		}
		m.Set(i, l, 1)
	}
	return m, nil
}
