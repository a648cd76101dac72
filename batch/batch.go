// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package batch pairs training inputs with their expected outputs and samples
// sub-batches for gradient steps.
//
// Example:
//
//	xor, _ := batch.FromRows(
//	    [][]float64{{0, 1}, {1, 0}, {1, 1}, {0, 0}},
//	    [][]float64{{1}, {1}, {0}, {0}},
//	)
//	chunk, _ := xor.RandomChunk(2)
package batch

import (
	"math/rand/v2"

	"github.com/born-ml/snail/internal/batch"
	"github.com/born-ml/snail/internal/matrix"
	"gorgonia.org/tensor"
)

// Batch is an immutable set of (input, expected) samples.
type Batch = batch.Batch

// Cursor hands out consecutive chunks of a Batch.
type Cursor = batch.Cursor

// New creates a batch from copies of input and expected matrices with equal
// row counts.
func New(input, expected *matrix.Matrix) (*Batch, error) {
	return batch.New(input, expected)
}

// FromRows creates a batch from per-sample input and expected rows.
func FromRows(inputs, expected [][]float64) (*Batch, error) {
	return batch.FromRows(inputs, expected)
}

// FromColumns splits a dataset with rows of [input..., expected...] at
// column inputCols.
func FromColumns(data *matrix.Matrix, inputCols int) (*Batch, error) {
	return batch.FromColumns(data, inputCols)
}

// FromTensors builds a batch with one flattened row per input and expected
// tensor.
func FromTensors(inputs, expected []tensor.Tensor) (*Batch, error) {
	return batch.FromTensors(inputs, expected)
}

// OneHot encodes class labels as one-hot rows.
func OneHot(labels []int, classes int) (*matrix.Matrix, error) {
	return batch.OneHot(labels, classes)
}

// NewCursor creates a sequential chunk cursor over src.
// A nil rng uses the package source.
func NewCursor(src *Batch, rng *rand.Rand) *Cursor {
	return batch.NewCursor(src, rng)
}
