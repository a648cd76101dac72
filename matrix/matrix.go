// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"math/rand/v2"

	"github.com/born-ml/snail/internal/matrix"
	"gorgonia.org/tensor"
)

// Errors returned or wrapped in panics by matrix operations.
var (
	ErrShapeMismatch = matrix.ErrShapeMismatch
	ErrOutOfBounds   = matrix.ErrOutOfBounds
	ErrEmpty         = matrix.ErrEmpty
)

// Matrix is a dense row-major matrix of float64.
type Matrix = matrix.Matrix

// RowBuilder accumulates rows of a fixed width and builds a Matrix.
type RowBuilder = matrix.RowBuilder

// New wraps data as a rows x cols matrix. len(data) must equal rows*cols.
func New(data []float64, rows, cols int) (*Matrix, error) {
	return matrix.New(data, rows, cols)
}

// FromRows copies equal-length rows into a new matrix.
func FromRows(rows [][]float64) (*Matrix, error) {
	return matrix.FromRows(rows)
}

// Zeros creates a rows x cols matrix of zeros.
func Zeros(rows, cols int) *Matrix {
	return matrix.Zeros(rows, cols)
}

// Ones creates a rows x cols matrix of ones.
func Ones(rows, cols int) *Matrix {
	return matrix.Ones(rows, cols)
}

// Rand creates a rows x cols matrix with values uniform in [-1, 1).
func Rand(rows, cols int) *Matrix {
	return matrix.Rand(rows, cols)
}

// RandWith is Rand drawing from rng. A nil rng uses the package source.
func RandWith(rng *rand.Rand, rows, cols int) *Matrix {
	return matrix.RandWith(rng, rows, cols)
}

// Empty creates a 0 x cols matrix with room for capacity rows.
func Empty(capacity, cols int) *Matrix {
	return matrix.Empty(capacity, cols)
}

// RowFromSlice copies values into a 1 x len(values) matrix.
func RowFromSlice(values []float64) *Matrix {
	return matrix.RowFromSlice(values)
}

// ZerosLike creates a zero matrix with the shape of other.
func ZerosLike(other *Matrix) *Matrix {
	return matrix.ZerosLike(other)
}

// ConcatColumns joins left and right side by side.
func ConcatColumns(left, right *Matrix) (*Matrix, error) {
	return matrix.ConcatColumns(left, right)
}

// NewRowBuilder creates a builder for rows of width cols.
//
// Example:
//
//	rb := matrix.NewRowBuilder(3, 64)
//	_ = rb.AddRow([]float64{1, 2, 3})
//	m := rb.Build()
func NewRowBuilder(cols, capacity int) *RowBuilder {
	return matrix.NewRowBuilder(cols, capacity)
}

// FromTensor copies a 2-D float64 or float32 tensor into a new matrix.
func FromTensor(t tensor.Tensor) (*Matrix, error) {
	return matrix.FromTensor(t)
}

// FlattenTensor returns the values of t as a float64 slice in row-major order.
func FlattenTensor(t tensor.Tensor) ([]float64, error) {
	return matrix.FlattenTensor(t)
}
