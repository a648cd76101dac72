package matrix

import "fmt"

// RowBuilder accumulates rows of a fixed width and produces a Matrix.
//
// Rows are counted as they are added, so zero-width rows still count.
//
// Example:
//
//	b := matrix.NewRowBuilder(2, 4)
//	_ = b.AddRow([]float64{0, 1})
//	_ = b.AddRow([]float64{1, 0})
//	m := b.Build() // 2x2
type RowBuilder struct {
	rows int
	cols int
	data []float64
}

// NewRowBuilder creates a builder for rows of cols values, reserving
// storage for capacity rows.
func NewRowBuilder(cols, capacity int) *RowBuilder {
	return &RowBuilder{cols: cols, data: make([]float64, 0, max(capacity, 0)*cols)}
}

// AddRow appends a copy of values.
func (b *RowBuilder) AddRow(values []float64) error {
	if len(values) != b.cols {
		return fmt.Errorf("%w: row of length %d for %d columns", ErrShapeMismatch, len(values), b.cols)
	}
	b.data = append(b.data, values...)
	b.rows++
	return nil
}

// Rows returns the number of rows added so far.
func (b *RowBuilder) Rows() int { return b.rows }

// Cols returns the row width.
func (b *RowBuilder) Cols() int { return b.cols }

// Build returns the accumulated matrix. The builder must not be used afterwards.
func (b *RowBuilder) Build() *Matrix {
	m := &Matrix{data: b.data, rows: b.rows, cols: b.cols}
	b.data, b.rows = nil, 0
	return m
}
