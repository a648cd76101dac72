// Package matrix provides the dense row-major float64 matrix used by the
// snail training engine.
package matrix

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"
)

// Matrix is a dense, row-major matrix of float64 values.
//
// The element at (r, c) lives at data[r*cols+c]. len(data) == rows*cols holds
// after every operation, including AddRow.
//
// Arithmetic methods that return a *Matrix allocate a fresh result and leave
// their operands untouched. Methods named *Assign, Transpose, Scale and Apply
// mutate the receiver.
type Matrix struct {
	data []float64
	rows int
	cols int
}

// New creates a rows x cols matrix from a copy of data.
func New(data []float64, rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative dimensions [%d,%d]", ErrShapeMismatch, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: shape [%d,%d] requires %d elements, but got %d",
			ErrShapeMismatch, rows, cols, rows*cols, len(data))
	}
	m := &Matrix{data: make([]float64, len(data)), rows: rows, cols: cols}
	copy(m.data, data)
	return m, nil
}

// FromRows creates a matrix from a slice of equally sized rows.
//
// Example:
//
//	m, _ := matrix.FromRows([][]float64{{5, 4}, {4, 6}, {7, 3}}) // 3x2
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	b := NewRowBuilder(len(rows[0]), len(rows))
	for i, r := range rows {
		if err := b.AddRow(r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return b.Build(), nil
}

// Zeros creates a rows x cols matrix filled with zeros.
func Zeros(rows, cols int) *Matrix {
	return &Matrix{data: make([]float64, rows*cols), rows: rows, cols: cols}
}

// Ones creates a rows x cols matrix filled with ones.
func Ones(rows, cols int) *Matrix {
	m := Zeros(rows, cols)
	for i := range m.data {
		m.data[i] = 1
	}
	return m
}

// Rand creates a rows x cols matrix with values drawn uniformly from [-1, 1).
func Rand(rows, cols int) *Matrix {
	return RandWith(nil, rows, cols)
}

// RandWith is Rand drawing from rng. A nil rng uses the package source.
func RandWith(rng *rand.Rand, rows, cols int) *Matrix {
	m := Zeros(rows, cols)
	for i := range m.data {
		var u float64
		if rng != nil {
			u = rng.Float64()
		} else {
			u = rand.Float64()
		}
		m.data[i] = (u - 0.5) * 2.0
	}
	return m
}

// Empty creates a matrix with cols columns and no rows, reserving storage
// for capacity rows. Rows are appended with AddRow.
func Empty(capacity, cols int) *Matrix {
	return &Matrix{data: make([]float64, 0, capacity*cols), cols: cols}
}

// RowFromSlice creates a 1 x len(values) matrix holding a copy of values.
func RowFromSlice(values []float64) *Matrix {
	m := Zeros(1, len(values))
	copy(m.data, values)
	return m
}

// ZerosLike creates a zero matrix with the same shape as other.
func ZerosLike(other *Matrix) *Matrix {
	return Zeros(other.rows, other.cols)
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// Len returns the total number of elements.
func (m *Matrix) Len() int { return len(m.data) }

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// Data returns the row-major backing slice.
//
// WARNING: Modifications to the returned slice will modify the matrix.
func (m *Matrix) Data() []float64 {
	return m.data
}

// offset validates (r, c) and returns its position in data.
func (m *Matrix) offset(r, c int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Errorf("%w: (%d,%d) in [%d,%d]", ErrOutOfBounds, r, c, m.rows, m.cols))
	}
	return r*m.cols + c
}

// At returns the element at row r, column c.
// Panics if the position is out of bounds.
func (m *Matrix) At(r, c int) float64 {
	return m.data[m.offset(r, c)]
}

// Set stores v at row r, column c.
// Panics if the position is out of bounds.
func (m *Matrix) Set(r, c int, v float64) {
	m.data[m.offset(r, c)] = v
}

// Row returns a view of row i. Writes through the slice modify the matrix.
// Panics if i is out of bounds.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, i, m.rows))
	}
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// AddRow appends a copy of values as a new last row.
func (m *Matrix) AddRow(values []float64) error {
	if len(values) != m.cols {
		return fmt.Errorf("%w: row of length %d for %d columns", ErrShapeMismatch, len(values), m.cols)
	}
	m.data = append(m.data, values...)
	m.rows++
	return nil
}

// IterRows yields (index, row view) pairs in storage order.
func (m *Matrix) IterRows() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		for i := 0; i < m.rows; i++ {
			if !yield(i, m.Row(i)) {
				return
			}
		}
	}
}

// Values yields every element in row-major order.
func (m *Matrix) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Apply replaces every element x with f(x).
func (m *Matrix) Apply(f func(float64) float64) {
	for i, v := range m.data {
		m.data[i] = f(v)
	}
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{data: make([]float64, len(m.data)), rows: m.rows, cols: m.cols}
	copy(out.data, m.data)
	return out
}

// CopyFrom overwrites m's elements with other's.
// Panics if the shapes differ.
func (m *Matrix) CopyFrom(other *Matrix) {
	mustSameShape("copy", m, other)
	copy(m.data, other.data)
}

// String renders one bracketed row per line with four decimals.
func (m *Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for c := 0; c < m.cols; c++ {
			fmt.Fprintf(&sb, "%.4f,", m.data[r*m.cols+c])
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
