package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// dense wraps m's backing slice as a gonum matrix without copying.
// Callers must ensure both dimensions are non-zero.
func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.data)
}

// Dot returns the matrix product m · rhs with shape [m.rows, rhs.cols].
// Panics with ErrShapeMismatch unless m.cols == rhs.rows.
func (m *Matrix) Dot(rhs *Matrix) *Matrix {
	if m.cols != rhs.rows {
		panic(shapeError("dot", m, rhs))
	}
	out := Zeros(m.rows, rhs.cols)
	if m.rows == 0 || m.cols == 0 || rhs.cols == 0 {
		return out
	}
	out.dense().Mul(m.dense(), rhs.dense())
	return out
}

// Add returns m + other elementwise.
// Panics with ErrShapeMismatch if the shapes differ.
func (m *Matrix) Add(other *Matrix) *Matrix {
	mustSameShape("add", m, other)
	out := ZerosLike(m)
	floats.AddTo(out.data, m.data, other.data)
	return out
}

// Sub returns m - other elementwise.
// Panics with ErrShapeMismatch if the shapes differ.
func (m *Matrix) Sub(other *Matrix) *Matrix {
	mustSameShape("subtract", m, other)
	out := ZerosLike(m)
	floats.SubTo(out.data, m.data, other.data)
	return out
}

// Hadamard returns the elementwise product of m and other.
// Panics with ErrShapeMismatch if the shapes differ.
func (m *Matrix) Hadamard(other *Matrix) *Matrix {
	mustSameShape("hadamard", m, other)
	out := ZerosLike(m)
	floats.MulTo(out.data, m.data, other.data)
	return out
}

// AddAssign adds other into m elementwise.
func (m *Matrix) AddAssign(other *Matrix) {
	mustSameShape("add-assign", m, other)
	floats.Add(m.data, other.data)
}

// SubAssign subtracts other from m elementwise.
func (m *Matrix) SubAssign(other *Matrix) {
	mustSameShape("subtract-assign", m, other)
	floats.Sub(m.data, other.data)
}

// MulAssign multiplies m by other elementwise (Hadamard product).
func (m *Matrix) MulAssign(other *Matrix) {
	mustSameShape("multiply-assign", m, other)
	floats.Mul(m.data, other.data)
}

// AddScaled performs m += alpha * other.
func (m *Matrix) AddScaled(alpha float64, other *Matrix) {
	mustSameShape("add-scaled", m, other)
	floats.AddScaled(m.data, alpha, other.data)
}

// Scale multiplies every element of m by s.
func (m *Matrix) Scale(s float64) {
	floats.Scale(s, m.data)
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float64 {
	return floats.Sum(m.data)
}

// Transpose transposes m in place: the element at (r, c) moves to (c, r).
func (m *Matrix) Transpose() {
	if m.rows > 1 && m.cols > 1 {
		out := make([]float64, len(m.data))
		for r := 0; r < m.rows; r++ {
			for c := 0; c < m.cols; c++ {
				out[c*m.rows+r] = m.data[r*m.cols+c]
			}
		}
		m.data = out
	}
	m.rows, m.cols = m.cols, m.rows
}

// T returns a transposed copy of m.
func (m *Matrix) T() *Matrix {
	out := m.Clone()
	out.Transpose()
	return out
}

// Equal reports whether m and other have the same shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.SameShape(other) && floats.Equal(m.data, other.data)
}

// EqualApprox reports whether m and other have the same shape and every
// pair of elements is within tol (absolute or relative).
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	return m.SameShape(other) && floats.EqualApprox(m.data, other.data, tol)
}

// SplitColumns splits m into a left matrix holding columns [0, at) and a
// right matrix holding columns [at, cols). Both keep m's row count.
func (m *Matrix) SplitColumns(at int) (left, right *Matrix, err error) {
	if at <= 0 || at >= m.cols {
		return nil, nil, fmt.Errorf("%w: split at column %d of %d", ErrOutOfBounds, at, m.cols)
	}
	left = Zeros(m.rows, at)
	right = Zeros(m.rows, m.cols-at)
	for r := 0; r < m.rows; r++ {
		row := m.data[r*m.cols : (r+1)*m.cols]
		copy(left.data[r*at:(r+1)*at], row[:at])
		copy(right.data[r*right.cols:(r+1)*right.cols], row[at:])
	}
	return left, right, nil
}

// ConcatColumns joins left and right side by side. It is the inverse of
// SplitColumns.
func ConcatColumns(left, right *Matrix) (*Matrix, error) {
	if left.rows != right.rows {
		return nil, shapeError("concat-columns", left, right)
	}
	cols := left.cols + right.cols
	out := Zeros(left.rows, cols)
	for r := 0; r < left.rows; r++ {
		dst := out.data[r*cols : (r+1)*cols]
		copy(dst, left.data[r*left.cols:(r+1)*left.cols])
		copy(dst[left.cols:], right.data[r*right.cols:(r+1)*right.cols])
	}
	return out, nil
}
