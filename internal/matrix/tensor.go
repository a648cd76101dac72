package matrix

import (
	"fmt"

	"gorgonia.org/tensor"
)

// FromTensor copies a 2-D gorgonia tensor into a new Matrix.
// Float64 and Float32 tensors are accepted; views are read through At.
func FromTensor(t tensor.Tensor) (*Matrix, error) {
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: expected 2-D tensor, got shape %v", ErrShapeMismatch, shape)
	}
	rows, cols := shape[0], shape[1]
	m := Zeros(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v, err := t.At(r, c)
			if err != nil {
				return nil, fmt.Errorf("read (%d,%d): %w", r, c, err)
			}
			f, err := toFloat64(v)
			if err != nil {
				return nil, err
			}
			m.data[r*cols+c] = f
		}
	}
	return m, nil
}

// Tensor returns a Float64 gorgonia tensor of shape [rows, cols] backed by a
// copy of m's data.
func (m *Matrix) Tensor() *tensor.Dense {
	backing := make([]float64, len(m.data))
	copy(backing, m.data)
	return tensor.New(tensor.WithShape(m.rows, m.cols), tensor.WithBacking(backing))
}

// FlattenTensor returns the elements of t in row-major order as float64.
// t must be a contiguous Float64 or Float32 tensor.
func FlattenTensor(t tensor.Tensor) ([]float64, error) {
	size := t.Shape().TotalSize()
	switch data := t.Data().(type) {
	case []float64:
		if len(data) != size {
			return nil, fmt.Errorf("%w: tensor backing has %d elements, shape %v needs %d", ErrShapeMismatch, len(data), t.Shape(), size)
		}
		out := make([]float64, size)
		copy(out, data)
		return out, nil
	case []float32:
		if len(data) != size {
			return nil, fmt.Errorf("%w: tensor backing has %d elements, shape %v needs %d", ErrShapeMismatch, len(data), t.Shape(), size)
		}
		out := make([]float64, size)
		for i, v := range data {
			out[i] = float64(v)
		}
		return out, nil
	case float64:
		// Scalar-equivalent tensors report their single value.
		return []float64{data}, nil
	case float32:
		return []float64{float64(data)}, nil
	default:
		return nil, fmt.Errorf("unsupported tensor dtype %v", t.Dtype())
	}
}

func toFloat64(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("unsupported tensor element type %T", v)
	}
}
