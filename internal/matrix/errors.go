package matrix

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrOutOfBounds   = errors.New("index out of bounds")
	ErrEmpty         = errors.New("empty matrix")
)

// shapeError wraps ErrShapeMismatch with the operation and both operand shapes.
func shapeError(op string, a, b *Matrix) error {
	return fmt.Errorf("%w: %s [%d,%d] vs [%d,%d]", ErrShapeMismatch, op, a.rows, a.cols, b.rows, b.cols)
}

// mustSameShape panics unless a and b have identical dimensions.
func mustSameShape(op string, a, b *Matrix) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(shapeError(op, a, b))
	}
}
