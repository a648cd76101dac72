// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense row-major float64 matrix used by snail.
//
// # Overview
//
// A Matrix stores rows*cols values contiguously, row after row. Products go
// through gonum's BLAS-backed Dense multiplication; elementwise kernels use
// gonum/floats.
//
// Arithmetic on operands of the wrong shape is a programming error and
// panics with an error wrapping ErrShapeMismatch. Constructors and
// conversions that take caller data return errors instead.
//
// # Basic Usage
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b := matrix.Ones(2, 1)
//	c := a.Dot(b) // 2x1: [3], [7]
//
//	a.AddAssign(matrix.Ones(2, 2))
//	fmt.Println(a)
//
// # Building Row By Row
//
//	rb := matrix.NewRowBuilder(2, 0)
//	for _, p := range points {
//	    _ = rb.AddRow([]float64{p.X, p.Y})
//	}
//	m := rb.Build()
//
// # Tensor Interop
//
// FromTensor and (*Matrix).Tensor convert to and from 2-D gorgonia tensors.
package matrix
