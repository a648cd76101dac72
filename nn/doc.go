// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the fully connected feed-forward network at the core
// of snail.
//
// # Overview
//
// A Model is built from a list of layer widths. Every layer computes
//
//	out = act(in · W + b)
//
// with one shared activation (Sigmoid, Tanh or ReLU). Gradient evaluates the
// averaged backpropagation gradient over a batch, spreading samples across
// CPUs, and Learn applies a plain gradient-descent step.
//
// # Basic Usage
//
//	model, _ := nn.New([]int{2, 3, 3, 1})
//
//	for range 1000 {
//	    wg, bg, _ := model.Gradient(xor)
//	    _ = model.Learn(wg, bg, 1.0)
//	}
//
//	out, _ := model.Forward([]float64{1, 0})
//
// # Concurrency
//
// A Model has no internal locking. Learn must not overlap any other call on
// the same Model. Share progress with readers through Clone.
package nn
