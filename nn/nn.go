// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/snail/internal/matrix"
	"github.com/born-ml/snail/internal/nn"
	"github.com/born-ml/snail/internal/parallel"
)

// ErrInvalidArchitecture is returned for unusable layer lists.
var ErrInvalidArchitecture = nn.ErrInvalidArchitecture

// Model is a fully connected feed-forward network.
type Model = nn.Model

// Config holds model construction options.
type Config = nn.Config

// ParallelConfig controls how Cost and Gradient fan out across goroutines.
type ParallelConfig = parallel.Config

// Activations

// Activation selects the nonlinearity shared by every layer.
type Activation = nn.Activation

// Activation variants.
const (
	Sigmoid = nn.Sigmoid
	Tanh    = nn.Tanh
	ReLU    = nn.ReLU
)

// ParseActivation maps "sigmoid", "tanh" or "relu" to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Initialization

// Initializer draws a fanIn x fanOut weight matrix.
type Initializer = nn.Initializer

// Uniform draws weights uniformly from [-1, 1).
func Uniform(rng *rand.Rand, fanIn, fanOut int) *matrix.Matrix {
	return nn.Uniform(rng, fanIn, fanOut)
}

// Xavier draws weights uniformly from [-sqrt(6/(fanIn+fanOut)), +sqrt(6/(fanIn+fanOut))).
func Xavier(rng *rand.Rand, fanIn, fanOut int) *matrix.Matrix {
	return nn.Xavier(rng, fanIn, fanOut)
}

// Construction

// DefaultConfig returns a Sigmoid, uniformly initialized, CPU-parallel config.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// DefaultParallelConfig spreads work across all CPUs.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig keeps Cost and Gradient on the calling goroutine.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}

// New creates a model with DefaultConfig.
//
// Example:
//
//	model, err := nn.New([]int{2, 3, 3, 1})
func New(arch []int) (*Model, error) {
	return nn.New(arch)
}

// NewWithConfig creates a model with explicit options.
//
// Example:
//
//	model, err := nn.NewWithConfig([]int{2, 9, 9, 1}, nn.Config{
//	    Activation: nn.Tanh,
//	    Init:       nn.Xavier,
//	    Rand:       rand.New(rand.NewPCG(1, 2)),
//	    Parallel:   nn.DefaultParallelConfig(),
//	})
func NewWithConfig(arch []int, cfg Config) (*Model, error) {
	return nn.NewWithConfig(arch, cfg)
}
