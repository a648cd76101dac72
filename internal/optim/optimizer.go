// Package optim implements update rules that turn gradients from
// nn.Model.Gradient into parameter changes.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum and decay
//   - Adam: Adaptive Moment Estimation
//
// Every optimizer applies its update through nn.Model.Learn, so shape
// validation and the actual parameter write live in one place.
//
// Example usage:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0})
//	for range epochs {
//	    wg, bg, _ := model.Gradient(batch)
//	    _ = opt.Step(model, wg, bg)
//	}
package optim

import (
	"github.com/born-ml/snail/internal/matrix"
	"github.com/born-ml/snail/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to model from the averaged gradients returned
	// by model.Gradient. It fails without touching the model if the gradient
	// shapes do not match.
	Step(model *nn.Model, weightGrads, biasGrads []*matrix.Matrix) error

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)
}

// state holds one per-layer buffer set shaped like a model's parameters.
type state struct {
	weights []*matrix.Matrix
	biases  []*matrix.Matrix
}

// newState allocates zeroed buffers matching model's parameters.
func newState(model *nn.Model) *state {
	s := &state{
		weights: make([]*matrix.Matrix, model.Layers()),
		biases:  make([]*matrix.Matrix, model.Layers()),
	}
	for i := range s.weights {
		s.weights[i] = matrix.ZerosLike(model.Weights()[i])
		s.biases[i] = matrix.ZerosLike(model.Biases()[i])
	}
	return s
}

// matches reports whether the buffers still fit model, e.g. after the
// optimizer was pointed at a model of a different architecture.
func (s *state) matches(model *nn.Model) bool {
	return s != nil && model.ValidateGradients(s.weights, s.biases) == nil
}
