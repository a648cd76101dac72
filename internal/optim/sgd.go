package optim

import (
	"github.com/born-ml/snail/internal/matrix"
	"github.com/born-ml/snail/internal/nn"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// With Decay set, the learning rate is multiplied by Decay after every step.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.5,
//	    Momentum: 0.9,
//	})
//
//	for range epochs {
//	    wg, bg, _ := model.Gradient(batch)
//	    _ = optimizer.Step(model, wg, bg)
//	}
type SGD struct {
	lr         float64
	momentum   float64
	decay      float64
	velocities *state
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
	Decay    float64 // Per-step learning rate multiplier (default: 0, disabled)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
		decay:    config.Decay,
	}
}

// Step performs a single optimization step.
func (s *SGD) Step(model *nn.Model, weightGrads, biasGrads []*matrix.Matrix) error {
	if err := model.ValidateGradients(weightGrads, biasGrads); err != nil {
		return err
	}

	if s.momentum == 0 {
		// Simple SGD: param -= lr * grad
		if err := model.Learn(weightGrads, biasGrads, s.lr); err != nil {
			return err
		}
	} else {
		if !s.velocities.matches(model) {
			s.velocities = newState(model)
		}
		v := s.velocities
		for i := range v.weights {
			v.weights[i].Scale(s.momentum)
			v.weights[i].AddAssign(weightGrads[i])
			v.biases[i].Scale(s.momentum)
			v.biases[i].AddAssign(biasGrads[i])
		}
		if err := model.Learn(v.weights, v.biases, s.lr); err != nil {
			return err
		}
	}

	if s.decay > 0 {
		s.lr *= s.decay
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Reset drops the momentum buffers.
func (s *SGD) Reset() {
	s.velocities = nil
}
