// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides update rules that turn gradients into parameter
// changes on an nn.Model.
//
// # Training Loop Pattern
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 1.0, Momentum: 0.5})
//	for range epochs {
//	    wg, bg, err := model.Gradient(data)
//	    if err != nil {
//	        return err
//	    }
//	    if err := opt.Step(model, wg, bg); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/born-ml/snail/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum and decay.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}
