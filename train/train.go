// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train drives a model through repeated gradient steps and publishes
// progress snapshots that other goroutines can read while training runs.
//
// Example:
//
//	mon := train.NewMonitor()
//	go func() {
//	    _, err := train.Run(ctx, model, data, optim.NewSGD(optim.SGDConfig{LR: 1}), train.Config{
//	        PublishEvery: 100,
//	        Monitor:      mon,
//	    })
//	    if err != nil && !errors.Is(err, context.Canceled) {
//	        log.Fatal(err)
//	    }
//	}()
//
//	if snap, ok := mon.Latest(); ok {
//	    out, _ := snap.Model.Forward([]float64{1, 0})
//	    fmt.Println(snap.Epoch, snap.Cost, out)
//	}
package train

import (
	"context"

	"github.com/born-ml/snail/internal/batch"
	"github.com/born-ml/snail/internal/nn"
	"github.com/born-ml/snail/internal/optim"
	"github.com/born-ml/snail/internal/train"
)

// Config captures the knobs of the training loop.
type Config = train.Config

// Result summarizes a finished run.
type Result = train.Result

// Sampling selects how each epoch draws its batch.
type Sampling = train.Sampling

// Sampling modes.
const (
	RandomWindow = train.RandomWindow
	Sequential   = train.Sequential
)

// Snapshot is a point-in-time view of a training run.
type Snapshot = train.Snapshot

// Monitor hands snapshots from a training loop to concurrent readers.
type Monitor = train.Monitor

// NewMonitor creates an empty monitor.
func NewMonitor() *Monitor {
	return train.NewMonitor()
}

// Run trains model on data with opt until cfg.Epochs epochs are done or ctx
// is cancelled.
func Run(ctx context.Context, model *nn.Model, data *batch.Batch, opt optim.Optimizer, cfg Config) (Result, error) {
	return train.Run(ctx, model, data, opt, cfg)
}
