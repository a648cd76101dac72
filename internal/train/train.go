// Package train runs the sample / gradient / update loop around an nn.Model
// and publishes progress for concurrent readers.
package train

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/born-ml/snail/internal/batch"
	"github.com/born-ml/snail/internal/nn"
	"github.com/born-ml/snail/internal/optim"
)

// Sampling selects how each epoch draws its batch.
type Sampling int

const (
	// RandomWindow draws batch.RandomChunk windows.
	RandomWindow Sampling = iota
	// Sequential walks the data with a batch.Cursor.
	Sequential
)

// Config captures the knobs of the training loop.
type Config struct {
	Epochs       int          // Epochs to run; 0 runs until ctx is done
	BatchSize    int          // Samples per epoch; 0 uses the full dataset every epoch
	Sampling     Sampling     // How BatchSize samples are drawn
	LogEvery     int          // Log every N epochs (default: 100)
	PublishEvery int          // Publish to Monitor every N epochs (default: LogEvery)
	Monitor      *Monitor     // Optional progress sink
	Logger       *slog.Logger // Default: slog.Default()
	Rand         *rand.Rand   // Sampling source (nil: package source)
}

// Result summarizes a finished run.
type Result struct {
	Epochs int
	Cost   float64
}

// Run trains model on data with opt until cfg.Epochs epochs are done or ctx
// is cancelled. One epoch is one gradient evaluation plus one optimizer step.
//
// The full-dataset cost is evaluated at every publish and log point and once
// more at the end. When ctx ends the run early, Run returns the progress so
// far together with ctx.Err().
func Run(ctx context.Context, model *nn.Model, data *batch.Batch, opt optim.Optimizer, cfg Config) (Result, error) {
	if cfg.Epochs < 0 {
		return Result{}, errors.New("train: epochs must be >= 0")
	}
	if cfg.BatchSize < 0 {
		return Result{}, errors.New("train: batch size must be >= 0")
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 100
	}
	if cfg.PublishEvery <= 0 {
		cfg.PublishEvery = cfg.LogEvery
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	next := sampler(data, cfg)
	start := time.Now()
	res := Result{}

	for cfg.Epochs == 0 || res.Epochs < cfg.Epochs {
		if err := ctx.Err(); err != nil {
			return finish(model, data, res, err)
		}

		chunk, err := next()
		if err != nil {
			return res, fmt.Errorf("train: sample epoch %d: %w", res.Epochs+1, err)
		}
		wg, bg, err := model.Gradient(chunk)
		if err != nil {
			return res, fmt.Errorf("train: gradient epoch %d: %w", res.Epochs+1, err)
		}
		if err := opt.Step(model, wg, bg); err != nil {
			return res, fmt.Errorf("train: step epoch %d: %w", res.Epochs+1, err)
		}
		res.Epochs++

		publish := cfg.Monitor != nil && res.Epochs%cfg.PublishEvery == 0
		log := res.Epochs%cfg.LogEvery == 0
		if !publish && !log {
			continue
		}

		cost, err := model.Cost(data)
		if err != nil {
			return res, fmt.Errorf("train: cost epoch %d: %w", res.Epochs, err)
		}
		res.Cost = cost

		if publish {
			if lr, ok := cfg.Monitor.takeLR(); ok {
				opt.SetLR(lr)
			}
			cfg.Monitor.Publish(Snapshot{
				Epoch:   res.Epochs,
				Cost:    cost,
				LR:      opt.GetLR(),
				Elapsed: time.Since(start),
				Model:   model.Clone(),
			})
		}
		if log {
			attrs := []any{
				"epoch", res.Epochs,
				"cost", cost,
				"lr", opt.GetLR(),
				"elapsed", time.Since(start).Round(time.Millisecond),
			}
			if math.IsNaN(cost) || math.IsInf(cost, 0) {
				logger.Warn("training diverged", attrs...)
			} else {
				logger.Info("training progress", attrs...)
			}
		}
	}

	return finish(model, data, res, nil)
}

// finish records the final cost and passes runErr through.
func finish(model *nn.Model, data *batch.Batch, res Result, runErr error) (Result, error) {
	cost, err := model.Cost(data)
	if err != nil {
		return res, fmt.Errorf("train: final cost: %w", err)
	}
	res.Cost = cost
	return res, runErr
}

// sampler returns the per-epoch batch source selected by cfg.
func sampler(data *batch.Batch, cfg Config) func() (*batch.Batch, error) {
	switch {
	case cfg.BatchSize == 0:
		return func() (*batch.Batch, error) { return data, nil }
	case cfg.Sampling == Sequential:
		cur := batch.NewCursor(data, cfg.Rand)
		return func() (*batch.Batch, error) { return cur.Next(cfg.BatchSize) }
	default:
		return func() (*batch.Batch, error) { return data.RandomChunkWith(cfg.Rand, cfg.BatchSize) }
	}
}
