package nn

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/snail/internal/batch"
	"github.com/born-ml/snail/internal/matrix"
	"github.com/born-ml/snail/internal/parallel"
)

// ErrInvalidArchitecture is returned for layer lists with fewer than two
// layers or a non-positive width.
var ErrInvalidArchitecture = errors.New("invalid architecture")

// minSamplesPerWorker keeps tiny batches on a single goroutine.
const minSamplesPerWorker = 8

// Config holds model construction options.
type Config struct {
	Activation Activation      // Shared nonlinearity (default: Sigmoid)
	Init       Initializer     // Weight initializer (default: Uniform)
	Rand       *rand.Rand      // Source for weight initialization (nil: package source)
	Parallel   parallel.Config // Per-sample fan-out for Cost and Gradient
}

// DefaultConfig returns a Sigmoid model config that spreads cost and
// gradient evaluation across all CPUs.
func DefaultConfig() Config {
	p := parallel.DefaultConfig()
	p.MinChunkSize = minSamplesPerWorker
	return Config{
		Activation: Sigmoid,
		Init:       Uniform,
		Parallel:   p,
	}
}

// Model is a fully connected feed-forward network.
//
// Layer i maps a row of width arch[i] to a row of width arch[i+1]:
//
//	out = act(in · weights[i] + biases[i])
//
// where weights[i] is arch[i] x arch[i+1] and biases[i] is 1 x arch[i+1].
// The same activation follows every layer, the output layer included.
//
// A Model has no internal locking. Learn mutates the parameters and must not
// run concurrently with any other method on the same Model; hand readers a
// Clone instead.
//
// Example:
//
//	model, _ := nn.New([]int{2, 3, 3, 1})
//	for range 1000 {
//	    wg, bg, _ := model.Gradient(xor)
//	    _ = model.Learn(wg, bg, 1.0)
//	}
//	cost, _ := model.Cost(xor)
type Model struct {
	arch       []int
	weights    []*matrix.Matrix
	biases     []*matrix.Matrix
	activation Activation
	parallel   parallel.Config
}

// New creates a model with DefaultConfig.
func New(arch []int) (*Model, error) {
	return NewWithConfig(arch, DefaultConfig())
}

// NewWithConfig creates a model for the given layer widths. Weights are drawn
// by cfg.Init and biases start at zero.
func NewWithConfig(arch []int, cfg Config) (*Model, error) {
	if len(arch) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layers, got %d", ErrInvalidArchitecture, len(arch))
	}
	for i, n := range arch {
		if n <= 0 {
			return nil, fmt.Errorf("%w: layer %d has width %d", ErrInvalidArchitecture, i, n)
		}
	}
	if cfg.Init == nil {
		cfg.Init = Uniform
	}

	m := &Model{
		arch:       append([]int(nil), arch...),
		weights:    make([]*matrix.Matrix, 0, len(arch)-1),
		biases:     make([]*matrix.Matrix, 0, len(arch)-1),
		activation: cfg.Activation,
		parallel:   cfg.Parallel,
	}
	for i := 0; i < len(arch)-1; i++ {
		m.weights = append(m.weights, cfg.Init(cfg.Rand, arch[i], arch[i+1]))
		m.biases = append(m.biases, matrix.Zeros(1, arch[i+1]))
	}
	return m, nil
}

// Arch returns a copy of the layer widths.
func (m *Model) Arch() []int {
	return append([]int(nil), m.arch...)
}

// Layers returns the number of weight layers, len(Arch())-1.
func (m *Model) Layers() int { return len(m.weights) }

// Weights returns the live per-layer weight matrices.
func (m *Model) Weights() []*matrix.Matrix { return m.weights }

// Biases returns the live per-layer bias rows.
func (m *Model) Biases() []*matrix.Matrix { return m.biases }

// Activation returns the shared nonlinearity.
func (m *Model) Activation() Activation { return m.activation }

// SetActivation replaces the shared nonlinearity. It takes effect on the
// next Activate, Forward, Cost or Gradient call.
func (m *Model) SetActivation(a Activation) { m.activation = a }

// SetParallel replaces the fan-out config used by Cost and Gradient.
func (m *Model) SetParallel(cfg parallel.Config) { m.parallel = cfg }

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	out := &Model{
		arch:       m.Arch(),
		weights:    make([]*matrix.Matrix, len(m.weights)),
		biases:     make([]*matrix.Matrix, len(m.biases)),
		activation: m.activation,
		parallel:   m.parallel,
	}
	for i := range m.weights {
		out.weights[i] = m.weights[i].Clone()
		out.biases[i] = m.biases[i].Clone()
	}
	return out
}

// Activate propagates input (one sample per row, arch[0] columns) through
// every layer and returns [input, layer1, ..., layerL], Layers()+1 matrices.
func (m *Model) Activate(input *matrix.Matrix) ([]*matrix.Matrix, error) {
	if input.Cols() != m.arch[0] {
		return nil, fmt.Errorf("%w: input has %d columns, model expects %d",
			matrix.ErrShapeMismatch, input.Cols(), m.arch[0])
	}
	return m.activate(input), nil
}

// activate is Activate without validation.
func (m *Model) activate(input *matrix.Matrix) []*matrix.Matrix {
	out := make([]*matrix.Matrix, 0, len(m.weights)+1)
	out = append(out, input)
	prior := input
	for i, w := range m.weights {
		z := prior.Dot(w)
		bias := m.biases[i].Data()
		for _, row := range z.IterRows() {
			for c := range row {
				row[c] = m.activation.Forward(row[c] + bias[c])
			}
		}
		out = append(out, z)
		prior = z
	}
	return out
}

// Forward returns the output layer for a single input vector.
func (m *Model) Forward(input []float64) ([]float64, error) {
	acts, err := m.Activate(matrix.RowFromSlice(input))
	if err != nil {
		return nil, err
	}
	return acts[len(acts)-1].Data(), nil
}

// checkBatch validates that b's widths match the input and output layers.
func (m *Model) checkBatch(b *batch.Batch) error {
	if b.InputSize() != m.arch[0] {
		return fmt.Errorf("%w: batch input width %d, model expects %d",
			matrix.ErrShapeMismatch, b.InputSize(), m.arch[0])
	}
	if out := m.arch[len(m.arch)-1]; b.OutputSize() != out {
		return fmt.Errorf("%w: batch expected width %d, model outputs %d",
			matrix.ErrShapeMismatch, b.OutputSize(), out)
	}
	if b.Len() == 0 {
		return fmt.Errorf("batch: %w", matrix.ErrEmpty)
	}
	return nil
}

// Cost returns the summed squared error of the outputs over every sample,
// divided by the number of samples (not by the output width).
func (m *Model) Cost(b *batch.Batch) (float64, error) {
	if err := m.checkBatch(b); err != nil {
		return 0, err
	}
	total := parallel.MapReduce(b.Len(), m.parallel, func(start, end int) float64 {
		sum := 0.0
		for i := start; i < end; i++ {
			x, y := b.Sample(i)
			acts := m.activate(matrix.RowFromSlice(x))
			for c, o := range acts[len(acts)-1].Data() {
				d := o - y[c]
				sum += d * d
			}
		}
		return sum
	}, func(acc, part float64) float64 { return acc + part })
	return total / float64(b.Len()), nil
}

// Learn applies one gradient-descent step:
//
//	weights[i] -= rate * weightGrads[i]
//	biases[i]  -= rate * biasGrads[i]
//
// All shapes are checked before any parameter changes, so a mismatch leaves
// the model untouched.
func (m *Model) Learn(weightGrads, biasGrads []*matrix.Matrix, rate float64) error {
	if err := m.ValidateGradients(weightGrads, biasGrads); err != nil {
		return err
	}
	for i := range m.weights {
		m.weights[i].AddScaled(-rate, weightGrads[i])
		m.biases[i].AddScaled(-rate, biasGrads[i])
	}
	return nil
}

// ValidateGradients checks that weightGrads and biasGrads match the shapes of
// Weights() and Biases().
func (m *Model) ValidateGradients(weightGrads, biasGrads []*matrix.Matrix) error {
	if len(weightGrads) != len(m.weights) || len(biasGrads) != len(m.biases) {
		return fmt.Errorf("%w: got %d weight and %d bias gradients for %d layers",
			matrix.ErrShapeMismatch, len(weightGrads), len(biasGrads), len(m.weights))
	}
	for i := range m.weights {
		if !weightGrads[i].SameShape(m.weights[i]) {
			return fmt.Errorf("%w: weight gradient %d is [%d,%d], want [%d,%d]", matrix.ErrShapeMismatch, i,
				weightGrads[i].Rows(), weightGrads[i].Cols(), m.weights[i].Rows(), m.weights[i].Cols())
		}
		if !biasGrads[i].SameShape(m.biases[i]) {
			return fmt.Errorf("%w: bias gradient %d is [%d,%d], want [%d,%d]", matrix.ErrShapeMismatch, i,
				biasGrads[i].Rows(), biasGrads[i].Cols(), m.biases[i].Rows(), m.biases[i].Cols())
		}
	}
	return nil
}
