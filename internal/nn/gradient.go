package nn

import (
	"github.com/born-ml/snail/internal/batch"
	"github.com/born-ml/snail/internal/matrix"
	"github.com/born-ml/snail/internal/parallel"
)

// gradients holds per-layer weight and bias gradient accumulators shaped
// like the model's parameters.
type gradients struct {
	weights []*matrix.Matrix
	biases  []*matrix.Matrix
}

func (m *Model) zeroGradients() *gradients {
	g := &gradients{
		weights: make([]*matrix.Matrix, len(m.weights)),
		biases:  make([]*matrix.Matrix, len(m.biases)),
	}
	for i := range m.weights {
		g.weights[i] = matrix.ZerosLike(m.weights[i])
		g.biases[i] = matrix.ZerosLike(m.biases[i])
	}
	return g
}

// add sums other into g elementwise.
func (g *gradients) add(other *gradients) *gradients {
	for i := range g.weights {
		g.weights[i].AddAssign(other.weights[i])
		g.biases[i].AddAssign(other.biases[i])
	}
	return g
}

func (g *gradients) scale(s float64) {
	for i := range g.weights {
		g.weights[i].Scale(s)
		g.biases[i].Scale(s)
	}
}

// Gradient returns the per-layer weight and bias gradients of the batch
// cost, averaged over the samples. The result has the same shapes as
// Weights() and Biases() and can be passed to Learn.
//
// Samples are split into chunks that run concurrently per the model's
// parallel config. Each chunk sums its own samples and the partial sums are
// combined in chunk order, so repeated calls on the same batch and config
// give identical results.
func (m *Model) Gradient(b *batch.Batch) (weightGrads, biasGrads []*matrix.Matrix, err error) {
	if err := m.checkBatch(b); err != nil {
		return nil, nil, err
	}

	total := parallel.MapReduce(b.Len(), m.parallel, func(start, end int) *gradients {
		acc := m.zeroGradients()
		for i := start; i < end; i++ {
			x, y := b.Sample(i)
			m.backprop(acc, x, y)
		}
		return acc
	}, (*gradients).add)

	total.scale(1.0 / float64(b.Len()))
	return total.weights, total.biases, nil
}

// backprop adds the gradient contribution of one sample (x, y) into acc.
//
// Walking from the output layer L down to 1, with a[l] the activations:
//
//	delta         = act'(a[l]) ⊙ err          (err starts as a[L] - y)
//	dW[l-1]      += a[l-1]ᵀ · delta
//	dB[l-1]      += delta
//	err           = delta · W[l-1]ᵀ
func (m *Model) backprop(acc *gradients, x, y []float64) {
	acts := m.activate(matrix.RowFromSlice(x))
	last := len(acts) - 1

	errRow := acts[last].Sub(matrix.RowFromSlice(y))
	for l := last; l >= 1; l-- {
		delta := acts[l].Clone()
		delta.Apply(m.activation.Derivative)
		delta.MulAssign(errRow)

		acc.weights[l-1].AddAssign(acts[l-1].T().Dot(delta))
		acc.biases[l-1].AddAssign(delta)

		if l > 1 {
			errRow = delta.Dot(m.weights[l-1].T())
		}
	}
}
