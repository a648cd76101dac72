package optim

import (
	"math"

	"github.com/born-ml/snail/internal/matrix"
	"github.com/born-ml/snail/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int    // Timestep for bias correction
	m     *state // First moment estimates
	v     *state // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer, filling unset hyperparameters with
// the defaults listed on AdamConfig.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}
}

// Step performs a single optimization step using Adam algorithm.
func (a *Adam) Step(model *nn.Model, weightGrads, biasGrads []*matrix.Matrix) error {
	if err := model.ValidateGradients(weightGrads, biasGrads); err != nil {
		return err
	}
	if !a.m.matches(model) || !a.v.matches(model) {
		a.m, a.v, a.t = newState(model), newState(model), 0
	}
	a.t++

	bc1 := 1 - math.Pow(a.beta1, float64(a.t))
	bc2 := 1 - math.Pow(a.beta2, float64(a.t))

	wu := make([]*matrix.Matrix, len(weightGrads))
	bu := make([]*matrix.Matrix, len(biasGrads))
	for i := range weightGrads {
		wu[i] = a.update(a.m.weights[i], a.v.weights[i], weightGrads[i], bc1, bc2)
		bu[i] = a.update(a.m.biases[i], a.v.biases[i], biasGrads[i], bc1, bc2)
	}
	return model.Learn(wu, bu, a.lr)
}

// update advances the moments of one parameter and returns the step
// direction m_hat / (sqrt(v_hat) + eps).
func (a *Adam) update(m, v, grad *matrix.Matrix, bc1, bc2 float64) *matrix.Matrix {
	md, vd, gd := m.Data(), v.Data(), grad.Data()
	out := matrix.ZerosLike(grad)
	od := out.Data()
	for j, g := range gd {
		md[j] = a.beta1*md[j] + (1-a.beta1)*g
		vd[j] = a.beta2*vd[j] + (1-a.beta2)*g*g
		od[j] = (md[j] / bc1) / (math.Sqrt(vd[j]/bc2) + a.eps)
	}
	return out
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}
