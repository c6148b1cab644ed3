package optim

import (
	"math"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSProp and momentum:
//   - an exponential moving average of gradients (first moment)
//   - an exponential moving average of squared gradients (second moment)
//   - bias correction for the zero initialization of both averages,
//     folded into a per-step effective learning rate
//
// Update rule (t is the step count, starting at 1):
//
//	lr_t = lr * sqrt(1 - beta2^t) / (1 - beta1^t)
//	m    = beta1 * m + (1-beta1) * gradient
//	v    = beta2 * v + (1-beta2) * gradient²
//	step = -lr_t * m / (sqrt(v) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.001})
type Adam struct {
	base
	beta1 float64
	beta2 float64
	eps   float64

	t int       // step count for bias correction
	m []float64 // first moment, allocated lazily on the first step
	v []float64 // second moment
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR          float64 // Learning rate (default: 0.001)
	Beta1       float64 // Decay rate for the first moment (default: 0.9)
	Beta2       float64 // Decay rate for the second moment (default: 0.999)
	Eps         float64 // Term for numerical stability (default: 1e-8)
	WeightDecay float64 // Weight decay coefficient (default: 0.0)
}

// NewAdam creates a new Adam optimizer.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	a := &Adam{beta1: config.Beta1, beta2: config.Beta2, eps: config.Eps}
	a.base = base{lr: config.LR, weightDecay: config.WeightDecay, rule: a}
	return a
}

// Name returns "adam".
func (a *Adam) Name() string { return "adam" }

// Timestep returns the number of steps taken so far.
func (a *Adam) Timestep() int { return a.t }

func (a *Adam) computeStep(grad []float64) []float64 {
	if a.m == nil {
		a.m = make([]float64, len(grad))
		a.v = make([]float64, len(grad))
	}

	a.t++
	lrT := a.lr * math.Sqrt(1-math.Pow(a.beta2, float64(a.t))) /
		(1 - math.Pow(a.beta1, float64(a.t)))

	step := make([]float64, len(grad))
	for i, g := range grad {
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g
		step[i] = -lrT * a.m[i] / (math.Sqrt(a.v[i]) + a.eps)
	}
	return step
}
