package optim

import (
	"math"
)

// RMSProp maintains a moving (discounted) average of the square of
// gradients and divides the gradient by the root of this average.
//
// Update rule:
//
//	meanSquare = decay * meanSquare + (1-decay) * gradient²
//	mom        = momentum * mom + lr * gradient / sqrt(meanSquare + eps)
//	step       = -mom
//
// Eps guards the division when the mean-square estimate is still exactly
// zero, e.g. on the first step with a zero gradient.
type RMSProp struct {
	base
	decay    float64
	momentum float64
	eps      float64

	meanSquare []float64 // allocated lazily on the first step
	mom        []float64
}

// RMSPropConfig holds configuration for the RMSProp optimizer.
type RMSPropConfig struct {
	LR          float64 // Learning rate (default: 0.01)
	Decay       float64 // Discount factor for the squared-gradient average (default: 0.99)
	Momentum    float64 // Momentum factor (default: 0.0)
	Eps         float64 // Term for numerical stability (default: 1e-8)
	WeightDecay float64 // Weight decay coefficient (default: 0.0)
}

// NewRMSProp creates a new RMSProp optimizer.
func NewRMSProp(config RMSPropConfig) *RMSProp {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Decay == 0 {
		config.Decay = 0.99
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	r := &RMSProp{decay: config.Decay, momentum: config.Momentum, eps: config.Eps}
	r.base = base{lr: config.LR, weightDecay: config.WeightDecay, rule: r}
	return r
}

// Name returns "rmsprop".
func (r *RMSProp) Name() string { return "rmsprop" }

func (r *RMSProp) computeStep(grad []float64) []float64 {
	if r.meanSquare == nil {
		r.meanSquare = make([]float64, len(grad))
		r.mom = make([]float64, len(grad))
	}

	step := make([]float64, len(grad))
	for i, g := range grad {
		r.meanSquare[i] = r.decay*r.meanSquare[i] + (1-r.decay)*g*g
		r.mom[i] = r.momentum*r.mom[i] + r.lr*g/math.Sqrt(r.meanSquare[i]+r.eps)
		step[i] = -r.mom[i]
	}
	return step
}
