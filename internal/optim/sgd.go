package optim

import (
	"gonum.org/v1/gonum/floats"
)

// SGD implements plain stochastic gradient descent.
//
// Update rule:
//
//	step = -lr * gradient
//
// Example:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.01})
type SGD struct {
	base
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR          float64 // Learning rate (default: 0.01)
	WeightDecay float64 // Weight decay coefficient (default: 0.0)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	s := &SGD{}
	s.base = base{lr: config.LR, weightDecay: config.WeightDecay, rule: s}
	return s
}

// Name returns "sgd".
func (s *SGD) Name() string { return "sgd" }

func (s *SGD) computeStep(grad []float64) []float64 {
	step := make([]float64, len(grad))
	floats.AddScaled(step, -s.lr, grad)
	return step
}
