package optim

import (
	"gonum.org/v1/gonum/floats"
)

// Momentum implements SGD with a momentum accumulator.
//
// Update rule:
//
//	acc  = momentum * acc + gradient
//	step = -lr * acc
//
// Momentum accelerates descent along directions that persist across
// iterations and dampens oscillations. With Momentum == 0 the rule reduces
// exactly to plain SGD.
type Momentum struct {
	base
	momentum float64
	acc      []float64 // allocated lazily on the first step
}

// MomentumConfig holds configuration for the Momentum optimizer.
type MomentumConfig struct {
	LR          float64 // Learning rate (default: 0.01)
	Momentum    float64 // Momentum factor (default: 0.0, typical: 0.9)
	WeightDecay float64 // Weight decay coefficient (default: 0.0)
}

// NewMomentum creates a new Momentum optimizer.
func NewMomentum(config MomentumConfig) *Momentum {
	if config.LR == 0 {
		config.LR = 0.01
	}
	m := &Momentum{momentum: config.Momentum}
	m.base = base{lr: config.LR, weightDecay: config.WeightDecay, rule: m}
	return m
}

// Name returns "momentum".
func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) computeStep(grad []float64) []float64 {
	if m.acc == nil {
		m.acc = make([]float64, len(grad))
	}
	// acc = momentum*acc + grad
	floats.Scale(m.momentum, m.acc)
	floats.Add(m.acc, grad)

	step := make([]float64, len(grad))
	floats.AddScaled(step, -m.lr, m.acc)
	return step
}
