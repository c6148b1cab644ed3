// Package optim implements optimization algorithms and learning rate
// schedules for training.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD, Momentum, RMSProp, Adam: gradient descent variants
//   - Scheduler interface with StepLR, MultiStepLR, ExponentialLR, LinearLR
//
// All optimizers share the same update protocol: gradients from every
// parameter are flattened and concatenated into one vector, the variant's
// recurrence computes a step vector of the same length, and the step is
// sliced back into per-parameter blocks, reshaped and applied in place
// (minus a weight decay term). The recurrence state therefore lives on the
// flattened vector and is completely decoupled from the parameter/layer
// structure.
//
// None of the types in this package are safe for concurrent use: a single
// training loop is expected to drive a single optimizer/scheduler pair.
//
// Example usage:
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//	sched, _ := optim.NewStepLR(opt, optim.StepLRConfig{StepSize: 30})
//
//	for epoch := range epochs {
//	    computeGradients(model, data)
//	    if _, err := opt.Step(model.Parameters()); err != nil {
//	        return err
//	    }
//	    sched.Step()
//	}
package optim

import (
	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/tensor"
)

// ErrShapeMismatch is returned when a parameter source hands out a gradient
// whose shape differs from its parameter, or when a step rule produces a
// vector that does not match the flattened gradient length. Either would
// silently misalign the block slicing, so the step is aborted instead.
var ErrShapeMismatch = errors.New("optim: shape mismatch")

// Optimizer converts per-parameter gradients into in-place parameter
// updates. Implementations differ only in the recurrence used to turn the
// flattened gradient vector into a step vector.
type Optimizer interface {
	// Step reads all (parameter, gradient) pairs from src, computes the
	// update for every parameter and applies it in place. It returns the
	// ordered per-parameter updates actually applied, useful for
	// diagnostics and testing.
	Step(src nn.Source) ([]*tensor.Tensor, error)

	// LR returns the current learning rate.
	LR() float64

	// SetLR overwrites the learning rate. Called by schedulers; the
	// optimizer's field is the single source of truth for the value.
	SetLR(lr float64)

	// Name returns the optimizer's name, e.g. "adam".
	Name() string
}

// stepRule is the recurrence behind an optimizer variant. It is called once
// per Step, in strict call order, with the flattened gradient vector, and
// must return a step vector of the same length.
type stepRule interface {
	computeStep(grad []float64) []float64
}

// base carries the state and update protocol shared by all optimizer
// variants. Variants embed base and install themselves as its rule.
type base struct {
	lr          float64
	weightDecay float64
	rule        stepRule
}

// LR returns the current learning rate.
func (b *base) LR() float64 { return b.lr }

// SetLR overwrites the learning rate.
func (b *base) SetLR(lr float64) { b.lr = lr }

// WeightDecay returns the weight decay coefficient.
func (b *base) WeightDecay() float64 { return b.weightDecay }

// Step implements the shared flatten/compute/apply protocol:
//
//  1. flatten every gradient and concatenate in source order,
//  2. run the variant's recurrence over the flattened vector,
//  3. slice the result back into per-parameter blocks, reshape each block
//     to its parameter's shape, subtract weightDecay*param, and add the
//     update to the parameter in place.
func (b *base) Step(src nn.Source) ([]*tensor.Tensor, error) {
	pairs := src.ParamsAndGrads()

	grads := make([]*tensor.Tensor, len(pairs))
	for i, pg := range pairs {
		if !pg.Grad.Shape().Equal(pg.Param.Tensor().Shape()) {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"gradient for parameter %q has shape %v, want %v",
				pg.Param.Name(), pg.Grad.Shape(), pg.Param.Tensor().Shape())
		}
		grads[i] = pg.Grad
	}

	flatGrads := tensor.Concat(grads...)
	flatStep := b.rule.computeStep(flatGrads.Data())
	if len(flatStep) != flatGrads.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"step rule returned %d elements for %d gradients",
			len(flatStep), flatGrads.NumElements())
	}

	updates := make([]*tensor.Tensor, 0, len(pairs))
	offset := 0
	for _, pg := range pairs {
		param := pg.Param.Tensor()
		n := param.NumElements()

		block, err := tensor.FromSlice(flatStep[offset:offset+n], tensor.Shape{n})
		if err != nil {
			return nil, err
		}
		update, err := block.Reshape(param.Shape())
		if err != nil {
			return nil, err
		}
		if b.weightDecay != 0 {
			update = update.Sub(param.MulScalar(b.weightDecay))
		}

		param.AddAssign(update)
		updates = append(updates, update)
		offset += n
	}
	return updates, nil
}
