// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/descent-ml/descent/internal/optim"
)

// Scheduler is the common interface for all learning rate schedules.
type Scheduler = optim.Scheduler

// StepLR multiplies the learning rate by gamma every StepSize calls.
type StepLR = optim.StepLR

// StepLRConfig contains configuration for StepLR.
type StepLRConfig = optim.StepLRConfig

// NewStepLR creates a StepLR schedule wrapping opt.
//
// Example:
//
//	sched, err := optim.NewStepLR(opt, optim.StepLRConfig{StepSize: 30, Gamma: 0.1})
func NewStepLR(opt Optimizer, config StepLRConfig) (*StepLR, error) {
	return optim.NewStepLR(opt, config)
}

// MultiStepLR multiplies the learning rate by gamma at each milestone.
type MultiStepLR = optim.MultiStepLR

// MultiStepLRConfig contains configuration for MultiStepLR.
type MultiStepLRConfig = optim.MultiStepLRConfig

// NewMultiStepLR creates a MultiStepLR schedule wrapping opt. Milestones
// must be strictly increasing.
//
// Example:
//
//	sched, err := optim.NewMultiStepLR(opt, optim.MultiStepLRConfig{
//	    Milestones: []int{30, 60, 90},
//	    Gamma:      0.1,
//	})
func NewMultiStepLR(opt Optimizer, config MultiStepLRConfig) (*MultiStepLR, error) {
	return optim.NewMultiStepLR(opt, config)
}

// ExponentialLR decays the learning rate exponentially over a fixed window
// of steps, then freezes it.
type ExponentialLR = optim.ExponentialLR

// ExponentialLRConfig contains configuration for ExponentialLR.
type ExponentialLRConfig = optim.ExponentialLRConfig

// NewExponentialLR creates an ExponentialLR schedule wrapping opt.
//
// Example:
//
//	sched, err := optim.NewExponentialLR(opt, optim.ExponentialLRConfig{DecaySteps: 1000})
func NewExponentialLR(opt Optimizer, config ExponentialLRConfig) (*ExponentialLR, error) {
	return optim.NewExponentialLR(opt, config)
}

// LinearLR decays the learning rate by a fixed increment per step inside a
// configured window.
type LinearLR = optim.LinearLR

// LinearLRConfig contains configuration for LinearLR.
type LinearLRConfig = optim.LinearLRConfig

// NewLinearLR creates a LinearLR schedule wrapping opt. FinalLR must be
// strictly less than the optimizer's current learning rate.
//
// Example:
//
//	sched, err := optim.NewLinearLR(opt, optim.LinearLRConfig{
//	    DecaySteps: 1000,
//	    FinalLR:    1e-6,
//	})
func NewLinearLR(opt Optimizer, config LinearLRConfig) (*LinearLR, error) {
	return optim.NewLinearLR(opt, config)
}
