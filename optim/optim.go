// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/descent-ml/descent/internal/optim"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// ErrShapeMismatch is returned by Step when gradient shapes do not line up
// with their parameters, or a step rule produces a vector of the wrong
// length.
var ErrShapeMismatch = optim.ErrShapeMismatch

// ErrInvalidConfig is returned by scheduler constructors on parameters the
// policy cannot honor.
var ErrInvalidConfig = optim.ErrInvalidConfig

// SGD (Stochastic Gradient Descent)

// SGD implements plain stochastic gradient descent.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.01})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Momentum

// Momentum implements SGD with a momentum accumulator.
type Momentum = optim.Momentum

// MomentumConfig contains configuration for the Momentum optimizer.
type MomentumConfig = optim.MomentumConfig

// NewMomentum creates a new Momentum optimizer.
//
// Example:
//
//	opt := optim.NewMomentum(optim.MomentumConfig{LR: 0.01, Momentum: 0.9})
func NewMomentum(config MomentumConfig) *Momentum {
	return optim.NewMomentum(config)
}

// RMSProp

// RMSProp implements the RMSProp optimizer.
type RMSProp = optim.RMSProp

// RMSPropConfig contains configuration for the RMSProp optimizer.
type RMSPropConfig = optim.RMSPropConfig

// NewRMSProp creates a new RMSProp optimizer.
//
// Example:
//
//	opt := optim.NewRMSProp(optim.RMSPropConfig{LR: 0.01, Decay: 0.99})
func NewRMSProp(config RMSPropConfig) *RMSProp {
	return optim.NewRMSProp(config)
}

// Adam (Adaptive Moment Estimation)

// Adam implements the Adam optimizer with bias correction.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
//
// Example:
//
//	opt := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Beta1: 0.9,
//	    Beta2: 0.999,
//	    Eps:   1e-8,
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}
