// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms and learning rate
// schedules for training.
//
// # Overview
//
// This package contains:
//   - SGD: plain stochastic gradient descent
//   - Momentum: SGD with a momentum accumulator
//   - RMSProp: discounted squared-gradient scaling with optional momentum
//   - Adam: adaptive moment estimation with bias correction
//   - StepLR, MultiStepLR, ExponentialLR, LinearLR schedules
//   - Optimizer and Scheduler interfaces
//
// Every optimizer applies the same protocol per step: flatten all
// gradients into one vector in source order, run the variant's recurrence
// over it, slice the resulting step back into per-parameter blocks and
// apply each block in place, minus a weight decay term.
//
// Optimizers and schedulers are not safe for concurrent use; one training
// loop drives one optimizer/scheduler pair.
//
// # Basic Usage
//
//	import (
//	    "github.com/descent-ml/descent/nn"
//	    "github.com/descent-ml/descent/optim"
//	)
//
//	func train(group nn.ParamGroup) error {
//	    opt := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//	    sched, err := optim.NewMultiStepLR(opt, optim.MultiStepLRConfig{
//	        Milestones: []int{30, 60},
//	        Gamma:      0.1,
//	    })
//	    if err != nil {
//	        return err
//	    }
//
//	    for epoch := 0; epoch < 90; epoch++ {
//	        // ... attach gradients to the group's parameters ...
//	        if _, err := opt.Step(group); err != nil {
//	            return err
//	        }
//	        group.ZeroGrad()
//	        sched.Step()
//	    }
//	    return nil
//	}
//
// # Training Loop Pattern
//
//	for epoch := range numEpochs {
//	    for batch := range batches {
//	        // 1. Forward pass and loss (outside this module)
//	        // 2. Compute gradients, attach via Parameter.SetGrad
//	        // 3. Update parameters
//	        if _, err := opt.Step(group); err != nil {
//	            return err
//	        }
//	        // 4. Clear gradients
//	        group.ZeroGrad()
//	    }
//	    // 5. Adjust the learning rate once per epoch
//	    sched.Step()
//	}
package optim
