// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the parameter-side contract between a model and the
// descent optimization layer.
//
// # Overview
//
// This package contains:
//   - Parameter: a named trainable tensor with a gradient slot
//   - Source: the ordered (parameter, gradient) sequence optimizers consume
//   - ParamGroup: a slice-backed Source for hand-built models and tests
//
// The layer graph and forward/backward computation live outside this
// module; anything that can produce gradients for an ordered set of
// parameters can implement Source.
//
// # Basic Usage
//
//	w := nn.NewParameter("weight", tensor.Zeros(tensor.Shape{3, 4}))
//	b := nn.NewParameter("bias", tensor.Zeros(tensor.Shape{4}))
//	group := nn.ParamGroup{w, b}
//
//	// each iteration:
//	w.SetGrad(gradW)
//	b.SetGrad(gradB)
//	opt.Step(group)
//	group.ZeroGrad()
package nn
