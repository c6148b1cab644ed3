// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/tensor"
)

// Parameter represents a trainable parameter: a named tensor plus the
// gradient computed for it in the current iteration.
type Parameter = nn.Parameter

// ParamGrad pairs a mutable parameter with its gradient.
type ParamGrad = nn.ParamGrad

// Source produces the ordered (parameter, gradient) pairs an optimizer
// consumes. Ordering must be stable for the duration of one optimizer step.
type Source = nn.Source

// ParamGroup is the simplest Source: a fixed, ordered collection of
// parameters, each paired with its currently attached gradient.
type ParamGroup = nn.ParamGroup

// NewParameter creates a new trainable parameter.
//
// Example:
//
//	w := nn.NewParameter("weight", tensor.Zeros(tensor.Shape{3, 4}))
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}
