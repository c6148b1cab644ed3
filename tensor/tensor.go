// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is an n-dimensional float64 array with a fixed shape.
//
// Tensor provides:
//   - Elementwise arithmetic (Add, Sub, Mul, Div) with exact shape checks
//   - Scalar broadcasting (AddScalar, MulScalar)
//   - Unary math (Square, Sqrt, Pow, Neg)
//   - Flatten/Reshape round-trips used by the optimizer protocol
//
// Example:
//
//	w := tensor.Zeros(tensor.Shape{2, 3})
//	g := tensor.Full(tensor.Shape{2, 3}, 0.5)
//	w.AddAssign(g.MulScalar(-0.01))
type Tensor = tensor.Tensor

// Creation functions

// New creates a tensor wrapping data with the given shape.
// The slice is used directly, not copied.
func New(data []float64, shape Shape) (*Tensor, error) {
	return tensor.New(data, shape)
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros(tensor.Shape{2, 3})
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{2, 3}, 3.14)
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Concat flattens every input tensor and concatenates the results into a
// single 1-D tensor, in argument order.
func Concat(tensors ...*Tensor) *Tensor {
	return tensor.Concat(tensors...)
}
