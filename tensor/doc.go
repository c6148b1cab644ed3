// Copyright 2025 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the numeric arrays consumed by
// the descent optimization layer.
//
// # Overview
//
// This package contains:
//   - Tensor: an n-dimensional float64 array with a fixed shape
//   - Shape: dimension list with element-count and equality helpers
//   - Creation helpers: Zeros, Full, FromSlice, New, Concat
//
// All elementwise operations are pure and shape-checked; the only implicit
// broadcasting is against scalars. Arithmetic kernels are backed by
// gonum's floats package.
//
// # Basic Usage
//
//	import "github.com/descent-ml/descent/tensor"
//
//	func main() {
//	    w, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    g := tensor.Full(tensor.Shape{2, 2}, 0.5)
//
//	    update := g.MulScalar(-0.01)
//	    w.AddAssign(update)
//	}
package tensor
