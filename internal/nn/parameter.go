package nn

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// Parameter represents a trainable parameter of a model.
//
// Parameters are tensors that are mutated in place by an optimizer. They
// typically represent weights and biases of layers. The gradient slot is
// filled by whatever computes gradients (backprop, or by hand in tests and
// small models) before the optimizer step, and is read-only from the
// optimizer's perspective.
//
// Example:
//
//	w := nn.NewParameter("weight", tensor.Zeros(tensor.Shape{3, 4}))
//	w.SetGrad(grad)      // after the backward pass
//	optimizer.Step(group) // reads w.Grad(), mutates w.Tensor()
type Parameter struct {
	name   string
	tensor *tensor.Tensor
	grad   *tensor.Tensor
}

// NewParameter creates a new trainable parameter.
//
// The parameter tensor should be initialized before creating the Parameter.
// The gradient slot starts empty and is attached via SetGrad.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
		grad:   nil,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient has been attached since the last ZeroGrad.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter) SetGrad(grad *tensor.Tensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
//
// This should be called after each optimizer step to avoid reusing a stale
// gradient on the next iteration.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
