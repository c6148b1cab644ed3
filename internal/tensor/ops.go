package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Elementwise binary operations. All of them are pure: the receiver and the
// operand are left untouched and a freshly allocated tensor is returned.
// Operand shapes must match exactly; there is no implicit broadcasting
// between tensors, only against scalars (AddScalar/MulScalar).

func (t *Tensor) binaryOp(other *Tensor, name string) *Tensor {
	if !t.shape.Equal(other.shape) {
		panic(fmt.Sprintf("tensor: %s with mismatched shapes %v and %v", name, t.shape, other.shape))
	}
	return t.Clone()
}

// Add returns t + other elementwise.
func (t *Tensor) Add(other *Tensor) *Tensor {
	out := t.binaryOp(other, "Add")
	floats.Add(out.data, other.data)
	return out
}

// Sub returns t - other elementwise.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	out := t.binaryOp(other, "Sub")
	floats.Sub(out.data, other.data)
	return out
}

// Mul returns t * other elementwise.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	out := t.binaryOp(other, "Mul")
	floats.Mul(out.data, other.data)
	return out
}

// Div returns t / other elementwise.
func (t *Tensor) Div(other *Tensor) *Tensor {
	out := t.binaryOp(other, "Div")
	floats.Div(out.data, other.data)
	return out
}

// AddAssign adds other to t in place. Shapes must match exactly.
func (t *Tensor) AddAssign(other *Tensor) {
	if !t.shape.Equal(other.shape) {
		panic(fmt.Sprintf("tensor: AddAssign with mismatched shapes %v and %v", t.shape, other.shape))
	}
	floats.Add(t.data, other.data)
}

// AddScalar returns t + s, broadcasting the scalar.
func (t *Tensor) AddScalar(s float64) *Tensor {
	out := t.Clone()
	floats.AddConst(s, out.data)
	return out
}

// MulScalar returns t * s, broadcasting the scalar.
func (t *Tensor) MulScalar(s float64) *Tensor {
	out := t.Clone()
	floats.Scale(s, out.data)
	return out
}

// Neg returns -t.
func (t *Tensor) Neg() *Tensor {
	return t.MulScalar(-1)
}

// Square returns t * t elementwise.
func (t *Tensor) Square() *Tensor {
	out := t.Clone()
	floats.Mul(out.data, t.data)
	return out
}

// Sqrt returns the elementwise square root.
func (t *Tensor) Sqrt() *Tensor {
	out := t.Clone()
	for i, v := range out.data {
		out.data[i] = math.Sqrt(v)
	}
	return out
}

// Pow returns the elementwise power t^p.
func (t *Tensor) Pow(p float64) *Tensor {
	out := t.Clone()
	for i, v := range out.data {
		out.data[i] = math.Pow(v, p)
	}
	return out
}

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 {
	return floats.Sum(t.data)
}
