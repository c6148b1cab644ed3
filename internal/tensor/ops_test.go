package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/tensor"
)

func TestBinaryOps(t *testing.T) {
	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b, _ := tensor.FromSlice([]float64{4, 3, 2, 1}, tensor.Shape{2, 2})

	assert.Equal(t, []float64{5, 5, 5, 5}, a.Add(b).Data())
	assert.Equal(t, []float64{-3, -1, 1, 3}, a.Sub(b).Data())
	assert.Equal(t, []float64{4, 6, 6, 4}, a.Mul(b).Data())
	assert.Equal(t, []float64{0.25, 2.0 / 3.0, 1.5, 4}, a.Div(b).Data())

	// Operands stay untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
	assert.Equal(t, []float64{4, 3, 2, 1}, b.Data())
}

func TestBinaryOpShapeMismatchPanics(t *testing.T) {
	a := tensor.Zeros(tensor.Shape{2, 2})
	b := tensor.Zeros(tensor.Shape{4})
	assert.Panics(t, func() { a.Add(b) })
	assert.Panics(t, func() { a.AddAssign(b) })
}

func TestAddAssign(t *testing.T) {
	a, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	b, _ := tensor.FromSlice([]float64{0.5, -0.5}, tensor.Shape{2})

	a.AddAssign(b)
	assert.Equal(t, []float64{1.5, 1.5}, a.Data())
}

func TestScalarOps(t *testing.T) {
	a, _ := tensor.FromSlice([]float64{1, -2, 3}, tensor.Shape{3})

	assert.Equal(t, []float64{2, -1, 4}, a.AddScalar(1).Data())
	assert.Equal(t, []float64{2, -4, 6}, a.MulScalar(2).Data())
	assert.Equal(t, []float64{-1, 2, -3}, a.Neg().Data())
}

func TestUnaryOps(t *testing.T) {
	a, _ := tensor.FromSlice([]float64{4, 9, 16}, tensor.Shape{3})

	assert.Equal(t, []float64{16, 81, 256}, a.Square().Data())
	assert.Equal(t, []float64{2, 3, 4}, a.Sqrt().Data())

	p := a.Pow(0.5)
	require.Equal(t, 3, p.NumElements())
	assert.InDelta(t, 2, p.Data()[0], 1e-12)
	assert.InDelta(t, 3, p.Data()[1], 1e-12)
}

func TestSum(t *testing.T) {
	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	assert.Equal(t, 10.0, a.Sum())
}
