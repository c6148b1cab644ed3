package tensor

import "fmt"

// Tensor is an n-dimensional float64 array with a fixed shape, stored
// row-major in a flat slice.
//
// Tensors are the currency of the optimization layer: parameters, gradients
// and updates are all Tensors. Elementwise operations return new tensors;
// the only mutating entry points are AddAssign and direct Data access.
//
// Example:
//
//	w := tensor.Zeros(tensor.Shape{3, 4})
//	g := tensor.Full(tensor.Shape{3, 4}, 0.5)
//	w.AddAssign(g.MulScalar(-0.01))
type Tensor struct {
	data  []float64
	shape Shape
}

// New creates a tensor wrapping data with the given shape.
// The slice is used directly, not copied.
func New(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Tensor{data: data, shape: shape.Clone()}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	buf := make([]float64, len(data))
	copy(buf, data)
	return New(buf, shape)
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the underlying flat slice (zero-copy, row-major).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	stride := 1
	for i := len(t.shape) - 1; i >= 0; i-- {
		idx := indices[i]
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * stride
		stride *= t.shape[i]
	}
	return t.data[offset]
}

// Item returns the scalar value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor) Item() float64 {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{data: data, shape: t.shape.Clone()}
}

// Reshape returns a view of the tensor with a new shape.
// The new shape must describe exactly the same number of elements.
// Data is shared with the receiver.
func (t *Tensor) Reshape(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(t.data) {
		return nil, fmt.Errorf("cannot reshape %v (%d elements) to %v (%d elements)",
			t.shape, len(t.data), shape, shape.NumElements())
	}
	return &Tensor{data: t.data, shape: shape.Clone()}, nil
}

// Flatten returns a 1-D view of the tensor sharing the same data.
func (t *Tensor) Flatten() *Tensor {
	return &Tensor{data: t.data, shape: Shape{len(t.data)}}
}

func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v%v", t.shape, t.data)
}
