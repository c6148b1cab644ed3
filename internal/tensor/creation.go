package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *Tensor {
	t, err := New(make([]float64, shape.NumElements()), shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return t
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{2, 3}, 3.14)
func Full(shape Shape, value float64) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Concat flattens every input tensor and concatenates the results, in
// argument order, into a single 1-D tensor. This is the flattening step of
// the optimizer protocol: the returned vector's length equals the sum of
// the inputs' element counts.
func Concat(tensors ...*Tensor) *Tensor {
	total := 0
	for _, t := range tensors {
		total += t.NumElements()
	}
	data := make([]float64, 0, total)
	for _, t := range tensors {
		data = append(data, t.data...)
	}
	return &Tensor{data: data, shape: Shape{total}}
}
