package tensor

import "fmt"

// FromSlice creates a RawTensor from a Go slice.
// The slice is copied into the tensor's memory.
//
// Example:
//
//	raw, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, tensor.CPU)
func FromSlice[T DType](data []T, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case Float32:
		copy(raw.AsFloat32(), any(data).([]float32))
	case Float64:
		copy(raw.AsFloat64(), any(data).([]float64))
	case Int32:
		copy(raw.AsInt32(), any(data).([]int32))
	case Int64:
		copy(raw.AsInt64(), any(data).([]int64))
	}

	return raw, nil
}

// ZerosLike creates a zero-filled RawTensor with the same shape, dtype and
// device as t.
func ZerosLike(t *RawTensor) *RawTensor {
	raw, err := NewRaw(t.Shape(), t.DType(), t.Device())
	if err != nil {
		panic(err) // t carries a valid shape already
	}
	// Data is already zero-initialized by make()
	return raw
}

// OnesLike creates a one-filled RawTensor with the same shape, dtype and
// device as t. This is the conventional seed gradient for a backward pass.
func OnesLike(t *RawTensor) *RawTensor {
	raw := ZerosLike(t)
	switch raw.DType() {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = 1
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	case Int32:
		data := raw.AsInt32()
		for i := range data {
			data[i] = 1
		}
	case Int64:
		data := raw.AsInt64()
		for i := range data {
			data[i] = 1
		}
	}
	return raw
}

// Full creates a RawTensor filled with a specific value.
//
// Example:
//
//	raw, err := tensor.Full(Shape{3}, float32(0.5), tensor.CPU)
func Full[T DType](shape Shape, value T, device Device) (*RawTensor, error) {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = any(value).(float32)
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = any(value).(float64)
		}
	case Int32:
		data := raw.AsInt32()
		for i := range data {
			data[i] = any(value).(int32)
		}
	case Int64:
		data := raw.AsInt64()
		for i := range data {
			data[i] = any(value).(int64)
		}
	}

	return raw, nil
}
