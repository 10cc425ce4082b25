// Copyright 2026 The Gunn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/sanika-n/gunn-computational-graphs/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64.
type DType = tensor.DType

// Float is the subset of DType for which gradients are defined.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// RawTensor is a fixed-shape dense numeric array with a reference-counted
// buffer.
type RawTensor = tensor.RawTensor

// Backend is the compute interface for elementwise tensor arithmetic.
type Backend = tensor.Backend

// Creation functions

// NewRaw creates a zero-filled RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a RawTensor from a Go slice, copying the data in.
//
// Example:
//
//	raw, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, tensor.CPU)
func FromSlice[T DType](data []T, shape Shape, device Device) (*RawTensor, error) {
	return tensor.FromSlice(data, shape, device)
}

// ZerosLike creates a zero-filled RawTensor matching t's shape and dtype.
func ZerosLike(t *RawTensor) *RawTensor {
	return tensor.ZerosLike(t)
}

// OnesLike creates a one-filled RawTensor matching t's shape and dtype.
func OnesLike(t *RawTensor) *RawTensor {
	return tensor.OnesLike(t)
}

// Full creates a RawTensor filled with a specific value.
func Full[T DType](shape Shape, value T, device Device) (*RawTensor, error) {
	return tensor.Full(shape, value, device)
}
