// Package cpu implements the pure Go CPU backend for elementwise tensor
// arithmetic.
package cpu

import (
	"fmt"

	"github.com/sanika-n/gunn-computational-graphs/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// checkBinaryOperands validates that a and b agree on shape and dtype.
// Shape validation happens at the graph-builder boundary, so a mismatch
// reaching the backend is a programmer error.
func checkBinaryOperands(op string, a, b *tensor.RawTensor) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}
}

// newResult allocates a result tensor matching x.
func (cpu *CPUBackend) newResult(op string, x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinaryOperands("add", a, b)

	// Fast path: accumulate into a when nothing else references its buffer
	if a.IsUnique() {
		addInplace(a, b)
		return a
	}

	result := cpu.newResult("add", a)
	addVectorized(result, a, b)
	return result
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinaryOperands("sub", a, b)

	if a.IsUnique() {
		subInplace(a, b)
		return a
	}

	result := cpu.newResult("sub", a)
	subVectorized(result, a, b)
	return result
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinaryOperands("mul", a, b)

	if a.IsUnique() {
		mulInplace(a, b)
		return a
	}

	result := cpu.newResult("mul", a)
	mulVectorized(result, a, b)
	return result
}

// Div performs element-wise division.
//
// Division by zero is not special-cased: float results follow IEEE-754
// (Inf/NaN flow through as data), integer division by zero panics as in
// ordinary Go.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinaryOperands("div", a, b)

	if a.IsUnique() {
		divInplace(a, b)
		return a
	}

	result := cpu.newResult("div", a)
	divVectorized(result, a, b)
	return result
}

// Neg computes element-wise negation: -x.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("neg", x)

	switch x.DType() {
	case tensor.Float32:
		negFloat32(result.AsFloat32(), x.AsFloat32())
	case tensor.Float64:
		negFloat64(result.AsFloat64(), x.AsFloat64())
	case tensor.Int32:
		src := x.AsInt32()
		dst := result.AsInt32()
		for i, v := range src {
			dst[i] = -v
		}
	case tensor.Int64:
		src := x.AsInt64()
		dst := result.AsInt64()
		for i, v := range src {
			dst[i] = -v
		}
	default:
		panic(fmt.Sprintf("neg: unsupported dtype %s", x.DType()))
	}

	return result
}

// Recip computes element-wise reciprocal: 1/x.
//
// Zero inputs produce Inf per IEEE-754.
func (cpu *CPUBackend) Recip(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("recip", x)

	switch x.DType() {
	case tensor.Float32:
		recipFloat32(result.AsFloat32(), x.AsFloat32())
	case tensor.Float64:
		recipFloat64(result.AsFloat64(), x.AsFloat64())
	default:
		panic(fmt.Sprintf("recip: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}
