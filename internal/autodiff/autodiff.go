// Package autodiff implements reverse-mode automatic differentiation over
// a dynamically built computation graph.
//
// Architecture:
//   - Variable: a graph node holding a value, an accumulated gradient, and
//     an optional reference to the operation that produced it
//   - Operation: closed set of backward variants {add, sub, mul, div},
//     each capturing its two operands and one local derivative rule
//   - Graph builders (Add, Sub, Mul, Div): validate shapes, compute the
//     forward value on the backend, and wire the producing operation
//   - Backward driver: recursive chain-rule walk that pushes gradient
//     contributions toward the leaves, accumulating in place
//
// Usage:
//
//	backend := cpu.New()
//	x, _ := autodiff.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	y, _ := autodiff.FromSlice([]float32{4, 5, 6}, tensor.Shape{3}, backend)
//
//	z, _ := autodiff.Mul(x, y)
//	_ = z.Backward() // seeds with ones
//
//	fmt.Println(x.Grad()) // dz/dx = y = [4, 5, 6]
package autodiff

import (
	"fmt"

	"github.com/sanika-n/gunn-computational-graphs/internal/tensor"
)

// Variable is a differentiable tensor: a node in the computation graph.
//
// data is immutable after construction. grad is the only mutable field; it
// starts zero-filled with the shape of data and accumulates contributions
// during backward passes. source references the operation that produced
// this node, or nil for leaf variables built directly from raw data.
//
// A Variable may be captured as an operand by any number of operations
// (x*x captures the same node twice); the garbage collector keeps a node
// alive for as long as either the caller or a capturing operation can
// reach it.
//
// The zero Variable is an unusable placeholder with no shape; construct
// variables with New or FromSlice.
//
// Type parameter B must satisfy the tensor.Backend interface.
type Variable[T tensor.Float, B tensor.Backend] struct {
	data    *tensor.RawTensor // Immutable value
	grad    *tensor.RawTensor // Accumulated gradient, same shape as data
	source  Operation[T, B]   // Producing operation, nil for leaves
	backend B                 // Backend used for gradient arithmetic
}

// New creates a leaf Variable from a RawTensor.
// The gradient is zero-filled with the shape of data.
func New[T tensor.Float, B tensor.Backend](data *tensor.RawTensor, b B) *Variable[T, B] {
	return &Variable[T, B]{
		data:    data,
		grad:    tensor.ZerosLike(data),
		backend: b,
	}
}

// FromSlice creates a leaf Variable from a Go slice.
// The slice is copied into the variable's value.
func FromSlice[T tensor.Float, B tensor.Backend](data []T, shape tensor.Shape, b B) (*Variable[T, B], error) {
	raw, err := tensor.FromSlice(data, shape, b.Device())
	if err != nil {
		return nil, err
	}
	return New[T, B](raw, b), nil
}

// Data returns the variable's value. Treat as read-only.
func (v *Variable[T, B]) Data() *tensor.RawTensor {
	return v.data
}

// Grad returns the variable's accumulated gradient. Treat as read-only.
func (v *Variable[T, B]) Grad() *tensor.RawTensor {
	return v.grad
}

// Shape returns the variable's shape.
func (v *Variable[T, B]) Shape() tensor.Shape {
	return v.data.Shape()
}

// Backend returns the computation backend.
func (v *Variable[T, B]) Backend() B {
	return v.backend
}

// Source returns the producing operation, or nil for leaf variables.
func (v *Variable[T, B]) Source() Operation[T, B] {
	return v.source
}

// IsLeaf returns true if this variable was built directly from raw data.
func (v *Variable[T, B]) IsLeaf() bool {
	return v.source == nil
}

// SetSource attaches the producing operation.
//
// Contract: called exactly once, by a graph builder, immediately after
// construction. Attaching a second producing operation is a programming
// error and panics.
func (v *Variable[T, B]) SetSource(op Operation[T, B]) {
	if v.source != nil {
		panic("autodiff: SetSource called twice (variable already has a producing operation)")
	}
	v.source = op
}

// Values returns a typed view of the variable's value (zero-copy).
func (v *Variable[T, B]) Values() []T {
	return rawValues[T](v.data)
}

// GradValues returns a typed view of the accumulated gradient (zero-copy).
func (v *Variable[T, B]) GradValues() []T {
	return rawValues[T](v.grad)
}

// BackwardWith injects a gradient contribution at this node and recurses
// through the producing operation.
//
// The incoming gradient must match the node's shape; on mismatch the call
// fails with ErrShapeMismatch and mutates nothing. Otherwise the
// contribution is ADDED to the accumulated gradient (repeated calls keep
// summing; use ZeroGrad for a fresh pass), and the same per-call
// contribution (not the running total) is forwarded to the producing
// operation for chain-rule propagation.
//
// The walk is plain recursion without memoization: a node reachable via
// multiple paths is visited once per path, so deeply reconvergent graphs
// cost work exponential in depth. Concurrent backward passes over
// overlapping graphs are not safe; the engine assumes exclusive,
// sequential use per graph.
func (v *Variable[T, B]) BackwardWith(incoming *tensor.RawTensor) error {
	if !incoming.Shape().Equal(v.grad.Shape()) {
		return fmt.Errorf("backward: %w: incoming gradient shape %v, node shape %v",
			ErrShapeMismatch, incoming.Shape(), v.grad.Shape())
	}

	// grad is uniquely held by this node, so the backend accumulates in place.
	v.grad = v.backend.Add(v.grad, incoming)

	if v.source != nil {
		return v.source.Backward(incoming)
	}
	return nil
}

// Backward seeds the backward pass with an all-ones gradient matching the
// variable's shape: the conventional "treat this node as the loss" entry
// point.
func (v *Variable[T, B]) Backward() error {
	return v.BackwardWith(tensor.OnesLike(v.data))
}

// ZeroGrad resets the accumulated gradient to zero.
//
// Gradients accumulate across backward passes by design; callers wanting
// a fresh pass reset each node explicitly.
func (v *Variable[T, B]) ZeroGrad() {
	v.grad = tensor.ZerosLike(v.data)
}

// String returns a human-readable representation of the variable.
func (v *Variable[T, B]) String() string {
	return fmt.Sprintf("Variable[%s]%v on %s", v.data.DType(), v.data.Shape(), v.data.Device())
}

// rawValues returns a typed slice view of a RawTensor's data.
func rawValues[T tensor.Float](r *tensor.RawTensor) []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(r.AsFloat32()).([]T)
	case float64:
		return any(r.AsFloat64()).([]T)
	default:
		panic("unsupported type")
	}
}
