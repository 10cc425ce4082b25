// Copyright 2026 The Gunn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Arithmetic on Variables builds a dynamic computation graph; calling
// Backward on any node walks the graph recursively with the chain rule,
// accumulating gradient contributions into every reachable node.
//
// Example:
//
//	import (
//	    "github.com/sanika-n/gunn-computational-graphs/autodiff"
//	    "github.com/sanika-n/gunn-computational-graphs/backend/cpu"
//	    "github.com/sanika-n/gunn-computational-graphs/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := autodiff.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	    y, _ := autodiff.FromSlice([]float32{4, 5, 6}, tensor.Shape{3}, backend)
//
//	    z, _ := autodiff.Mul(x, y)
//	    _ = z.Backward()
//
//	    fmt.Println(x.Grad()) // dz/dx = y
//	}
//
// Gradients accumulate across backward passes by design; call ZeroGrad on
// each node for a fresh pass.
package autodiff

import (
	"github.com/sanika-n/gunn-computational-graphs/internal/autodiff"
	"github.com/sanika-n/gunn-computational-graphs/internal/tensor"
)

// Variable is a differentiable tensor: a node in the computation graph.
type Variable[T tensor.Float, B tensor.Backend] = autodiff.Variable[T, B]

// Operation is a backward variant capturing two operands and one local
// derivative rule. The variant set is closed: add, sub, mul, div.
type Operation[T tensor.Float, B tensor.Backend] = autodiff.Operation[T, B]

// ErrShapeMismatch is returned when operand or gradient shapes disagree.
var ErrShapeMismatch = autodiff.ErrShapeMismatch

// New creates a leaf Variable from a RawTensor.
func New[T tensor.Float, B tensor.Backend](data *tensor.RawTensor, b B) *Variable[T, B] {
	return autodiff.New[T, B](data, b)
}

// FromSlice creates a leaf Variable from a Go slice.
//
// Example:
//
//	x, err := autodiff.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
func FromSlice[T tensor.Float, B tensor.Backend](data []T, shape tensor.Shape, b B) (*Variable[T, B], error) {
	return autodiff.FromSlice[T, B](data, shape, b)
}

// Add builds the graph node for element-wise addition: out = a + b.
func Add[T tensor.Float, B tensor.Backend](a, b *Variable[T, B]) (*Variable[T, B], error) {
	return autodiff.Add(a, b)
}

// Sub builds the graph node for element-wise subtraction: out = a - b.
func Sub[T tensor.Float, B tensor.Backend](a, b *Variable[T, B]) (*Variable[T, B], error) {
	return autodiff.Sub(a, b)
}

// Mul builds the graph node for element-wise multiplication: out = a * b.
func Mul[T tensor.Float, B tensor.Backend](a, b *Variable[T, B]) (*Variable[T, B], error) {
	return autodiff.Mul(a, b)
}

// Div builds the graph node for element-wise division: out = a / b.
func Div[T tensor.Float, B tensor.Backend](a, b *Variable[T, B]) (*Variable[T, B], error) {
	return autodiff.Div(a, b)
}
