// Copyright 2026 The Gunn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense-array values used by the Gunn
// autodiff engine.
//
// # Overview
//
// A RawTensor is an opaque fixed-shape homogeneous numeric array. This
// package provides:
//   - Shape representation and exact-shape equality (no broadcasting)
//   - Runtime data types (float32, float64, int32, int64)
//   - Reference-counted buffers with copy-on-write semantics
//   - Constant-filled construction (ZerosLike, OnesLike, Full)
//
// # Basic Usage
//
//	import (
//	    "github.com/sanika-n/gunn-computational-graphs/backend/cpu"
//	    "github.com/sanika-n/gunn-computational-graphs/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, tensor.CPU)
//	    b := tensor.OnesLike(a)
//	    c := backend.Add(a, b)
//	    fmt.Println(c)
//	}
//
// # Shape Discipline
//
// All binary operations require operands of identical shape. There is no
// broadcasting anywhere in the engine; mismatches surface as errors at
// the graph-builder boundary (see the autodiff package).
//
// # Memory Management
//
// Buffers are reference-counted. Clone shares the buffer cheaply; Compute
// backends may write in place when a buffer has a single reference, and
// callers that must preserve a value across such calls use
// ForceNonUnique.
package tensor
