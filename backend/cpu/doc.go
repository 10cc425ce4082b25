// Copyright 2026 The Gunn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for tensor arithmetic.
//
// # Overview
//
// The CPU backend implements the elementwise arithmetic the autodiff
// engine needs:
//   - Binary: Add, Sub, Mul, Div (exact-shape, no broadcasting)
//   - Unary: Neg, Recip
//   - Float32, Float64, Int32 and Int64 support
//   - In-place fast path when the destination buffer is unique
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
//	    a, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, tensor.CPU)
//	    b, _ := tensor.FromSlice([]float32{3, 4}, tensor.Shape{2}, tensor.CPU)
//	    c := backend.Add(a, b)
//	}
//
// # Error Model
//
// Shape and dtype mismatches reaching the backend are programmer errors
// and panic; the autodiff graph builders validate shapes first and return
// recoverable errors at that boundary. Float division by zero follows
// IEEE-754 and produces Inf/NaN data rather than an error.
package cpu
