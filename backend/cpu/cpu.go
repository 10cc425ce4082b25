// Copyright 2026 The Gunn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/sanika-n/gunn-computational-graphs/internal/backend/cpu"
	"github.com/sanika-n/gunn-computational-graphs/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := autodiff.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
func New() *Backend {
	return internalcpu.New()
}
