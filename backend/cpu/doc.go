// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the born activation provider: pure Go float32 kernels.
//
// # Overview
//
// This package implements:
//   - Pure Go implementation (no CGO)
//   - ONNX operator names as tokens ("Relu", "LeakyRelu", "Softmax", ...)
//   - float64 → float32 narrowing of batches and parameters
//   - Row-parallel evaluation of large batches
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/actfactory/backend/cpu"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    fn, _ := backend.New(cpu.Token(cpu.OpSoftmax))
//	    y, _ := fn.Activate(mat.NewDense(1, 3, []float64{1, 2, 3}))
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Every instance it builds is
// independent and holds no mutable state.
package cpu
