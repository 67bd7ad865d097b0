// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/born-ml/actfactory/activation"
	internalcpu "github.com/born-ml/actfactory/internal/backend/cpu"
	"github.com/born-ml/actfactory/internal/parallel"
)

// Backend is the born activation provider.
type Backend = internalcpu.CPUBackend

// ParallelConfig controls how large batches are split across goroutines.
type ParallelConfig = parallel.Config

// Compile-time check that Backend implements activation.Backend.
var _ activation.Backend = (*Backend)(nil)

// Operator names.
const (
	OpIdentity  = internalcpu.OpIdentity
	OpRelu      = internalcpu.OpRelu
	OpLeakyRelu = internalcpu.OpLeakyRelu
	OpSigmoid   = internalcpu.OpSigmoid
	OpTanh      = internalcpu.OpTanh
	OpSoftmax   = internalcpu.OpSoftmax
	OpSoftplus  = internalcpu.OpSoftplus
	OpGelu      = internalcpu.OpGelu
	OpSilu      = internalcpu.OpSilu
)

// DefaultLeakyAlpha is the LeakyRelu slope used when none is supplied.
const DefaultLeakyAlpha = internalcpu.DefaultLeakyAlpha

// New creates a CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	fn, err := backend.New(cpu.Token(cpu.OpRelu))
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallelism.
func NewWithConfig(cfg ParallelConfig) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultParallelConfig returns parallelism defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Token returns the born token for op.
func Token(op string) activation.Token {
	return internalcpu.Token(op)
}
