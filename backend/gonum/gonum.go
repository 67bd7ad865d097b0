// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gonum provides the gonum activation provider: float64 kernels on
// gonum dense matrices.
package gonum

import (
	"github.com/born-ml/actfactory/activation"
	internalgonum "github.com/born-ml/actfactory/internal/backend/gonum"
)

// Backend is the gonum activation provider.
type Backend = internalgonum.Backend

var _ activation.Backend = (*Backend)(nil)

// Kernel names.
const (
	Identity  = internalgonum.Identity
	ReLU      = internalgonum.ReLU
	LeakyReLU = internalgonum.LeakyReLU
	Sigmoid   = internalgonum.Sigmoid
	Tanh      = internalgonum.Tanh
	Softmax   = internalgonum.Softmax
	Softplus  = internalgonum.Softplus
)

// New creates a gonum backend.
func New() *Backend {
	return internalgonum.New()
}

// Token returns the gonum token for name.
func Token(name string) activation.Token {
	return internalgonum.Token(name)
}
