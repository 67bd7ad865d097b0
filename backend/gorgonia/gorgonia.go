// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gorgonia provides the gorgonia activation provider: activations
// built as gorgonia expression graphs and differentiated symbolically.
package gorgonia

import (
	"github.com/born-ml/actfactory/activation"
	internalgorgonia "github.com/born-ml/actfactory/internal/backend/gorgonia"
)

// Backend is the gorgonia activation provider.
type Backend = internalgorgonia.Backend

var _ activation.Backend = (*Backend)(nil)

// Constructor names.
const (
	Rectify   = internalgorgonia.Rectify
	LeakyRelu = internalgorgonia.LeakyRelu
	Sigmoid   = internalgorgonia.Sigmoid
	Tanh      = internalgorgonia.Tanh
	SoftMax   = internalgorgonia.SoftMax
	Softplus  = internalgorgonia.Softplus
)

// New creates a gorgonia backend.
func New() *Backend {
	return internalgorgonia.New()
}

// Token returns the gorgonia token for name.
func Token(name string) activation.Token {
	return internalgorgonia.Token(name)
}
