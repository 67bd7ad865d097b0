// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation exposes the provider-neutral activation data model.
//
// Example:
//
//	r, err := activation.DefaultRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id, err := r.FindCanonical("leaky_relu")
//	tok, err := r.ResolveForProvider(id, activation.ProviderGonum)
package activation

import (
	"github.com/born-ml/actfactory/internal/activation"
	"github.com/born-ml/actfactory/internal/registry"
)

// Core types.
type (
	BaseType       = activation.BaseType
	Provider       = activation.Provider
	Token          = activation.Token
	Identity       = activation.Identity
	Parameters     = activation.Parameters
	Orientation    = activation.Orientation
	Function       = activation.Function
	Backpropagator = activation.Backpropagator
	Sloped         = activation.Sloped
	Backend        = activation.Backend
	Override       = activation.Override
	Definition     = activation.Definition
)

// Registry maps qualified ids to identities and provider tokens.
type Registry = registry.Registry

// ValidationError describes one registry construction problem.
type ValidationError = registry.ValidationError

// RegistryOption configures NewRegistry.
type RegistryOption = registry.Option

// Base types.
const (
	Linear    = activation.Linear
	ReLU      = activation.ReLU
	LeakyReLU = activation.LeakyReLU
	Sigmoid   = activation.Sigmoid
	Tanh      = activation.Tanh
	Softmax   = activation.Softmax
	Softplus  = activation.Softplus
	GELU      = activation.GELU
	SiLU      = activation.SiLU
)

// Providers.
const (
	ProviderBorn     = activation.ProviderBorn
	ProviderGonum    = activation.ProviderGonum
	ProviderGorgonia = activation.ProviderGorgonia
)

// Orientations.
const (
	None                  = activation.None
	ColumnsSpanFeatureSet = activation.ColumnsSpanFeatureSet
	RowsSpanFeatureSet    = activation.RowsSpanFeatureSet
)

// ParamAlpha is the leaky-rectifier slope parameter.
const ParamAlpha = activation.ParamAlpha

// Errors.
var (
	ErrUnknownActivationType = activation.ErrUnknownActivationType
	ErrUnsupportedProvider   = activation.ErrUnsupportedProvider
	ErrInvalidParameter      = activation.ErrInvalidParameter
	ErrInvalidRegistry       = activation.ErrInvalidRegistry
	ErrInvalidShape          = activation.ErrInvalidShape
	ErrShapeMismatch         = activation.ErrShapeMismatch
)

// NewIdentity builds a canonical identity.
func NewIdentity(name string, base BaseType, qualifiedIDs []string, tokens map[Provider]string) Identity {
	return activation.NewIdentity(name, base, qualifiedIDs, tokens)
}

// WithAlpha returns parameters carrying only alpha.
func WithAlpha(alpha float64) Parameters {
	return activation.WithAlpha(alpha)
}

// Define returns a caller-side definition.
func Define(qualifiedID string, params Parameters) Definition {
	return activation.Define(qualifiedID, params)
}

// NewRegistry builds and validates a registry.
func NewRegistry(identities []Identity, opts ...RegistryOption) (*Registry, error) {
	return registry.New(identities, opts...)
}

// WithBackends validates registry mappings against backends.
func WithBackends(backends ...Backend) RegistryOption {
	return registry.WithBackends(backends...)
}

// Builtin returns the built-in identity catalogue.
func Builtin() []Identity {
	return registry.Builtin()
}

// DefaultRegistry returns the process-wide built-in registry.
func DefaultRegistry() (*Registry, error) {
	return registry.Default()
}
