// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package factory builds activation components on a chosen provider.
//
// Example:
//
//	native, _ := factory.NewNative(0)
//	hybrid, _ := factory.NewHybrid(native, factory.DefaultConfig(activation.ProviderGorgonia))
//
//	hidden, _ := hybrid.CreateActivationByType("h1", factory.NewNeurons(128), "relu", nil)
//	output, _ := hybrid.CreateActivationByType("out", factory.NewNeurons(10), "softmax", nil)
//	fc, _ := hybrid.CreateLinear("fc", factory.NewNeurons(128), factory.NewNeurons(10)) // native
package factory

import (
	"github.com/born-ml/actfactory/activation"
	"github.com/born-ml/actfactory/internal/component"
	"github.com/born-ml/actfactory/internal/factory"
	"github.com/born-ml/actfactory/internal/instance"
	"github.com/born-ml/actfactory/internal/registry"
)

// ComponentFactory creates network components.
type ComponentFactory = factory.ComponentFactory

// Default is the native factory; activations come from the born provider.
type Default = factory.Default

// Hybrid re-targets activation creation to a configured provider.
type Hybrid = factory.Hybrid

// Config configures a Hybrid factory.
type Config = factory.Config

// InstanceFactory builds backend instances from tokens.
type InstanceFactory = instance.Factory

// Component types.
type (
	Neurons           = component.Neurons
	NeuronsActivation = component.NeuronsActivation
	Activation        = component.Activation
	Linear            = component.Linear
)

// DefaultConfig returns a Hybrid config for provider with built-in
// collaborators.
func DefaultConfig(provider activation.Provider) Config {
	return factory.DefaultConfig(provider)
}

// NewNeurons returns a Neurons with count units.
func NewNeurons(count int) Neurons {
	return component.NewNeurons(count)
}

// NewInstanceFactory creates an instance factory over backends.
func NewInstanceFactory(backends ...activation.Backend) (*InstanceFactory, error) {
	return instance.New(backends)
}

// NewDefault creates a native factory over explicit collaborators.
func NewDefault(r *activation.Registry, instances *InstanceFactory, seed uint64) *Default {
	return factory.NewDefault(r, instances, seed)
}

// NewNative creates a native factory over the built-in registry and backends.
func NewNative(seed uint64) (*Default, error) {
	r, err := registry.Default()
	if err != nil {
		return nil, err
	}
	f, err := instance.New(registry.BuiltinBackends())
	if err != nil {
		return nil, err
	}
	return factory.NewDefault(r, f, seed), nil
}

// NewHybrid decorates wrapped so activations are built on cfg.Provider.
func NewHybrid(wrapped ComponentFactory, cfg Config) (*Hybrid, error) {
	return factory.NewHybrid(wrapped, cfg)
}

// Build runs the activation pipeline once with built-in collaborators.
func Build(name string, neurons Neurons, qualifiedID string, params activation.Parameters, provider activation.Provider) (*Activation, error) {
	return factory.Build(name, neurons, qualifiedID, params, provider)
}
