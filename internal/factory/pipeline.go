package factory

import (
	"fmt"

	"github.com/born-ml/actfactory/internal/activation"
	"github.com/born-ml/actfactory/internal/component"
	"github.com/born-ml/actfactory/internal/instance"
	"github.com/born-ml/actfactory/internal/registry"
)

// pipeline resolves, instantiates and wraps one activation component.
type pipeline struct {
	registry  *registry.Registry
	instances *instance.Factory
}

func (p pipeline) build(name string, neurons component.Neurons, qualifiedID string, params activation.Parameters, provider activation.Provider) (*component.Activation, error) {
	if err := neurons.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	identity, err := p.registry.FindCanonical(qualifiedID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	token, err := p.registry.ResolveForProvider(identity, provider)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	fn, err := p.instances.Instantiate(token, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return component.Build(name, neurons, fn, identity, component.RequiredOrientation(identity.BaseType())), nil
}

// Build runs the activation pipeline once on the default registry and the
// built-in backends.
func Build(name string, neurons component.Neurons, qualifiedID string, params activation.Parameters, provider activation.Provider) (*component.Activation, error) {
	cfg, err := DefaultConfig(provider).resolve()
	if err != nil {
		return nil, err
	}
	return pipeline{registry: cfg.Registry, instances: cfg.Instances}.build(name, neurons, qualifiedID, params, provider)
}
