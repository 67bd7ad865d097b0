// Package factory assembles network components.
//
// ComponentFactory is the capability the surrounding network framework
// consumes. Default builds every component natively on the born provider.
// Hybrid decorates another ComponentFactory and re-targets only activation
// creation to a chosen provider, delegating everything else untouched.
package factory

import (
	"github.com/born-ml/actfactory/internal/activation"
	"github.com/born-ml/actfactory/internal/component"
)

// ComponentFactory creates network components.
type ComponentFactory interface {
	// CreateActivation builds an activation component from a caller-side
	// definition.
	CreateActivation(name string, neurons component.Neurons, def activation.Definition) (*component.Activation, error)

	// CreateActivationByType builds an activation component from a qualified
	// id and its parameters.
	CreateActivationByType(name string, neurons component.Neurons, qualifiedID string, params activation.Parameters) (*component.Activation, error)

	// CreateLinear builds a fully connected component.
	CreateLinear(name string, in, out component.Neurons) (*component.Linear, error)
}

var (
	_ ComponentFactory = (*Default)(nil)
	_ ComponentFactory = (*Hybrid)(nil)
)
