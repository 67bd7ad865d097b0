package factory

import (
	"errors"
	"log/slog"

	"github.com/born-ml/actfactory/internal/activation"
	"github.com/born-ml/actfactory/internal/component"
)

// Hybrid intercepts activation creation and builds it on a configured
// provider. Every other operation goes to the wrapped factory.
type Hybrid struct {
	ComponentFactory // wrapped; serves everything not overridden below

	provider activation.Provider
	pipeline pipeline
	logger   *slog.Logger
}

// NewHybrid decorates wrapped.
func NewHybrid(wrapped ComponentFactory, cfg Config) (*Hybrid, error) {
	if wrapped == nil {
		return nil, errors.New("factory: hybrid needs a wrapped factory")
	}
	cfg, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	return &Hybrid{
		ComponentFactory: wrapped,
		provider:         cfg.Provider,
		pipeline:         pipeline{registry: cfg.Registry, instances: cfg.Instances},
		logger:           cfg.Logger.With("provider", string(cfg.Provider)),
	}, nil
}

// Provider returns the provider activations are built on.
func (h *Hybrid) Provider() activation.Provider { return h.provider }

// CreateActivation builds def on the hybrid's provider.
func (h *Hybrid) CreateActivation(name string, neurons component.Neurons, def activation.Definition) (*component.Activation, error) {
	return h.CreateActivationByType(name, neurons, def.QualifiedID(), def.Parameters())
}

// CreateActivationByType builds qualifiedID on the hybrid's provider.
func (h *Hybrid) CreateActivationByType(name string, neurons component.Neurons, qualifiedID string, params activation.Parameters) (*component.Activation, error) {
	c, err := h.pipeline.build(name, neurons, qualifiedID, params, h.provider)
	if err != nil {
		h.logger.Warn("activation build failed",
			"component", name,
			"qualified_id", qualifiedID,
			"error", err)
		return nil, err
	}
	h.logger.Debug("activation component built",
		"component", name,
		"qualified_id", qualifiedID,
		"identity", c.Identity().Name(),
		"token", c.Function().Token().Name,
		"neurons", neurons.Count,
		"orientation", c.RequiredOrientation().String())
	return c, nil
}
