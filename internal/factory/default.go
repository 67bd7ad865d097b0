package factory

import (
	"math/rand/v2"
	"sync"

	"github.com/born-ml/actfactory/internal/activation"
	"github.com/born-ml/actfactory/internal/component"
	"github.com/born-ml/actfactory/internal/instance"
	"github.com/born-ml/actfactory/internal/registry"
)

// Default is the native component factory: activations always come from the
// born provider.
type Default struct {
	pipeline pipeline

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewDefault creates a native factory. seed drives weight initialisation.
func NewDefault(r *registry.Registry, instances *instance.Factory, seed uint64) *Default {
	return &Default{
		pipeline: pipeline{registry: r, instances: instances},
		//nolint:gosec // math/rand is appropriate for weight initialization
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// CreateActivation builds def on the born provider.
func (d *Default) CreateActivation(name string, neurons component.Neurons, def activation.Definition) (*component.Activation, error) {
	return d.CreateActivationByType(name, neurons, def.QualifiedID(), def.Parameters())
}

// CreateActivationByType builds qualifiedID on the born provider.
func (d *Default) CreateActivationByType(name string, neurons component.Neurons, qualifiedID string, params activation.Parameters) (*component.Activation, error) {
	return d.pipeline.build(name, neurons, qualifiedID, params, activation.ProviderBorn)
}

// CreateLinear builds a Xavier-initialised fully connected component.
func (d *Default) CreateLinear(name string, in, out component.Neurons) (*component.Linear, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return component.NewLinear(name, in, out, d.rng)
}
