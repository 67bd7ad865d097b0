package factory

import (
	"log/slog"

	"github.com/born-ml/actfactory/internal/activation"
	"github.com/born-ml/actfactory/internal/instance"
	"github.com/born-ml/actfactory/internal/registry"
)

// Config configures a Hybrid factory.
type Config struct {
	// Provider is the backend family activations are built on.
	Provider activation.Provider

	// Registry resolves qualified ids. Nil means registry.Default().
	Registry *registry.Registry

	// Instances builds backend instances. Nil means a factory over
	// registry.BuiltinBackends().
	Instances *instance.Factory

	// Logger receives one debug record per component and a warning per
	// failed build. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a config for provider with built-in collaborators.
func DefaultConfig(provider activation.Provider) Config {
	return Config{Provider: provider}
}

// resolve fills in nil collaborators.
func (c Config) resolve() (Config, error) {
	if c.Registry == nil {
		r, err := registry.Default()
		if err != nil {
			return c, err
		}
		c.Registry = r
	}
	if c.Instances == nil {
		f, err := instance.New(registry.BuiltinBackends())
		if err != nil {
			return c, err
		}
		c.Instances = f
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c, nil
}
