// Package instance turns provider-native tokens into fresh backend
// activation instances.
//
// Most tokens are built by their backend's stock constructor. Parameterised
// variants (currently the leaky rectifiers' alpha) are handled by an open
// list of overrides, consulted before the stock constructor.
package instance

import (
	"fmt"
	"slices"

	"github.com/born-ml/actfactory/internal/activation"
)

// Factory builds backend instances. It is immutable after New and safe for
// concurrent use.
type Factory struct {
	backends  map[activation.Provider]activation.Backend
	overrides []activation.Override
}

type options struct {
	overrides []activation.Override
}

// Option configures New.
type Option func(*options)

// WithOverride adds parameterised constructors. Overrides passed here are
// consulted before those contributed by the backends.
func WithOverride(overrides ...activation.Override) Option {
	return func(o *options) {
		o.overrides = append(o.overrides, overrides...)
	}
}

// New creates a factory over backends. Two backends for the same provider
// are an error.
func New(backends []activation.Backend, opts ...Option) (*Factory, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	f := &Factory{
		backends:  make(map[activation.Provider]activation.Backend, len(backends)),
		overrides: slices.Clone(o.overrides),
	}
	for _, b := range backends {
		p := b.Provider()
		if _, dup := f.backends[p]; dup {
			return nil, fmt.Errorf("instance: provider %q registered twice", p)
		}
		f.backends[p] = b
		f.overrides = append(f.overrides, b.Overrides()...)
	}
	for _, ov := range f.overrides {
		if ov.Build == nil || ov.Param == "" {
			return nil, fmt.Errorf("instance: incomplete override for %s", ov.Token)
		}
	}
	return f, nil
}

// Instantiate builds a fresh instance for token. When an override matches
// token and its parameter is present in params, the override builds the
// instance; otherwise the backend's stock constructor does and params is not
// consulted.
func (f *Factory) Instantiate(token activation.Token, params activation.Parameters) (activation.Function, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b, ok := f.backends[token.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: no backend for provider %q", activation.ErrUnsupportedProvider, token.Provider)
	}

	for _, ov := range f.overrides {
		if ov.Applies(token, params) {
			fn, err := ov.Build(params)
			if err != nil {
				return nil, fmt.Errorf("instance: %s: %w", token, err)
			}
			return fn, nil
		}
	}

	fn, err := b.New(token)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	return fn, nil
}

// Providers returns the registered providers, sorted.
func (f *Factory) Providers() []activation.Provider {
	out := make([]activation.Provider, 0, len(f.backends))
	for p := range f.backends {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Backends returns the registered backends in provider order.
func (f *Factory) Backends() []activation.Backend {
	out := make([]activation.Backend, 0, len(f.backends))
	for _, p := range f.Providers() {
		out = append(out, f.backends[p])
	}
	return out
}
