// Package registry maps caller-facing qualified ids to canonical activation
// identities and resolves those identities to provider-native tokens.
//
// A Registry is validated once in New and never mutated afterwards, so it is
// safe for concurrent use without locking.
package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/born-ml/actfactory/internal/activation"
)

// Registry is an immutable qualified-id → identity → token table.
type Registry struct {
	identities []activation.Identity
	byID       map[string]int // qualified id → index into identities
}

type options struct {
	backends []activation.Backend
}

// Option configures New.
type Option func(*options)

// WithBackends makes New check every provider mapping against the tokens the
// given backends can build. Mappings for providers without a backend fail
// validation.
func WithBackends(backends ...activation.Backend) Option {
	return func(o *options) {
		o.backends = append(o.backends, backends...)
	}
}

// New builds a registry and validates it eagerly. All problems found are
// returned together; each one matches activation.ErrInvalidRegistry.
func New(identities []activation.Identity, opts ...Option) (*Registry, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		identities: slices.Clone(identities),
		byID:       make(map[string]int),
	}

	var errs []error
	names := make(map[string]bool, len(identities))
	for i, id := range r.identities {
		if id.Name() == "" {
			errs = append(errs, &ValidationError{Type: "empty_name", Details: fmt.Sprintf("identity #%d has no canonical name", i)})
		} else if names[id.Name()] {
			errs = append(errs, &ValidationError{Type: "duplicate_identity", Identity: id.Name(), Details: "canonical name registered twice"})
		}
		names[id.Name()] = true

		if !id.BaseType().Valid() {
			errs = append(errs, &ValidationError{Type: "invalid_base_type", Identity: id.Name(), Details: fmt.Sprintf("base type %d", id.BaseType())})
		}
		if len(id.Providers()) == 0 {
			errs = append(errs, &ValidationError{Type: "no_mappings", Identity: id.Name(), Details: "identity declares no provider mapping"})
		}
		if len(id.QualifiedIDs()) == 0 {
			errs = append(errs, &ValidationError{Type: "no_qualified_ids", Identity: id.Name(), Details: "identity is unreachable"})
		}

		for _, qid := range id.QualifiedIDs() {
			if qid == "" {
				errs = append(errs, &ValidationError{Type: "empty_qualified_id", Identity: id.Name(), Details: "qualified id is empty"})
				continue
			}
			if prev, ok := r.byID[qid]; ok {
				errs = append(errs, &ValidationError{
					Type:     "duplicate_qualified_id",
					Identity: r.identities[prev].Name(),
					Other:    id.Name(),
					Details:  fmt.Sprintf("both claim %q", qid),
				})
				continue
			}
			r.byID[qid] = i
		}
	}

	if len(o.backends) > 0 {
		errs = append(errs, checkBackends(r.identities, o.backends)...)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

func checkBackends(identities []activation.Identity, backends []activation.Backend) []error {
	supported := make(map[activation.Provider]map[string]bool, len(backends))
	for _, b := range backends {
		set := make(map[string]bool)
		for _, t := range b.Tokens() {
			set[t.Name] = true
		}
		supported[b.Provider()] = set
	}

	var errs []error
	for _, id := range identities {
		for _, p := range id.Providers() {
			tok, _ := id.Token(p)
			set, ok := supported[p]
			switch {
			case !ok:
				errs = append(errs, &ValidationError{Type: "unknown_provider", Identity: id.Name(), Details: fmt.Sprintf("no backend registered for provider %q", p)})
			case !set[tok.Name]:
				errs = append(errs, &ValidationError{Type: "unknown_token", Identity: id.Name(), Details: fmt.Sprintf("provider %q cannot build %q", p, tok.Name)})
			}
		}
	}
	return errs
}

// FindCanonical returns the identity registered for qualifiedID.
func (r *Registry) FindCanonical(qualifiedID string) (activation.Identity, error) {
	i, ok := r.byID[qualifiedID]
	if !ok {
		return activation.Identity{}, fmt.Errorf("%w: %q", activation.ErrUnknownActivationType, qualifiedID)
	}
	return r.identities[i], nil
}

// ResolveForProvider returns identity's native token for provider.
func (r *Registry) ResolveForProvider(identity activation.Identity, provider activation.Provider) (activation.Token, error) {
	tok, ok := identity.Token(provider)
	if !ok {
		return activation.Token{}, fmt.Errorf("%w: %s has no mapping for provider %q",
			activation.ErrUnsupportedProvider, identity.Name(), provider)
	}
	return tok, nil
}

// Resolve runs FindCanonical then ResolveForProvider.
func (r *Registry) Resolve(qualifiedID string, provider activation.Provider) (activation.Identity, activation.Token, error) {
	id, err := r.FindCanonical(qualifiedID)
	if err != nil {
		return activation.Identity{}, activation.Token{}, err
	}
	tok, err := r.ResolveForProvider(id, provider)
	if err != nil {
		return id, activation.Token{}, err
	}
	return id, tok, nil
}

// Supports reports whether qualifiedID resolves for provider.
func (r *Registry) Supports(qualifiedID string, provider activation.Provider) bool {
	_, _, err := r.Resolve(qualifiedID, provider)
	return err == nil
}

// Identities returns every registered identity in registration order.
func (r *Registry) Identities() []activation.Identity {
	return slices.Clone(r.identities)
}

// QualifiedIDs returns every registered qualified id, sorted.
func (r *Registry) QualifiedIDs() []string {
	ids := make([]string, 0, len(r.byID))
	for qid := range r.byID {
		ids = append(ids, qid)
	}
	slices.Sort(ids)
	return ids
}
