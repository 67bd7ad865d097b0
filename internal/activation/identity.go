package activation

import (
	"fmt"
	"maps"
	"slices"
)

// Provider names a backend implementation family.
type Provider string

// Built-in providers.
const (
	ProviderBorn     Provider = "born"
	ProviderGonum    Provider = "gonum"
	ProviderGorgonia Provider = "gorgonia"
)

// Token is a provider-native handle for one activation function.
//
// Name uses the provider's own vocabulary, e.g. "LeakyRelu" for born and
// "Rectify" for gorgonia.
type Token struct {
	Provider Provider
	Name     string
}

// String returns "provider/name".
func (t Token) String() string {
	return string(t.Provider) + "/" + t.Name
}

// Identity is the canonical, provider-agnostic identity of an activation
// function. It is immutable once built with NewIdentity.
type Identity struct {
	name         string
	base         BaseType
	qualifiedIDs []string
	tokens       map[Provider]Token
}

// NewIdentity builds an identity with the given qualified ids and provider
// tokens. Inputs are copied. Each token's Provider field is set from its key.
func NewIdentity(name string, base BaseType, qualifiedIDs []string, tokens map[Provider]string) Identity {
	id := Identity{
		name:         name,
		base:         base,
		qualifiedIDs: slices.Clone(qualifiedIDs),
		tokens:       make(map[Provider]Token, len(tokens)),
	}
	for p, native := range tokens {
		id.tokens[p] = Token{Provider: p, Name: native}
	}
	return id
}

// Name returns the canonical name, e.g. "leaky-rectifier".
func (id Identity) Name() string { return id.name }

// BaseType returns the identity's category.
func (id Identity) BaseType() BaseType { return id.base }

// QualifiedIDs returns the caller-facing ids that resolve to this identity.
func (id Identity) QualifiedIDs() []string { return slices.Clone(id.qualifiedIDs) }

// Token returns the native token for provider p.
func (id Identity) Token(p Provider) (Token, bool) {
	t, ok := id.tokens[p]
	return t, ok
}

// Providers returns the providers this identity maps to, sorted.
func (id Identity) Providers() []Provider {
	return slices.Sorted(maps.Keys(id.tokens))
}

// IsZero reports whether id is the zero Identity.
func (id Identity) IsZero() bool {
	return id.name == "" && id.base == 0 && len(id.tokens) == 0
}

// String returns the canonical name and base type.
func (id Identity) String() string {
	return fmt.Sprintf("%s(%s)", id.name, id.base)
}
