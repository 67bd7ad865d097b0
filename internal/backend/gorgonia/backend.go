package gorgonia

import (
	"fmt"
	"maps"
	"slices"

	"github.com/born-ml/actfactory/internal/activation"
	G "gorgonia.org/gorgonia"
)

// Constructor names understood by the gorgonia backend.
const (
	Rectify   = "Rectify"
	LeakyRelu = "LeakyRelu"
	Sigmoid   = "Sigmoid"
	Tanh      = "Tanh"
	SoftMax   = "SoftMax"
	Softplus  = "Softplus"
)

// DefaultLeakyAlpha is the LeakyRelu slope used when none is supplied.
const DefaultLeakyAlpha = 0.01

// Backend is the gorgonia provider.
type Backend struct {
	ctors map[string]func(tok activation.Token) activation.Function
}

// New creates a gorgonia backend.
func New() *Backend {
	b := &Backend{ctors: make(map[string]func(activation.Token) activation.Function)}
	b.ctors[Rectify] = unary(G.Rectify)
	b.ctors[Sigmoid] = unary(G.Sigmoid)
	b.ctors[Tanh] = unary(G.Tanh)
	b.ctors[Softplus] = unary(G.Softplus)
	b.ctors[LeakyRelu] = func(tok activation.Token) activation.Function {
		return newLeaky(tok, DefaultLeakyAlpha)
	}
	b.ctors[SoftMax] = func(tok activation.Token) activation.Function {
		return &Softmax{Op: Op{token: tok, build: func(x *G.Node) (*G.Node, error) { return G.SoftMax(x) }}}
	}
	return b
}

func unary(f func(*G.Node) (*G.Node, error)) func(activation.Token) activation.Function {
	return func(tok activation.Token) activation.Function {
		return &Op{token: tok, build: f}
	}
}

// Provider returns activation.ProviderGorgonia.
func (b *Backend) Provider() activation.Provider { return activation.ProviderGorgonia }

// Tokens lists every supported constructor, sorted by name.
func (b *Backend) Tokens() []activation.Token {
	names := slices.Sorted(maps.Keys(b.ctors))
	out := make([]activation.Token, len(names))
	for i, n := range names {
		out[i] = Token(n)
	}
	return out
}

// New builds the stock instance for token.
func (b *Backend) New(token activation.Token) (activation.Function, error) {
	if token.Provider != activation.ProviderGorgonia {
		return nil, fmt.Errorf("gorgonia: %w: token %s", activation.ErrUnsupportedProvider, token)
	}
	ctor, ok := b.ctors[token.Name]
	if !ok {
		return nil, fmt.Errorf("gorgonia: %w: unsupported constructor %q", activation.ErrUnknownActivationType, token.Name)
	}
	return ctor(token), nil
}

// Overrides returns the parameterised LeakyRelu constructor.
func (b *Backend) Overrides() []activation.Override {
	return []activation.Override{{
		Token: Token(LeakyRelu),
		Param: activation.ParamAlpha,
		Build: func(params activation.Parameters) (activation.Function, error) {
			alpha, _ := params.Alpha()
			return newLeaky(Token(LeakyRelu), alpha), nil
		},
	}}
}

// Token returns the gorgonia token for name.
func Token(name string) activation.Token {
	return activation.Token{Provider: activation.ProviderGorgonia, Name: name}
}
