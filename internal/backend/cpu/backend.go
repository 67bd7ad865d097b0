package cpu

import (
	"fmt"
	"maps"
	"slices"

	"github.com/born-ml/actfactory/internal/activation"
	"github.com/born-ml/actfactory/internal/parallel"
)

// Operator names understood by the CPU backend.
const (
	OpIdentity  = "Identity"
	OpRelu      = "Relu"
	OpLeakyRelu = "LeakyRelu"
	OpSigmoid   = "Sigmoid"
	OpTanh      = "Tanh"
	OpSoftmax   = "Softmax"
	OpSoftplus  = "Softplus"
	OpGelu      = "Gelu"
	OpSilu      = "Silu"
)

// DefaultLeakyAlpha is the LeakyRelu slope used when none is supplied.
const DefaultLeakyAlpha float32 = 0.01

// constructor builds a fresh instance for an operator.
type constructor func(tok activation.Token, cfg parallel.Config) activation.Function

// CPUBackend is the born provider.
type CPUBackend struct {
	cfg          parallel.Config
	constructors map[string]constructor
}

// New creates a CPU backend with default parallelism.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with the given parallelism.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	b := &CPUBackend{
		cfg:          cfg,
		constructors: make(map[string]constructor),
	}
	b.registerActivations()
	return b
}

func (b *CPUBackend) registerActivations() {
	b.register(OpIdentity, elementwiseOp(identity, identityGrad))
	b.register(OpRelu, elementwiseOp(relu, reluGrad))
	b.register(OpSigmoid, elementwiseOp(sigmoid, sigmoidGrad))
	b.register(OpTanh, elementwiseOp(tanh, tanhGrad))
	b.register(OpSoftplus, elementwiseOp(softplus, softplusGrad))
	b.register(OpGelu, elementwiseOp(gelu, geluGrad))
	b.register(OpSilu, elementwiseOp(silu, siluGrad))
	b.register(OpLeakyRelu, func(tok activation.Token, cfg parallel.Config) activation.Function {
		return newLeakyReLU(tok, DefaultLeakyAlpha, cfg)
	})
	b.register(OpSoftmax, func(tok activation.Token, cfg parallel.Config) activation.Function {
		return &Softmax{token: tok, cfg: cfg}
	})
}

func (b *CPUBackend) register(op string, c constructor) {
	b.constructors[op] = c
}

// Provider returns activation.ProviderBorn.
func (b *CPUBackend) Provider() activation.Provider {
	return activation.ProviderBorn
}

// Tokens lists every supported operator, sorted by name.
func (b *CPUBackend) Tokens() []activation.Token {
	ops := slices.Sorted(maps.Keys(b.constructors))
	tokens := make([]activation.Token, len(ops))
	for i, op := range ops {
		tokens[i] = Token(op)
	}
	return tokens
}

// New builds the stock instance for token.
func (b *CPUBackend) New(token activation.Token) (activation.Function, error) {
	if token.Provider != activation.ProviderBorn {
		return nil, fmt.Errorf("cpu: %w: token %s", activation.ErrUnsupportedProvider, token)
	}
	c, ok := b.constructors[token.Name]
	if !ok {
		return nil, fmt.Errorf("cpu: %w: unsupported operator %q", activation.ErrUnknownActivationType, token.Name)
	}
	return c(token, b.cfg), nil
}

// Overrides returns the parameterised LeakyRelu constructor.
func (b *CPUBackend) Overrides() []activation.Override {
	return []activation.Override{{
		Token: Token(OpLeakyRelu),
		Param: activation.ParamAlpha,
		Build: func(params activation.Parameters) (activation.Function, error) {
			alpha, _ := params.Alpha()
			narrowed, err := narrow(activation.ParamAlpha, alpha)
			if err != nil {
				return nil, err
			}
			return newLeakyReLU(Token(OpLeakyRelu), narrowed, b.cfg), nil
		},
	}}
}

// Token returns the born token for op.
func Token(op string) activation.Token {
	return activation.Token{Provider: activation.ProviderBorn, Name: op}
}
