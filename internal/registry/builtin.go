package registry

import (
	"sync"

	"github.com/born-ml/actfactory/internal/activation"
	"github.com/born-ml/actfactory/internal/backend/cpu"
	"github.com/born-ml/actfactory/internal/backend/gonum"
	"github.com/born-ml/actfactory/internal/backend/gorgonia"
)

// Builtin returns the built-in activation catalogue.
func Builtin() []activation.Identity {
	const (
		born  = activation.ProviderBorn
		gnum  = activation.ProviderGonum
		graph = activation.ProviderGorgonia
	)
	return []activation.Identity{
		activation.NewIdentity("identity", activation.Linear,
			[]string{"linear", "identity"},
			map[activation.Provider]string{born: cpu.OpIdentity, gnum: gonum.Identity}),
		activation.NewIdentity("rectifier", activation.ReLU,
			[]string{"relu", "rectifier"},
			map[activation.Provider]string{born: cpu.OpRelu, gnum: gonum.ReLU, graph: gorgonia.Rectify}),
		activation.NewIdentity("leaky-rectifier", activation.LeakyReLU,
			[]string{"leaky_relu", "leakyrelu"},
			map[activation.Provider]string{born: cpu.OpLeakyRelu, gnum: gonum.LeakyReLU, graph: gorgonia.LeakyRelu}),
		activation.NewIdentity("sigmoid", activation.Sigmoid,
			[]string{"sigmoid", "logistic"},
			map[activation.Provider]string{born: cpu.OpSigmoid, gnum: gonum.Sigmoid, graph: gorgonia.Sigmoid}),
		activation.NewIdentity("tanh", activation.Tanh,
			[]string{"tanh"},
			map[activation.Provider]string{born: cpu.OpTanh, gnum: gonum.Tanh, graph: gorgonia.Tanh}),
		activation.NewIdentity("softmax", activation.Softmax,
			[]string{"softmax"},
			map[activation.Provider]string{born: cpu.OpSoftmax, gnum: gonum.Softmax, graph: gorgonia.SoftMax}),
		activation.NewIdentity("softplus", activation.Softplus,
			[]string{"softplus"},
			map[activation.Provider]string{born: cpu.OpSoftplus, gnum: gonum.Softplus, graph: gorgonia.Softplus}),
		activation.NewIdentity("gelu", activation.GELU,
			[]string{"gelu"},
			map[activation.Provider]string{born: cpu.OpGelu}),
		activation.NewIdentity("silu", activation.SiLU,
			[]string{"silu", "swish"},
			map[activation.Provider]string{born: cpu.OpSilu}),
	}
}

// BuiltinBackends returns fresh instances of the built-in providers.
func BuiltinBackends() []activation.Backend {
	return []activation.Backend{cpu.New(), gonum.New(), gorgonia.New()}
}

var builtinRegistry = sync.OnceValues(func() (*Registry, error) {
	return New(Builtin(), WithBackends(BuiltinBackends()...))
})

// Default returns the process-wide registry built from Builtin and validated
// against BuiltinBackends. It is built on first use.
func Default() (*Registry, error) {
	return builtinRegistry()
}
