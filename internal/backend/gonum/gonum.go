// Package gonum implements the gonum activation provider: float64 kernels
// applied to gonum dense matrices.
package gonum

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/born-ml/actfactory/internal/activation"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Kernel names understood by the gonum backend.
const (
	Identity  = "identity"
	ReLU      = "relu"
	LeakyReLU = "leakyrelu"
	Sigmoid   = "sigmoid"
	Tanh      = "tanh"
	Softmax   = "softmax"
	Softplus  = "softplus"
)

// DefaultLeakyAlpha is the leakyrelu slope used when none is supplied.
const DefaultLeakyAlpha = 0.01

// Backend is the gonum provider.
type Backend struct {
	kernels map[string]func(tok activation.Token) activation.Function
}

// New creates a gonum backend.
func New() *Backend {
	b := &Backend{kernels: make(map[string]func(activation.Token) activation.Function)}
	b.kernels[Identity] = pointwise(func(v float64) float64 { return v }, func(_, _ float64) float64 { return 1 })
	b.kernels[ReLU] = pointwise(func(v float64) float64 { return math.Max(v, 0) }, func(x, _ float64) float64 {
		if x > 0 {
			return 1
		}
		return 0
	})
	b.kernels[Sigmoid] = pointwise(logistic, func(_, y float64) float64 { return y * (1 - y) })
	b.kernels[Tanh] = pointwise(math.Tanh, func(_, y float64) float64 { return 1 - y*y })
	b.kernels[Softplus] = pointwise(func(v float64) float64 {
		if v > 30 {
			return v
		}
		return math.Log1p(math.Exp(v))
	}, func(x, _ float64) float64 { return logistic(x) })
	b.kernels[LeakyReLU] = func(tok activation.Token) activation.Function {
		return &Leaky{token: tok, alpha: DefaultLeakyAlpha}
	}
	b.kernels[Softmax] = func(tok activation.Token) activation.Function {
		return &RowSoftmax{token: tok}
	}
	return b
}

func logistic(v float64) float64 { return 1 / (1 + math.Exp(-v)) }

// Provider returns activation.ProviderGonum.
func (b *Backend) Provider() activation.Provider { return activation.ProviderGonum }

// Tokens lists every supported kernel, sorted by name.
func (b *Backend) Tokens() []activation.Token {
	names := slices.Sorted(maps.Keys(b.kernels))
	out := make([]activation.Token, len(names))
	for i, n := range names {
		out[i] = Token(n)
	}
	return out
}

// New builds the stock instance for token.
func (b *Backend) New(token activation.Token) (activation.Function, error) {
	if token.Provider != activation.ProviderGonum {
		return nil, fmt.Errorf("gonum: %w: token %s", activation.ErrUnsupportedProvider, token)
	}
	k, ok := b.kernels[token.Name]
	if !ok {
		return nil, fmt.Errorf("gonum: %w: unsupported kernel %q", activation.ErrUnknownActivationType, token.Name)
	}
	return k(token), nil
}

// Overrides returns the parameterised leakyrelu constructor.
func (b *Backend) Overrides() []activation.Override {
	return []activation.Override{{
		Token: Token(LeakyReLU),
		Param: activation.ParamAlpha,
		Build: func(params activation.Parameters) (activation.Function, error) {
			alpha, _ := params.Alpha()
			return &Leaky{token: Token(LeakyReLU), alpha: alpha}, nil
		},
	}}
}

// Token returns the gonum token for name.
func Token(name string) activation.Token {
	return activation.Token{Provider: activation.ProviderGonum, Name: name}
}

func checkBatch(m mat.Matrix) error {
	if m == nil {
		return fmt.Errorf("gonum: %w: nil batch", activation.ErrShapeMismatch)
	}
	if r, c := m.Dims(); r == 0 || c == 0 {
		return fmt.Errorf("gonum: %w: empty %dx%d batch", activation.ErrShapeMismatch, r, c)
	}
	return nil
}

func checkPair(a, b mat.Matrix) error {
	if err := checkBatch(a); err != nil {
		return err
	}
	if err := checkBatch(b); err != nil {
		return err
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return fmt.Errorf("gonum: %w: %dx%d vs %dx%d", activation.ErrShapeMismatch, ar, ac, br, bc)
	}
	return nil
}

// Pointwise applies f to each element and df to each (x, y) pair.
type Pointwise struct {
	token activation.Token
	f     func(float64) float64
	df    func(x, y float64) float64
}

func pointwise(f func(float64) float64, df func(x, y float64) float64) func(activation.Token) activation.Function {
	return func(tok activation.Token) activation.Function {
		return &Pointwise{token: tok, f: f, df: df}
	}
}

// Token returns the kernel token.
func (p *Pointwise) Token() activation.Token { return p.token }

// Activate applies f.
func (p *Pointwise) Activate(x mat.Matrix) (*mat.Dense, error) {
	if err := checkBatch(x); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return p.f(v) }, x)
	return &out, nil
}

// Gradient applies df.
func (p *Pointwise) Gradient(x, y mat.Matrix) (*mat.Dense, error) {
	if err := checkPair(x, y); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Apply(func(i, j int, v float64) float64 { return p.df(v, y.At(i, j)) }, x)
	return &out, nil
}

// Leaky is the leaky rectifier.
type Leaky struct {
	token activation.Token
	alpha float64
}

// Token returns the leakyrelu token.
func (l *Leaky) Token() activation.Token { return l.token }

// Alpha returns the negative slope.
func (l *Leaky) Alpha() float64 { return l.alpha }

// Activate applies x or alpha*x.
func (l *Leaky) Activate(x mat.Matrix) (*mat.Dense, error) {
	if err := checkBatch(x); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return v
		}
		return l.alpha * v
	}, x)
	return &out, nil
}

// Gradient is 1 for positive inputs and alpha elsewhere.
func (l *Leaky) Gradient(x, y mat.Matrix) (*mat.Dense, error) {
	if err := checkPair(x, y); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return 1
		}
		return l.alpha
	}, x)
	return &out, nil
}

// RowSoftmax normalises every row across its columns.
type RowSoftmax struct {
	token activation.Token
}

// Token returns the softmax token.
func (s *RowSoftmax) Token() activation.Token { return s.token }

// Activate computes a numerically stable softmax per row.
func (s *RowSoftmax) Activate(x mat.Matrix) (*mat.Dense, error) {
	if err := checkBatch(x); err != nil {
		return nil, err
	}
	out := mat.DenseCopyOf(x)
	r, _ := out.Dims()
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		shift := floats.Max(row)
		floats.AddConst(-shift, row)
		for j, v := range row {
			row[j] = math.Exp(v)
		}
		floats.Scale(1/floats.Sum(row), row)
	}
	return out, nil
}

// Gradient returns the Jacobian diagonal y(1-y).
func (s *RowSoftmax) Gradient(x, y mat.Matrix) (*mat.Dense, error) {
	if err := checkPair(x, y); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return v * (1 - v) }, y)
	return &out, nil
}

// Backward applies the full per-row Jacobian: y ⊙ (g - <g, y>).
func (s *RowSoftmax) Backward(x, y, outGrad mat.Matrix) (*mat.Dense, error) {
	if err := checkPair(x, y); err != nil {
		return nil, err
	}
	if err := checkPair(y, outGrad); err != nil {
		return nil, err
	}
	yd := mat.DenseCopyOf(y)
	gd := mat.DenseCopyOf(outGrad)
	r, _ := yd.Dims()
	for i := 0; i < r; i++ {
		yr, gr := yd.RawRowView(i), gd.RawRowView(i)
		dot := floats.Dot(yr, gr)
		floats.AddConst(-dot, gr)
		floats.Mul(gr, yr)
	}
	return gd, nil
}
