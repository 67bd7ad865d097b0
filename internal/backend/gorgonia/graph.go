package gorgonia

import (
	"fmt"
	"slices"

	"github.com/born-ml/actfactory/internal/activation"
	"gonum.org/v1/gonum/mat"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Op is an activation expressed as a gorgonia graph constructor.
type Op struct {
	token activation.Token
	build func(x *G.Node) (*G.Node, error)
}

// Token returns the constructor token.
func (o *Op) Token() activation.Token { return o.token }

// Activate evaluates the graph on x.
func (o *Op) Activate(x mat.Matrix) (*mat.Dense, error) {
	y, _, err := o.run(x, nil)
	return y, err
}

// Gradient differentiates Σ f(x) with respect to x, which for element-wise
// activations is f'(x).
func (o *Op) Gradient(x, y mat.Matrix) (*mat.Dense, error) {
	if err := samePair(x, y); err != nil {
		return nil, err
	}
	r, c := x.Dims()
	ones := mat.NewDense(r, c, nil)
	ones.Apply(func(_, _ int, _ float64) float64 { return 1 }, ones)
	_, dx, err := o.run(x, ones)
	return dx, err
}

// run evaluates f(x) and, when upstream is non-nil, ∂Σ(f(x) ⊙ upstream)/∂x.
func (o *Op) run(x, upstream mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	if err := checkBatch(x); err != nil {
		return nil, nil, err
	}
	r, c := x.Dims()

	g := G.NewGraph()
	in := G.NewMatrix(g, tensor.Float64, G.WithShape(r, c), G.WithName("x"), G.WithValue(toTensor(x)))
	out, err := o.build(in)
	if err != nil {
		return nil, nil, fmt.Errorf("gorgonia: %s: %w", o.token.Name, err)
	}

	var grads G.Nodes
	if upstream != nil {
		up := G.NewMatrix(g, tensor.Float64, G.WithShape(r, c), G.WithName("upstream"), G.WithValue(toTensor(upstream)))
		weighted, err := G.HadamardProd(out, up)
		if err != nil {
			return nil, nil, fmt.Errorf("gorgonia: %s: %w", o.token.Name, err)
		}
		cost, err := G.Sum(weighted)
		if err != nil {
			return nil, nil, fmt.Errorf("gorgonia: %s: %w", o.token.Name, err)
		}
		if grads, err = G.Grad(cost, in); err != nil {
			return nil, nil, fmt.Errorf("gorgonia: %s: grad: %w", o.token.Name, err)
		}
	}

	vm := G.NewTapeMachine(g)
	defer vm.Close()
	if err := vm.RunAll(); err != nil {
		return nil, nil, fmt.Errorf("gorgonia: %s: run: %w", o.token.Name, err)
	}

	y, err := toDense(out.Value(), r, c)
	if err != nil {
		return nil, nil, err
	}
	if len(grads) == 0 {
		return y, nil, nil
	}
	dx, err := toDense(grads[0].Value(), r, c)
	if err != nil {
		return nil, nil, err
	}
	return y, dx, nil
}

// Leaky is gorgonia's LeakyRelu with a fixed slope.
type Leaky struct {
	Op
	alpha float64
}

func newLeaky(tok activation.Token, alpha float64) *Leaky {
	return &Leaky{
		Op: Op{token: tok, build: func(x *G.Node) (*G.Node, error) {
			return G.LeakyRelu(x, alpha)
		}},
		alpha: alpha,
	}
}

// Alpha returns the negative slope.
func (l *Leaky) Alpha() float64 { return l.alpha }

// Softmax is gorgonia's SoftMax over the last (feature) axis.
type Softmax struct {
	Op
}

// Gradient returns the Jacobian diagonal y(1-y); Σ softmax(x) is constant,
// so differentiating the sum would give zero.
func (s *Softmax) Gradient(x, y mat.Matrix) (*mat.Dense, error) {
	if err := samePair(x, y); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return v * (1 - v) }, y)
	return &out, nil
}

// Backward differentiates Σ(softmax(x) ⊙ outGrad) on the graph.
func (s *Softmax) Backward(x, y, outGrad mat.Matrix) (*mat.Dense, error) {
	if err := samePair(x, y); err != nil {
		return nil, err
	}
	if err := samePair(y, outGrad); err != nil {
		return nil, err
	}
	_, dx, err := s.run(x, outGrad)
	return dx, err
}

func toTensor(m mat.Matrix) *tensor.Dense {
	r, c := m.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = m.At(i, j)
		}
	}
	return tensor.New(tensor.WithShape(r, c), tensor.WithBacking(data))
}

func toDense(v G.Value, r, c int) (*mat.Dense, error) {
	if v == nil {
		return nil, fmt.Errorf("gorgonia: no value computed")
	}
	data, ok := v.Data().([]float64)
	if !ok || len(data) != r*c {
		return nil, fmt.Errorf("gorgonia: %w: unexpected result %v", activation.ErrShapeMismatch, v.Shape())
	}
	return mat.NewDense(r, c, slices.Clone(data)), nil
}

func checkBatch(m mat.Matrix) error {
	if m == nil {
		return fmt.Errorf("gorgonia: %w: nil batch", activation.ErrShapeMismatch)
	}
	if r, c := m.Dims(); r == 0 || c == 0 {
		return fmt.Errorf("gorgonia: %w: empty %dx%d batch", activation.ErrShapeMismatch, r, c)
	}
	return nil
}

func samePair(a, b mat.Matrix) error {
	if err := checkBatch(a); err != nil {
		return err
	}
	if err := checkBatch(b); err != nil {
		return err
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return fmt.Errorf("gorgonia: %w: %dx%d vs %dx%d", activation.ErrShapeMismatch, ar, ac, br, bc)
	}
	return nil
}
