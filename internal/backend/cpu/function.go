package cpu

import (
	"math"

	"github.com/born-ml/actfactory/internal/activation"
	"github.com/born-ml/actfactory/internal/parallel"
	"gonum.org/v1/gonum/mat"
)

// Elementwise applies a scalar kernel to every element.
type Elementwise struct {
	token activation.Token
	cfg   parallel.Config
	f     func(x float32) float32
	df    func(x, y float32) float32
}

func elementwiseOp(f func(float32) float32, df func(x, y float32) float32) constructor {
	return func(tok activation.Token, cfg parallel.Config) activation.Function {
		return &Elementwise{token: tok, cfg: cfg, f: f, df: df}
	}
}

// Token returns the operator token.
func (e *Elementwise) Token() activation.Token { return e.token }

// Activate applies the kernel.
func (e *Elementwise) Activate(x mat.Matrix) (*mat.Dense, error) {
	in, err := fromMatrix(x)
	if err != nil {
		return nil, err
	}
	out := in.like()
	parallel.Elements(len(in.data), func(start, end int) {
		for i := start; i < end; i++ {
			out.data[i] = e.f(in.data[i])
		}
	}, e.cfg)
	return out.dense(), nil
}

// Gradient applies the derivative kernel.
func (e *Elementwise) Gradient(x, y mat.Matrix) (*mat.Dense, error) {
	in, out, err := pair(x, y)
	if err != nil {
		return nil, err
	}
	grad := in.like()
	parallel.Elements(len(in.data), func(start, end int) {
		for i := start; i < end; i++ {
			grad.data[i] = e.df(in.data[i], out.data[i])
		}
	}, e.cfg)
	return grad.dense(), nil
}

// LeakyReLU computes f(x) = x for x > 0, alpha*x otherwise.
type LeakyReLU struct {
	token activation.Token
	cfg   parallel.Config
	alpha float32
}

func newLeakyReLU(tok activation.Token, alpha float32, cfg parallel.Config) *LeakyReLU {
	return &LeakyReLU{token: tok, cfg: cfg, alpha: alpha}
}

// Token returns the LeakyRelu token.
func (l *LeakyReLU) Token() activation.Token { return l.token }

// Slope returns the single-precision negative slope.
func (l *LeakyReLU) Slope() float32 { return l.alpha }

// Alpha returns the negative slope widened to float64.
func (l *LeakyReLU) Alpha() float64 { return float64(l.alpha) }

// Activate applies the leaky rectifier.
func (l *LeakyReLU) Activate(x mat.Matrix) (*mat.Dense, error) {
	in, err := fromMatrix(x)
	if err != nil {
		return nil, err
	}
	out := in.like()
	parallel.Elements(len(in.data), func(start, end int) {
		for i := start; i < end; i++ {
			if v := in.data[i]; v > 0 {
				out.data[i] = v
			} else {
				out.data[i] = l.alpha * v
			}
		}
	}, l.cfg)
	return out.dense(), nil
}

// Gradient is 1 where x > 0 and alpha elsewhere.
func (l *LeakyReLU) Gradient(x, y mat.Matrix) (*mat.Dense, error) {
	in, _, err := pair(x, y)
	if err != nil {
		return nil, err
	}
	grad := in.like()
	for i, v := range in.data {
		if v > 0 {
			grad.data[i] = 1
		} else {
			grad.data[i] = l.alpha
		}
	}
	return grad.dense(), nil
}

// Softmax normalises each row (one example) across its columns (features).
type Softmax struct {
	token activation.Token
	cfg   parallel.Config
}

// Token returns the Softmax token.
func (s *Softmax) Token() activation.Token { return s.token }

// Activate computes exp(x_i - max) / Σ exp(x_j - max) per row.
func (s *Softmax) Activate(x mat.Matrix) (*mat.Dense, error) {
	in, err := fromMatrix(x)
	if err != nil {
		return nil, err
	}
	out := in.like()
	parallel.Rows(in.rows, in.cols, func(r int) {
		softmaxRow(out.row(r), in.row(r))
	}, s.cfg)
	return out.dense(), nil
}

func softmaxRow(dst, src []float32) {
	maxVal := float32(math.Inf(-1))
	for _, v := range src {
		if v > maxVal {
			maxVal = v
		}
	}
	var sum float32
	for i, v := range src {
		e := float32(math.Exp(float64(v - maxVal)))
		dst[i] = e
		sum += e
	}
	for i := range dst {
		dst[i] /= sum
	}
}

// Gradient returns the Jacobian diagonal y(1-y).
func (s *Softmax) Gradient(x, y mat.Matrix) (*mat.Dense, error) {
	_, out, err := pair(x, y)
	if err != nil {
		return nil, err
	}
	grad := out.like()
	for i, v := range out.data {
		grad.data[i] = v * (1 - v)
	}
	return grad.dense(), nil
}

// Backward applies the full softmax Jacobian per row:
//
//	∂L/∂x_j = y_j * (g_j - Σ_i g_i*y_i)
func (s *Softmax) Backward(x, y, outGrad mat.Matrix) (*mat.Dense, error) {
	_, out, err := pair(x, y)
	if err != nil {
		return nil, err
	}
	_, g, err := pair(y, outGrad)
	if err != nil {
		return nil, err
	}
	grad := out.like()
	parallel.Rows(out.rows, out.cols, func(r int) {
		yr, gr, dst := out.row(r), g.row(r), grad.row(r)
		var dot float32
		for i := range yr {
			dot += gr[i] * yr[i]
		}
		for i := range yr {
			dst[i] = yr[i] * (gr[i] - dot)
		}
	}, s.cfg)
	return grad.dense(), nil
}
