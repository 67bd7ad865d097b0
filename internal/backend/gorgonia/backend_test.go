package gorgonia

import (
	"math"
	"testing"

	"github.com/born-ml/actfactory/internal/activation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func build(t *testing.T, name string) activation.Function {
	t.Helper()
	fn, err := New().New(Token(name))
	require.NoError(t, err)
	return fn
}

func sigmoid(v float64) float64 { return 1 / (1 + math.Exp(-v)) }

func TestTokens(t *testing.T) {
	var names []string
	for _, tok := range New().Tokens() {
		assert.Equal(t, activation.ProviderGorgonia, tok.Provider)
		names = append(names, tok.Name)
	}
	assert.Equal(t, []string{LeakyRelu, Rectify, Sigmoid, SoftMax, Softplus, Tanh}, names)
}

func TestNewErrors(t *testing.T) {
	_, err := New().New(Token("Gelu"))
	assert.ErrorIs(t, err, activation.ErrUnknownActivationType)

	_, err = New().New(activation.Token{Provider: "mxnet", Name: Rectify})
	assert.ErrorIs(t, err, activation.ErrUnsupportedProvider)
}

func TestElementwiseForwardAndGradient(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{-1.5, -0.25, 0.75, 2})

	tests := []struct {
		name string
		f    func(float64) float64
		df   func(float64) float64
	}{
		{Rectify, func(v float64) float64 { return math.Max(0, v) }, func(v float64) float64 {
			if v > 0 {
				return 1
			}
			return 0
		}},
		{Sigmoid, sigmoid, func(v float64) float64 { return sigmoid(v) * (1 - sigmoid(v)) }},
		{Tanh, math.Tanh, func(v float64) float64 { return 1 - math.Tanh(v)*math.Tanh(v) }},
		{Softplus, func(v float64) float64 { return math.Log1p(math.Exp(v)) }, sigmoid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := build(t, tt.name)
			y, err := fn.Activate(x)
			require.NoError(t, err)
			g, err := fn.Gradient(x, y)
			require.NoError(t, err)

			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					v := x.At(i, j)
					assert.InDelta(t, tt.f(v), y.At(i, j), 1e-9, "f(%v)", v)
					assert.InDelta(t, tt.df(v), g.At(i, j), 1e-9, "f'(%v)", v)
				}
			}
		})
	}
}

func TestLeakyRelu(t *testing.T) {
	stock := build(t, LeakyRelu)
	assert.InDelta(t, DefaultLeakyAlpha, stock.(activation.Sloped).Alpha(), 0)

	tuned, err := New().Overrides()[0].Build(activation.WithAlpha(0.3))
	require.NoError(t, err)
	assert.InDelta(t, 0.3, tuned.(activation.Sloped).Alpha(), 0)

	x := mat.NewDense(1, 2, []float64{-2, 3})
	y, err := tuned.Activate(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-0.6, 3}, y.RawRowView(0), 1e-9)

	ys, err := stock.Activate(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-0.02, 3}, ys.RawRowView(0), 1e-9)
}

func TestSoftMax(t *testing.T) {
	fn := build(t, SoftMax)
	x := mat.NewDense(2, 3, []float64{1, 2, 3, 0, 0, 0})
	y, err := fn.Activate(x)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		assert.InDelta(t, 1.0, mat.Sum(y.RowView(i)), 1e-9)
	}
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, y.RawRowView(1), 1e-9)

	diag, err := fn.Gradient(x, y)
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		v := y.At(0, j)
		assert.InDelta(t, v*(1-v), diag.At(0, j), 1e-12)
	}

	up := mat.NewDense(2, 3, []float64{0, 0, 1, 1, 1, 1})
	dx, err := fn.(activation.Backpropagator).Backward(x, y, up)
	require.NoError(t, err)
	y0 := y.RawRowView(0)
	assert.InDeltaSlice(t, []float64{-y0[2] * y0[0], -y0[2] * y0[1], y0[2] * (1 - y0[2])}, dx.RawRowView(0), 1e-9)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, dx.RawRowView(1), 1e-9)
}

func TestBatchErrors(t *testing.T) {
	fn := build(t, Tanh)
	_, err := fn.Activate(nil)
	assert.ErrorIs(t, err, activation.ErrShapeMismatch)

	_, err = fn.Gradient(mat.NewDense(1, 2, nil), mat.NewDense(2, 1, nil))
	assert.ErrorIs(t, err, activation.ErrShapeMismatch)
}
