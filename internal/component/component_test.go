package component

import (
	"math/rand/v2"
	"testing"

	"github.com/born-ml/actfactory/internal/activation"
	"github.com/born-ml/actfactory/internal/backend/cpu"
	"github.com/born-ml/actfactory/internal/backend/gonum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var (
	softmaxID = activation.NewIdentity("softmax", activation.Softmax, []string{"softmax"},
		map[activation.Provider]string{activation.ProviderGonum: gonum.Softmax})
	reluID = activation.NewIdentity("rectifier", activation.ReLU, []string{"relu"},
		map[activation.Provider]string{activation.ProviderBorn: cpu.OpRelu})
)

func newFn(t *testing.T, b activation.Backend, tok activation.Token) activation.Function {
	t.Helper()
	fn, err := b.New(tok)
	require.NoError(t, err)
	return fn
}

func TestRequiredOrientation(t *testing.T) {
	assert.Equal(t, activation.ColumnsSpanFeatureSet, RequiredOrientation(activation.Softmax))
	for _, b := range []activation.BaseType{
		activation.Linear, activation.ReLU, activation.LeakyReLU, activation.Sigmoid,
		activation.Tanh, activation.Softplus, activation.GELU, activation.SiLU,
	} {
		assert.Equal(t, activation.None, RequiredOrientation(b), b.String())
	}
}

func TestBuildAccessors(t *testing.T) {
	fn := newFn(t, cpu.New(), cpu.Token(cpu.OpRelu))
	c := Build("h1", NewNeurons(128), fn, reluID, activation.None)

	assert.Equal(t, "h1", c.Name())
	assert.Equal(t, 128, c.Neurons().Count)
	assert.Equal(t, "rectifier", c.Identity().Name())
	assert.Same(t, fn, c.Function())
	assert.Equal(t, activation.None, c.RequiredOrientation())
	assert.Equal(t, "h1[rectifier born/Relu x128]", c.String())
}

func TestForwardRowsSpanInputIsRestored(t *testing.T) {
	c := Build("h", NewNeurons(2), newFn(t, cpu.New(), cpu.Token(cpu.OpRelu)), reluID, activation.None)

	// Two features (rows) by three examples (columns).
	in := NeuronsActivation{
		Features:    mat.NewDense(2, 3, []float64{-1, 2, -3, 4, -5, 6}),
		Orientation: activation.RowsSpanFeatureSet,
	}
	out, err := c.Forward(in)
	require.NoError(t, err)
	assert.Equal(t, activation.RowsSpanFeatureSet, out.Orientation)
	assert.True(t, mat.Equal(mat.NewDense(2, 3, []float64{0, 2, 0, 4, 0, 6}), out.Features))
}

func TestSoftmaxForcesColumnsSpan(t *testing.T) {
	c := Build("out", NewNeurons(3), newFn(t, gonum.New(), gonum.Token(gonum.Softmax)), softmaxID, activation.ColumnsSpanFeatureSet)

	// Three features laid out as rows, two examples as columns.
	in := NeuronsActivation{
		Features:    mat.NewDense(3, 2, []float64{1, 0, 2, 0, 3, 0}),
		Orientation: activation.RowsSpanFeatureSet,
	}
	out, err := c.Forward(in)
	require.NoError(t, err)
	assert.Equal(t, activation.ColumnsSpanFeatureSet, out.Orientation)

	r, cols := out.Features.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, cols)
	for i := 0; i < r; i++ {
		assert.InDelta(t, 1.0, mat.Sum(out.Features.RowView(i)), 1e-12)
	}
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, out.Features.RawRowView(1), 1e-12)
}

func TestForwardShapeMismatch(t *testing.T) {
	c := Build("h", NewNeurons(4), newFn(t, cpu.New(), cpu.Token(cpu.OpRelu)), reluID, activation.None)

	_, err := c.Forward(NewActivation(mat.NewDense(2, 3, nil)))
	assert.ErrorIs(t, err, activation.ErrShapeMismatch)

	_, err = c.Forward(NeuronsActivation{})
	assert.ErrorIs(t, err, activation.ErrShapeMismatch)
}

func TestBackwardElementwise(t *testing.T) {
	c := Build("h", NewNeurons(3), newFn(t, cpu.New(), cpu.Token(cpu.OpRelu)), reluID, activation.None)
	in := NewActivation(mat.NewDense(1, 3, []float64{-1, 2, 3}))
	out, err := c.Forward(in)
	require.NoError(t, err)

	grad, err := c.Gradient(in, out)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, grad.Features.RawRowView(0))

	dx, err := c.Backward(in, out, NewActivation(mat.NewDense(1, 3, []float64{5, 6, 7})))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 6, 7}, dx.Features.RawRowView(0))

	_, err = c.Backward(in, out, NewActivation(mat.NewDense(2, 3, nil)))
	assert.ErrorIs(t, err, activation.ErrShapeMismatch)
}

func TestBackwardUsesBackpropagator(t *testing.T) {
	c := Build("out", NewNeurons(3), newFn(t, gonum.New(), gonum.Token(gonum.Softmax)), softmaxID, activation.ColumnsSpanFeatureSet)
	in := NewActivation(mat.NewDense(1, 3, []float64{0.5, -1, 2}))
	out, err := c.Forward(in)
	require.NoError(t, err)

	dx, err := c.Backward(in, out, NewActivation(mat.NewDense(1, 3, []float64{1, 1, 1})))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, dx.Features.RawRowView(0), 1e-12)
}

func TestIndependentComponentsShareNothing(t *testing.T) {
	b := cpu.New()
	a := Build("h", NewNeurons(2), newFn(t, b, cpu.Token(cpu.OpRelu)), reluID, activation.None)
	c := Build("h", NewNeurons(2), newFn(t, b, cpu.Token(cpu.OpRelu)), reluID, activation.None)
	assert.NotSame(t, a, c)
	assert.NotSame(t, a.Function(), c.Function())
}

func TestNeurons(t *testing.T) {
	assert.NoError(t, NewNeurons(1).Validate())
	assert.ErrorIs(t, NewNeurons(0).Validate(), activation.ErrInvalidShape)
	assert.ErrorIs(t, Neurons{Count: -3}.Validate(), activation.ErrInvalidShape)

	batch := NeuronsActivation{Features: mat.NewDense(4, 7, nil), Orientation: activation.RowsSpanFeatureSet}
	assert.Equal(t, 4, batch.FeatureCount())
	assert.Equal(t, 7, batch.ExampleCount())

	flipped := batch.Reorient(activation.ColumnsSpanFeatureSet)
	assert.Equal(t, 4, flipped.FeatureCount())
	r, c := flipped.Features.Dims()
	assert.Equal(t, [2]int{7, 4}, [2]int{r, c})
}

func TestLinear(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	l, err := NewLinear("fc", Neurons{Count: 3, BiasUnit: true}, NewNeurons(2), rng)
	require.NoError(t, err)
	assert.Equal(t, "fc", l.Name())
	assert.Equal(t, 3, l.Inputs().Count)
	assert.Equal(t, 2, l.Outputs().Count)

	w := l.Weight()
	r, c := w.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	x := mat.NewDense(1, 3, []float64{1, 0, 0})
	y, err := l.Forward(NewActivation(x))
	require.NoError(t, err)
	// Zero bias: the output is the first column of W.
	assert.InDeltaSlice(t, []float64{w.At(0, 0), w.At(1, 0)}, y.Features.RawRowView(0), 1e-12)

	_, err = l.Forward(NewActivation(mat.NewDense(1, 2, nil)))
	assert.ErrorIs(t, err, activation.ErrShapeMismatch)

	_, err = NewLinear("bad", NewNeurons(0), NewNeurons(2), rng)
	assert.ErrorIs(t, err, activation.ErrInvalidShape)
}
