package component

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/born-ml/actfactory/internal/activation"
	"gonum.org/v1/gonum/mat"
)

// Linear is a fully connected component: y = x·Wᵀ + b.
//
// W has shape [out.Count, in.Count]. The bias is present when the input
// neurons carry a bias unit.
type Linear struct {
	name    string
	in, out Neurons
	weight  *mat.Dense
	bias    *mat.VecDense
}

// NewLinear creates a Linear component with Xavier-uniform weights drawn
// from rng and zero bias.
func NewLinear(name string, in, out Neurons, rng *rand.Rand) (*Linear, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%s: input: %w", name, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%s: output: %w", name, err)
	}

	bound := math.Sqrt(6.0 / float64(in.Count+out.Count))
	data := make([]float64, out.Count*in.Count)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * bound
	}

	l := &Linear{
		name:   name,
		in:     in,
		out:    out,
		weight: mat.NewDense(out.Count, in.Count, data),
	}
	if in.BiasUnit {
		l.bias = mat.NewVecDense(out.Count, nil)
	}
	return l, nil
}

// Name returns the component name.
func (l *Linear) Name() string { return l.name }

// Inputs returns the input neurons.
func (l *Linear) Inputs() Neurons { return l.in }

// Outputs returns the output neurons.
func (l *Linear) Outputs() Neurons { return l.out }

// Weight returns a copy of the weight matrix.
func (l *Linear) Weight() *mat.Dense { return mat.DenseCopyOf(l.weight) }

// Forward computes x·Wᵀ + b for a batch.
func (l *Linear) Forward(in NeuronsActivation) (NeuronsActivation, error) {
	if in.Features == nil || in.FeatureCount() != l.in.Count {
		return NeuronsActivation{}, fmt.Errorf("%s: %w: expected %d input features",
			l.name, activation.ErrShapeMismatch, l.in.Count)
	}
	x := in.Reorient(activation.ColumnsSpanFeatureSet).Features

	var y mat.Dense
	y.Mul(x, l.weight.T())
	if l.bias != nil {
		r, _ := y.Dims()
		for i := 0; i < r; i++ {
			row := y.RowView(i).(*mat.VecDense)
			row.AddVec(row, l.bias)
		}
	}
	return NeuronsActivation{Features: &y, Orientation: activation.ColumnsSpanFeatureSet}.Reorient(in.Orientation), nil
}
