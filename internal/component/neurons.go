// Package component wraps backend activation instances and layer shapes into
// immutable components for a surrounding network-assembly framework.
package component

import (
	"fmt"

	"github.com/born-ml/actfactory/internal/activation"
	"gonum.org/v1/gonum/mat"
)

// Neurons describes a layer's width.
type Neurons struct {
	Count    int  // Number of neurons, excluding any bias unit.
	BiasUnit bool // Whether the layer carries a bias unit.

	// Orientation is an optional layout hint from the caller's framework.
	Orientation activation.Orientation
}

// NewNeurons returns a Neurons with count units and no bias.
func NewNeurons(count int) Neurons {
	return Neurons{Count: count}
}

// Validate checks that the neuron count is positive.
func (n Neurons) Validate() error {
	if n.Count <= 0 {
		return fmt.Errorf("%w: neuron count %d", activation.ErrInvalidShape, n.Count)
	}
	return nil
}

// NeuronsActivation is a batch of activations and the layout it uses.
type NeuronsActivation struct {
	Features    *mat.Dense
	Orientation activation.Orientation
}

// NewActivation wraps features laid out one example per row.
func NewActivation(features *mat.Dense) NeuronsActivation {
	return NeuronsActivation{Features: features, Orientation: activation.ColumnsSpanFeatureSet}
}

// FeatureCount returns the number of features in the batch.
func (a NeuronsActivation) FeatureCount() int {
	r, c := a.Features.Dims()
	if a.Orientation == activation.RowsSpanFeatureSet {
		return r
	}
	return c
}

// ExampleCount returns the number of examples in the batch.
func (a NeuronsActivation) ExampleCount() int {
	r, c := a.Features.Dims()
	if a.Orientation == activation.RowsSpanFeatureSet {
		return c
	}
	return r
}

// Reorient returns the batch laid out as o. A batch with no declared
// orientation is taken to be ColumnsSpanFeatureSet.
func (a NeuronsActivation) Reorient(o activation.Orientation) NeuronsActivation {
	from := a.Orientation
	if from == activation.None {
		from = activation.ColumnsSpanFeatureSet
	}
	if o == activation.None || o == from {
		return NeuronsActivation{Features: a.Features, Orientation: from}
	}
	return NeuronsActivation{Features: mat.DenseCopyOf(a.Features.T()), Orientation: o}
}
