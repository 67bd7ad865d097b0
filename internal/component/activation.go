package component

import (
	"fmt"

	"github.com/born-ml/actfactory/internal/activation"
	"gonum.org/v1/gonum/mat"
)

// Activation is an immutable differentiable activation component.
type Activation struct {
	name        string
	neurons     Neurons
	identity    activation.Identity
	fn          activation.Function
	orientation activation.Orientation
}

// Build wraps fn into a component. It does not check that requiredOrientation
// matches identity's base type; see RequiredOrientation.
func Build(name string, neurons Neurons, fn activation.Function, identity activation.Identity, requiredOrientation activation.Orientation) *Activation {
	return &Activation{
		name:        name,
		neurons:     neurons,
		identity:    identity,
		fn:          fn,
		orientation: requiredOrientation,
	}
}

// RequiredOrientation returns the layout a base type imposes on its batches:
// ColumnsSpanFeatureSet for softmax, None otherwise.
func RequiredOrientation(base activation.BaseType) activation.Orientation {
	if base == activation.Softmax {
		return activation.ColumnsSpanFeatureSet
	}
	return activation.None
}

// Name returns the component name.
func (a *Activation) Name() string { return a.name }

// Neurons returns the layer shape.
func (a *Activation) Neurons() Neurons { return a.neurons }

// Identity returns the canonical identity the component was resolved from.
func (a *Activation) Identity() activation.Identity { return a.identity }

// Function returns the backend instance.
func (a *Activation) Function() activation.Function { return a.fn }

// RequiredOrientation returns the layout the component needs, or None.
func (a *Activation) RequiredOrientation() activation.Orientation { return a.orientation }

// String describes the component.
func (a *Activation) String() string {
	return fmt.Sprintf("%s[%s %s x%d]", a.name, a.identity.Name(), a.fn.Token(), a.neurons.Count)
}

// prepare checks in against the layer width and lays it out one example per
// row, as backends expect.
func (a *Activation) prepare(in NeuronsActivation) (NeuronsActivation, error) {
	if in.Features == nil {
		return NeuronsActivation{}, fmt.Errorf("%s: %w: nil features", a.name, activation.ErrShapeMismatch)
	}
	if got := in.FeatureCount(); got != a.neurons.Count {
		return NeuronsActivation{}, fmt.Errorf("%s: %w: %d features, layer has %d neurons",
			a.name, activation.ErrShapeMismatch, got, a.neurons.Count)
	}
	return in.Reorient(activation.ColumnsSpanFeatureSet), nil
}

// restore lays the result back out the way the caller supplied it, unless
// the component imposes its own orientation.
func (a *Activation) restore(m *mat.Dense, caller activation.Orientation) NeuronsActivation {
	out := NeuronsActivation{Features: m, Orientation: activation.ColumnsSpanFeatureSet}
	if a.orientation.Required() {
		return out.Reorient(a.orientation)
	}
	return out.Reorient(caller)
}

// Forward evaluates the activation on in.
func (a *Activation) Forward(in NeuronsActivation) (NeuronsActivation, error) {
	x, err := a.prepare(in)
	if err != nil {
		return NeuronsActivation{}, err
	}
	y, err := a.fn.Activate(x.Features)
	if err != nil {
		return NeuronsActivation{}, fmt.Errorf("%s: %w", a.name, err)
	}
	return a.restore(y, in.Orientation), nil
}

// Gradient evaluates f'(x) given the input and the output of Forward.
func (a *Activation) Gradient(in, out NeuronsActivation) (NeuronsActivation, error) {
	x, err := a.prepare(in)
	if err != nil {
		return NeuronsActivation{}, err
	}
	y, err := a.prepare(out)
	if err != nil {
		return NeuronsActivation{}, err
	}
	g, err := a.fn.Gradient(x.Features, y.Features)
	if err != nil {
		return NeuronsActivation{}, fmt.Errorf("%s: %w", a.name, err)
	}
	return a.restore(g, in.Orientation), nil
}

// Backward maps the gradient of the loss with respect to the output onto the
// input. Functions that couple features implement activation.Backpropagator;
// for the rest the result is outGrad ⊙ f'(x).
func (a *Activation) Backward(in, out, outGrad NeuronsActivation) (NeuronsActivation, error) {
	x, err := a.prepare(in)
	if err != nil {
		return NeuronsActivation{}, err
	}
	y, err := a.prepare(out)
	if err != nil {
		return NeuronsActivation{}, err
	}
	g, err := a.prepare(outGrad)
	if err != nil {
		return NeuronsActivation{}, err
	}
	if xr, xc := x.Features.Dims(); !sameDims(g.Features, xr, xc) {
		gr, gc := g.Features.Dims()
		return NeuronsActivation{}, fmt.Errorf("%s: %w: gradient %dx%d, input %dx%d",
			a.name, activation.ErrShapeMismatch, gr, gc, xr, xc)
	}

	var dx *mat.Dense
	if bp, ok := a.fn.(activation.Backpropagator); ok {
		dx, err = bp.Backward(x.Features, y.Features, g.Features)
	} else {
		dx, err = a.fn.Gradient(x.Features, y.Features)
		if err == nil {
			dx.MulElem(dx, g.Features)
		}
	}
	if err != nil {
		return NeuronsActivation{}, fmt.Errorf("%s: %w", a.name, err)
	}
	return a.restore(dx, in.Orientation), nil
}

func sameDims(m mat.Matrix, r, c int) bool {
	mr, mc := m.Dims()
	return mr == r && mc == c
}
