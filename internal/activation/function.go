package activation

import "gonum.org/v1/gonum/mat"

// Function is a concrete backend activation instance.
//
// Inputs are laid out with one example per row and one feature per column
// (ColumnsSpanFeatureSet). Implementations must not retain or modify their
// arguments.
type Function interface {
	// Token returns the native token the instance was built from.
	Token() Token

	// Activate evaluates the activation on a batch.
	Activate(x mat.Matrix) (*mat.Dense, error)

	// Gradient evaluates the element-wise derivative f'(x) given the input x
	// and the output y = f(x).
	Gradient(x, y mat.Matrix) (*mat.Dense, error)
}

// Backpropagator is implemented by functions whose input gradient is not the
// element-wise product of the upstream gradient and Gradient, such as
// softmax, which couples across features.
type Backpropagator interface {
	Backward(x, y, outGrad mat.Matrix) (*mat.Dense, error)
}

// Sloped is implemented by leaky rectifiers.
type Sloped interface {
	Alpha() float64
}

// Backend is one provider's family of activation implementations.
type Backend interface {
	// Provider returns the provider this backend serves.
	Provider() Provider

	// Tokens lists every token New can build.
	Tokens() []Token

	// New builds the stock default implementation for token. Every call
	// returns a fresh instance.
	New(token Token) (Function, error)

	// Overrides returns the parameterised constructors of this backend.
	Overrides() []Override
}

// Override constructs a parameterised variant of a token when Param is
// present in the caller's Parameters.
type Override struct {
	Token Token
	Param string
	Build func(params Parameters) (Function, error)
}

// Applies reports whether o handles token with params.
func (o Override) Applies(token Token, params Parameters) bool {
	return o.Token == token && params.Has(o.Param)
}

// Definition is a caller-side description of an activation function: the
// qualified id in the caller's type system and its properties.
type Definition interface {
	QualifiedID() string
	Parameters() Parameters
}

type definition struct {
	qualifiedID string
	params      Parameters
}

func (d definition) QualifiedID() string    { return d.qualifiedID }
func (d definition) Parameters() Parameters { return d.params }

// Define returns a Definition for qualifiedID with params.
func Define(qualifiedID string, params Parameters) Definition {
	copied := make(Parameters, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return definition{qualifiedID: qualifiedID, params: copied}
}
