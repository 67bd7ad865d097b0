package activation

import "errors"

// Errors returned while resolving and constructing activation components.
var (
	ErrUnknownActivationType = errors.New("unknown activation type")
	ErrUnsupportedProvider   = errors.New("unsupported provider")
	ErrInvalidParameter      = errors.New("invalid parameter")
	ErrInvalidRegistry       = errors.New("invalid activation registry")
	ErrInvalidShape          = errors.New("invalid neuron shape")
	ErrShapeMismatch         = errors.New("activation shape mismatch")
)
