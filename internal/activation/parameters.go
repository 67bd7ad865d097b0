package activation

import (
	"fmt"
	"math"
)

// ParamAlpha is the negative-slope parameter of leaky rectifiers.
const ParamAlpha = "alpha"

// Parameters is an optional bag of named numeric parameters. A missing entry
// means "use the backend default". A nil bag is valid and empty.
type Parameters map[string]float64

// Alpha returns the alpha value and whether it was supplied.
func (p Parameters) Alpha() (float64, bool) {
	return p.Get(ParamAlpha)
}

// Get returns the named value and whether it was supplied.
func (p Parameters) Get(name string) (float64, bool) {
	v, ok := p[name]
	return v, ok
}

// Has reports whether name was supplied.
func (p Parameters) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Validate rejects unrecognised names and non-finite values.
func (p Parameters) Validate() error {
	for name, v := range p {
		if name != ParamAlpha {
			return fmt.Errorf("%w: unrecognised parameter %q", ErrInvalidParameter, name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v is not finite", ErrInvalidParameter, name, v)
		}
	}
	return nil
}

// WithAlpha returns a bag holding only alpha.
func WithAlpha(alpha float64) Parameters {
	return Parameters{ParamAlpha: alpha}
}
