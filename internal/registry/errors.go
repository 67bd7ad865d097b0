package registry

import (
	"fmt"

	"github.com/born-ml/actfactory/internal/activation"
)

// ValidationError describes one problem found while building a Registry.
type ValidationError struct {
	Type     string // e.g. "duplicate_qualified_id", "no_mappings"
	Identity string // Canonical name involved
	Other    string // Second identity (collisions) or qualified id
	Details  string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Other != "" {
		return fmt.Sprintf("%s: identities %q and %q: %s", e.Type, e.Identity, e.Other, e.Details)
	}
	if e.Identity != "" {
		return fmt.Sprintf("%s: identity %q: %s", e.Type, e.Identity, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap lets errors.Is match activation.ErrInvalidRegistry.
func (e *ValidationError) Unwrap() error {
	return activation.ErrInvalidRegistry
}
