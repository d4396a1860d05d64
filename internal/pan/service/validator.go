// Package service provides stateless PAN operations: validation, masking, and
// test-PAN generation. All services are safe for concurrent use.
package service

import (
	panDomain "github.com/fintechx/panvault/internal/pan/domain"
)

// Validator validates raw PAN candidates and classifies their card network.
type Validator interface {
	// Validate returns a PAN value object for a structurally valid,
	// checksum-passing digit string, or one of the pan domain input errors.
	Validate(raw string) (panDomain.PAN, error)
}

type validator struct{}

// NewValidator creates a PAN validator. The validator is a pure function over
// its input; it keeps no state and performs no I/O.
func NewValidator() Validator {
	return &validator{}
}

// Validate delegates to the domain constructor, the single place a PAN value
// can be built.
func (v *validator) Validate(raw string) (panDomain.PAN, error) {
	return panDomain.ParsePAN(raw)
}
