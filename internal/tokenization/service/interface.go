// Package service provides token handle generation for the vault.
// Handles come in four shapes: UUID, numeric, Luhn-preserving, and
// alphanumeric. Numeric and Luhn-preserving handles carry the reserved
// "99" prefix so they can never be mistaken for a real issuer range.
package service

// TokenGenerator produces and validates opaque token handles.
type TokenGenerator interface {
	// Generate returns a fresh handle. For PAN-shaped formats, length is
	// the total handle length and should match the source PAN; UUID
	// generation ignores it.
	Generate(length int) (string, error)
	// Validate rejects strings that cannot be a handle of this format,
	// letting callers fail detokenization before touching the vault.
	Validate(token string) error
}
