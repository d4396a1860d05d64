// Package domain defines the core domain models for PAN tokenization.
// Tokens are opaque handles exchanged for PANs; the PAN itself is stored
// only as an AEAD ciphertext in the vault.
package domain

// FormatType selects the surface shape of generated token handles.
type FormatType string

const (
	// FormatTypeUUID produces UUIDv4 token handles.
	FormatTypeUUID FormatType = "uuid"
	// FormatTypeNumeric produces all-digit handles of the same length as
	// the source PAN, prefixed with "99" so they never collide with real
	// issuer ranges.
	FormatTypeNumeric FormatType = "numeric"
	// FormatTypeLuhnPreserving produces numeric handles that also pass
	// the Luhn mod-10 check, for systems that validate checksums on
	// anything PAN-shaped.
	FormatTypeLuhnPreserving FormatType = "luhn-preserving"
	// FormatTypeAlphanumeric produces "tok_" prefixed base62 handles.
	FormatTypeAlphanumeric FormatType = "alphanumeric"
)

// Validate checks if the format type is supported.
func (f FormatType) Validate() error {
	switch f {
	case FormatTypeUUID, FormatTypeNumeric, FormatTypeLuhnPreserving, FormatTypeAlphanumeric:
		return nil
	default:
		return ErrUnsupportedFormat
	}
}

const (
	// MaxTokenLength is the maximum allowed length for token handles.
	// This limit aligns with database schema constraints (VARCHAR(64)).
	MaxTokenLength = 64
)
