// Package dto provides data transfer objects for crypto HTTP endpoints.
// Binary payloads cross the wire base64-encoded.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/fintechx/panvault/internal/validation"
)

// EncryptRequest contains a plaintext to seal. AAD is authenticated but
// not encrypted; the same value must be presented at decrypt time.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`     // base64
	AAD       string `json:"aad,omitempty"` // base64
}

// Validate checks the encrypt request is well-formed.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
		validation.Field(&r.AAD, customValidation.Base64),
	)
}

// DecryptRequest contains a marshaled encrypted blob to open.
type DecryptRequest struct {
	Blob string `json:"blob"`          // base64
	AAD  string `json:"aad,omitempty"` // base64
}

// Validate checks the decrypt request is well-formed.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Blob,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
		validation.Field(&r.AAD, customValidation.Base64),
	)
}
