// Package dto provides data transfer objects for tokenization HTTP
// endpoints. Responses never include ciphertext or value hashes.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/fintechx/panvault/internal/validation"
)

// TokenizeRequest contains a PAN to exchange for a token handle.
type TokenizeRequest struct {
	PAN string `json:"pan"`
}

// Validate checks the tokenize request shape.
func (r *TokenizeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PAN,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
		),
	)
}

// DetokenizeRequest contains a token handle to exchange back for its PAN.
type DetokenizeRequest struct {
	Token string `json:"token"`
}

// Validate checks the detokenize request shape.
func (r *DetokenizeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
		),
	)
}
