// Package dto provides data transfer objects for PAN HTTP endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/fintechx/panvault/internal/validation"
)

// ValidateRequest contains a candidate PAN to validate.
type ValidateRequest struct {
	PAN string `json:"pan"`
}

// Validate checks the request shape. PAN semantics (length, charset,
// checksum) are the domain's job; only presence is checked here.
func (r *ValidateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PAN,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
		),
	)
}

// MaskRequest contains a PAN to mask with optional visibility overrides.
// Omitted counts fall back to the server's default policy.
type MaskRequest struct {
	PAN           string `json:"pan"`
	VisiblePrefix *int   `json:"visible_prefix,omitempty"`
	VisibleSuffix *int   `json:"visible_suffix,omitempty"`
}

// Validate checks the mask request shape.
func (r *MaskRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PAN,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
		),
	)
}
