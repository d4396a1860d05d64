package dto

import (
	panDomain "github.com/fintechx/panvault/internal/pan/domain"
)

// ValidateResponse reports a validation verdict. The PAN itself is never
// echoed back.
type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	Network string `json:"network,omitempty"`
	Length  int    `json:"length,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// MapPANToValidateResponse builds the verdict for a valid PAN.
func MapPANToValidateResponse(pan panDomain.PAN) ValidateResponse {
	return ValidateResponse{
		Valid:   true,
		Network: string(pan.Network()),
		Length:  pan.Length(),
	}
}

// MaskResponse carries the display-safe rendering.
type MaskResponse struct {
	MaskedPAN string `json:"masked_pan"`
	Network   string `json:"network"`
}
