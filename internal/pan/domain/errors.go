package domain

import (
	"github.com/fintechx/panvault/internal/errors"
)

// PAN handling error definitions.
//
// All input-format errors wrap errors.ErrInvalidInput so the HTTP layer maps
// them to 422 responses. None of these errors ever carries PAN digits in its
// message.
var (
	// ErrInvalidLength indicates the candidate PAN is shorter than 12 or
	// longer than 19 digits.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "pan length must be between 12 and 19 digits")

	// ErrInvalidCharacters indicates the candidate PAN contains non-digit bytes.
	ErrInvalidCharacters = errors.Wrap(errors.ErrInvalidInput, "pan must contain only digits")

	// ErrChecksumFailed indicates the candidate PAN fails the Luhn mod-10 check.
	ErrChecksumFailed = errors.Wrap(errors.ErrInvalidInput, "pan failed checksum validation")

	// ErrMaskConfigInvalid indicates the requested visible prefix and suffix
	// counts would reveal every digit of the PAN or more.
	ErrMaskConfigInvalid = errors.Wrap(errors.ErrInvalidInput, "visible prefix and suffix exceed pan length")
)
