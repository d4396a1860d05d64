package domain

import (
	"github.com/fintechx/panvault/internal/errors"
)

// Tokenization error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for tokenization failures.
var (
	// ErrTokenNotFound indicates no vault record exists for the token handle.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrTokenCollision indicates a generated token handle already exists in
	// the vault. Callers retry with a fresh handle.
	ErrTokenCollision = errors.Wrap(errors.ErrConflict, "token already exists")

	// ErrVaultUnavailable indicates the token vault cannot be reached.
	ErrVaultUnavailable = errors.Wrap(errors.ErrUnavailable, "token vault unavailable")

	// ErrReEncryptionRequired indicates the vault record was sealed under a
	// retired key version and must be re-tokenized before it can be served.
	ErrReEncryptionRequired = errors.Wrap(errors.ErrConflict, "record sealed under retired key version")

	// ErrUnsupportedFormat indicates the requested token format is unknown.
	ErrUnsupportedFormat = errors.Wrap(errors.ErrInvalidInput, "unsupported token format")
)
