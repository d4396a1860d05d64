package domain

import (
	"github.com/fintechx/panvault/internal/errors"
)

// Cryptographic operation error definitions.
//
// Cryptographic failures are fatal to the current operation and are never
// retried automatically; messages deliberately avoid echoing sensitive bytes.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is
	// not supported. Supported: aes-gcm, chacha20-poly1305.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates key material is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrTamperedOrWrongKey indicates authentication failed during decryption:
	// the blob was modified, the wrong key was used, or the associated data
	// does not match. The specific cause is deliberately not disclosed.
	ErrTamperedOrWrongKey = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrUnsupportedVersion indicates the blob carries a scheme version this
	// build does not recognize; no best-effort decoding is attempted.
	ErrUnsupportedVersion = errors.Wrap(errors.ErrInvalidInput, "unsupported blob version")

	// ErrInvalidBlobFormat indicates the blob is too short to carry a version
	// byte, nonce, and authentication tag.
	ErrInvalidBlobFormat = errors.Wrap(errors.ErrInvalidInput, "invalid blob format")
)
