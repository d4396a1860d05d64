package service

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/fintechx/panvault/internal/crypto/domain"
	"github.com/fintechx/panvault/internal/errors"
)

// MinKDFIterations is the enforced PBKDF2 iteration floor.
const MinKDFIterations = 100_000

// KDF errors.
var (
	// ErrWeakKDFParams indicates the iteration count is below the enforced floor.
	ErrWeakKDFParams = errors.Wrap(errors.ErrInvalidInput, "kdf iterations below minimum")

	// ErrEmptyKDFSalt indicates no salt was supplied.
	ErrEmptyKDFSalt = errors.Wrap(errors.ErrInvalidInput, "kdf salt must not be empty")
)

// DeriveKey derives 32-byte key material from a passphrase using
// PBKDF2-HMAC-SHA256. The salt must be unique per passphrase and stored by
// the caller; the passphrase buffer is not retained.
func DeriveKey(passphrase, salt []byte, iterations, version int) (*cryptoDomain.KeyMaterial, error) {
	if iterations < MinKDFIterations {
		return nil, ErrWeakKDFParams
	}
	if len(salt) == 0 {
		return nil, ErrEmptyKDFSalt
	}

	derived := pbkdf2.Key(passphrase, salt, iterations, cryptoDomain.KeySize, sha256.New)
	defer cryptoDomain.Zero(derived)

	return cryptoDomain.NewKeyMaterial(derived, version)
}
