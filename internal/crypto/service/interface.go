// Package service provides the authenticated-encryption engine and its AEAD
// cipher implementations (AES-256-GCM, ChaCha20-Poly1305), plus key
// derivation and key provider capabilities.
package service

import (
	"context"

	cryptoDomain "github.com/fintechx/panvault/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated
// Data over caller-supplied nonces. Implementations are stateless and safe
// for concurrent use.
type AEAD interface {
	// Seal encrypts plaintext and appends the authentication tag. The nonce
	// must be NonceSize bytes and unique per key.
	Seal(nonce, plaintext, aad []byte) []byte

	// Open verifies the authentication tag in constant time and decrypts.
	// No plaintext is returned on verification failure.
	Open(nonce, ciphertext, aad []byte) ([]byte, error)
}

// AEADManager creates AEAD cipher instances for a key and algorithm.
type AEADManager interface {
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// Engine is the authenticated-encryption engine operating on opaque byte
// buffers and the versioned blob wire format. It has no dependency on PAN
// logic.
type Engine interface {
	// Encrypt seals plaintext under the key with a fresh random nonce,
	// binding aad into the authentication tag without encrypting it.
	Encrypt(plaintext []byte, key *cryptoDomain.KeyMaterial, aad []byte) (cryptoDomain.EncryptedBlob, error)

	// EncryptMarshal is Encrypt followed by wire-format serialization.
	EncryptMarshal(plaintext []byte, key *cryptoDomain.KeyMaterial, aad []byte) ([]byte, error)

	// Decrypt verifies and opens a blob. The same aad supplied at encrypt
	// time is required. Callers own the returned plaintext and must zero it
	// after use (cryptoDomain.Zero).
	Decrypt(blob cryptoDomain.EncryptedBlob, key *cryptoDomain.KeyMaterial, aad []byte) ([]byte, error)

	// DecryptMarshaled parses the wire format and decrypts.
	DecryptMarshaled(data []byte, key *cryptoDomain.KeyMaterial, aad []byte) ([]byte, error)
}

// KeyProvider supplies externally owned key material. The core never
// generates, stores, or transmits keys.
type KeyProvider interface {
	// CurrentKey returns the active key material. Callers must not Destroy
	// the returned key; its lifetime belongs to the provider.
	CurrentKey(ctx context.Context) (*cryptoDomain.KeyMaterial, error)

	// CurrentVersion returns the version tag of the active key.
	CurrentVersion(ctx context.Context) (int, error)
}
