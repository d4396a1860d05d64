package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	cryptoDomain "github.com/fintechx/panvault/internal/crypto/domain"
)

// AESGCMCipher implements AEAD using AES-256-GCM.
//
// The cipher instance is stateless and safe for concurrent use from multiple
// goroutines. Nonces are supplied by the engine so tests can substitute a
// deterministic entropy source; GCM's security requires that a nonce is never
// reused with the same key.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates an AES-256-GCM cipher. The key must be exactly 32 bytes.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Seal encrypts plaintext under the nonce, appending the 16-byte GCM tag.
// The aad is authenticated but not encrypted.
func (a *AESGCMCipher) Seal(nonce, plaintext, aad []byte) []byte {
	return a.aead.Seal(nil, nonce, plaintext, aad)
}

// Open verifies the tag and decrypts. On any mismatch (tampered data, wrong
// key, different aad) no plaintext is returned.
func (a *AESGCMCipher) Open(nonce, ciphertext, aad []byte) ([]byte, error) {
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, cryptoDomain.ErrTamperedOrWrongKey
	}
	return plaintext, nil
}
