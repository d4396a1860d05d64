package service

import (
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/fintechx/panvault/internal/crypto/domain"
)

// ChaCha20Poly1305Cipher implements AEAD using ChaCha20-Poly1305, which
// outperforms AES-GCM on platforms without AES hardware acceleration and is
// constant-time in software.
type ChaCha20Poly1305Cipher struct {
	aead cipher.AEAD
}

// NewChaCha20Poly1305 creates a ChaCha20-Poly1305 cipher. The key must be
// exactly 32 bytes.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305Cipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	return &ChaCha20Poly1305Cipher{aead: aead}, nil
}

// Seal encrypts plaintext under the nonce, appending the Poly1305 tag.
func (c *ChaCha20Poly1305Cipher) Seal(nonce, plaintext, aad []byte) []byte {
	return c.aead.Seal(nil, nonce, plaintext, aad)
}

// Open verifies the Poly1305 tag and decrypts; no plaintext is returned on
// verification failure.
func (c *ChaCha20Poly1305Cipher) Open(nonce, ciphertext, aad []byte) ([]byte, error) {
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, cryptoDomain.ErrTamperedOrWrongKey
	}
	return plaintext, nil
}
