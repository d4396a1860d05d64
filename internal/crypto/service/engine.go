package service

import (
	"crypto/rand"
	"fmt"
	"io"

	cryptoDomain "github.com/fintechx/panvault/internal/crypto/domain"
)

// engine implements Engine over the versioned blob wire format.
//
// The engine is stateless and reentrant; its only side effect is consuming
// entropy from the injected source. Every Encrypt call draws a fresh 96-bit
// nonce, which is stored in the blob and never derived from predictable
// state.
type engine struct {
	alg         cryptoDomain.Algorithm
	scheme      cryptoDomain.SchemeVersion
	aeadManager AEADManager
	entropy     io.Reader
}

// NewEngine creates an encryption engine for the given algorithm. Passing a
// nil entropy source selects crypto/rand; tests may substitute a
// deterministic reader to reproduce fixed vectors.
func NewEngine(
	alg cryptoDomain.Algorithm,
	aeadManager AEADManager,
	entropy io.Reader,
) (Engine, error) {
	if err := alg.Validate(); err != nil {
		return nil, err
	}
	if entropy == nil {
		entropy = rand.Reader
	}
	return &engine{
		alg:         alg,
		scheme:      alg.Scheme(),
		aeadManager: aeadManager,
		entropy:     entropy,
	}, nil
}

// Encrypt seals plaintext under the key with a fresh nonce. The associated
// data is bound into the authentication tag but not embedded in the blob.
func (e *engine) Encrypt(
	plaintext []byte,
	key *cryptoDomain.KeyMaterial,
	aad []byte,
) (cryptoDomain.EncryptedBlob, error) {
	aead, err := e.aeadManager.CreateCipher(key.Bytes(), e.alg)
	if err != nil {
		return cryptoDomain.EncryptedBlob{}, err
	}

	nonce := make([]byte, cryptoDomain.NonceSize)
	if _, err := io.ReadFull(e.entropy, nonce); err != nil {
		return cryptoDomain.EncryptedBlob{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return cryptoDomain.EncryptedBlob{
		Version:    e.scheme,
		Nonce:      nonce,
		Ciphertext: aead.Seal(nonce, plaintext, aad),
	}, nil
}

// EncryptMarshal is Encrypt followed by wire serialization.
func (e *engine) EncryptMarshal(
	plaintext []byte,
	key *cryptoDomain.KeyMaterial,
	aad []byte,
) ([]byte, error) {
	blob, err := e.Encrypt(plaintext, key, aad)
	if err != nil {
		return nil, err
	}
	return blob.Marshal(), nil
}

// Decrypt verifies the blob's tag before releasing any plaintext. Blobs
// sealed under a different scheme version than this engine's are rejected
// with ErrUnsupportedVersion rather than decoded best-effort.
func (e *engine) Decrypt(
	blob cryptoDomain.EncryptedBlob,
	key *cryptoDomain.KeyMaterial,
	aad []byte,
) ([]byte, error) {
	alg := blob.Version.Algorithm()
	if alg == "" {
		return nil, cryptoDomain.ErrUnsupportedVersion
	}

	aead, err := e.aeadManager.CreateCipher(key.Bytes(), alg)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(blob.Nonce, blob.Ciphertext, aad)
	if err != nil {
		return nil, cryptoDomain.ErrTamperedOrWrongKey
	}
	return plaintext, nil
}

// DecryptMarshaled parses the wire format and decrypts.
func (e *engine) DecryptMarshaled(
	data []byte,
	key *cryptoDomain.KeyMaterial,
	aad []byte,
) ([]byte, error) {
	blob, err := cryptoDomain.ParseBlob(data)
	if err != nil {
		return nil, err
	}
	return e.Decrypt(blob, key, aad)
}
