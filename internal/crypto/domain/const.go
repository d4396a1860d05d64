// Package domain defines core encryption domain models: key material, the
// versioned encrypted blob wire format, and the supported AEAD algorithms.
package domain

// Algorithm represents the authenticated-encryption algorithm used for a blob.
//
// Both supported algorithms provide AEAD with 256-bit keys, 96-bit nonces and
// 128-bit authentication tags; they differ only in performance profile
// (AES-GCM is fastest with AES-NI hardware, ChaCha20-Poly1305 in software).
type Algorithm string

const (
	// AESGCM is AES-256 in Galois/Counter Mode.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 is ChaCha20-Poly1305.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// SchemeVersion is the one-byte scheme/version tag carried at the front of
// every encrypted blob, allowing future key-size or cipher changes to coexist
// with legacy blobs.
type SchemeVersion byte

const (
	// SchemeAESGCM tags blobs sealed with AES-256-GCM.
	SchemeAESGCM SchemeVersion = 0x01

	// SchemeChaCha20 tags blobs sealed with ChaCha20-Poly1305.
	SchemeChaCha20 SchemeVersion = 0x02
)

// Wire sizes shared by both schemes.
const (
	// KeySize is the required key length in bytes (256 bits).
	KeySize = 32

	// NonceSize is the nonce length in bytes (96 bits).
	NonceSize = 12

	// TagSize is the authentication tag length in bytes (128 bits).
	TagSize = 16
)

// Algorithm returns the algorithm a scheme version selects, or "" for an
// unrecognized version.
func (v SchemeVersion) Algorithm() Algorithm {
	switch v {
	case SchemeAESGCM:
		return AESGCM
	case SchemeChaCha20:
		return ChaCha20
	default:
		return ""
	}
}

// Scheme returns the blob scheme version for an algorithm, or 0 for an
// unsupported algorithm.
func (a Algorithm) Scheme() SchemeVersion {
	switch a {
	case AESGCM:
		return SchemeAESGCM
	case ChaCha20:
		return SchemeChaCha20
	default:
		return 0
	}
}

// Validate checks that the algorithm is one of the supported AEAD schemes.
func (a Algorithm) Validate() error {
	if a.Scheme() == 0 {
		return ErrUnsupportedAlgorithm
	}
	return nil
}

// String returns the string representation of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}
