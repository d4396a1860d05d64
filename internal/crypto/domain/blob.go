package domain

// EncryptedBlob is the parsed form of the bit-exact wire format
//
//	[version:1][nonce:12][ciphertext:N][tag:16]
//
// Ciphertext holds ciphertext and tag as produced by the AEAD (tag appended).
// Associated data is never embedded; it must be supplied identically at
// decrypt time. A blob is immutable once produced: any single bit flip makes
// decryption fail.
type EncryptedBlob struct {
	Version    SchemeVersion
	Nonce      []byte
	Ciphertext []byte
}

// minBlobSize is the smallest well-formed blob: version byte, nonce, and the
// tag of an empty plaintext.
const minBlobSize = 1 + NonceSize + TagSize

// ParseBlob decodes the wire format. Returns ErrInvalidBlobFormat when the
// input is too short and ErrUnsupportedVersion for an unrecognized scheme
// byte; no best-effort decoding is attempted.
func ParseBlob(data []byte) (EncryptedBlob, error) {
	if len(data) < minBlobSize {
		return EncryptedBlob{}, ErrInvalidBlobFormat
	}

	version := SchemeVersion(data[0])
	if version.Algorithm() == "" {
		return EncryptedBlob{}, ErrUnsupportedVersion
	}

	nonce := make([]byte, NonceSize)
	copy(nonce, data[1:1+NonceSize])

	ciphertext := make([]byte, len(data)-1-NonceSize)
	copy(ciphertext, data[1+NonceSize:])

	return EncryptedBlob{
		Version:    version,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}, nil
}

// Marshal serializes the blob to the wire format.
func (b EncryptedBlob) Marshal() []byte {
	out := make([]byte, 0, 1+len(b.Nonce)+len(b.Ciphertext))
	out = append(out, byte(b.Version))
	out = append(out, b.Nonce...)
	out = append(out, b.Ciphertext...)
	return out
}
