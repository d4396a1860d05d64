package dto

// EncryptResponse carries the marshaled encrypted blob. The blob embeds
// the scheme version byte, nonce, ciphertext, and authentication tag.
type EncryptResponse struct {
	Blob       string `json:"blob"` // base64
	Algorithm  string `json:"algorithm"`
	KeyVersion int    `json:"key_version"`
}

// DecryptResponse carries the recovered plaintext.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"` // base64
}
