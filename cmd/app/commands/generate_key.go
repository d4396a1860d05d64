package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	cryptoDomain "github.com/fintechx/panvault/internal/crypto/domain"
)

// RunGenerateKey writes fresh base64-encoded 256-bit key material, suitable
// for the STATIC_KEY_BASE64 environment variable or for wrapping through a
// secrets keeper.
func RunGenerateKey(w io.Writer) error {
	raw := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate key material: %w", err)
	}
	defer cryptoDomain.Zero(raw)

	if _, err := fmt.Fprintln(w, base64.StdEncoding.EncodeToString(raw)); err != nil {
		return fmt.Errorf("failed to write key material: %w", err)
	}
	return nil
}
