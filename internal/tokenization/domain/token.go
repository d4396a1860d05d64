package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token represents a vault record mapping an opaque token handle to an
// AEAD-encrypted PAN. The PAN never appears in the record in the clear;
// Ciphertext holds the full versioned blob (scheme byte, nonce, ciphertext,
// tag) so decryption survives algorithm changes.
type Token struct {
	// ID is the unique identifier for this vault record.
	ID uuid.UUID
	// Token is the opaque handle handed back to callers.
	Token string
	// ValueHash is the SHA-256 digest of the source PAN, set only for
	// deterministic tokenization where the same PAN must yield the same
	// token. Nil for random-handle tokens.
	ValueHash *string
	// Ciphertext contains the marshaled encrypted blob for the PAN.
	Ciphertext []byte
	// KeyVersion records which key version sealed the ciphertext.
	KeyVersion int
	// Network is the card network detected at tokenization time.
	Network string
	// MaskedPAN is a display-safe rendering kept as record metadata.
	MaskedPAN string
	// CreatedAt is the UTC timestamp when this record was created.
	CreatedAt time.Time
}

// IsDeterministic reports whether this record was created in deterministic
// mode and is findable by value hash.
func (t *Token) IsDeterministic() bool {
	return t.ValueHash != nil
}
