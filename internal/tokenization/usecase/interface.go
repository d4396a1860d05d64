// Package usecase implements tokenization business logic. It coordinates
// PAN validation, authenticated encryption, token handle generation, and
// vault persistence, with an optional deterministic mode.
package usecase

import (
	"context"

	panDomain "github.com/fintechx/panvault/internal/pan/domain"
	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

// TokenRepository defines the interface for token vault persistence.
type TokenRepository interface {
	Create(ctx context.Context, token *tokenizationDomain.Token) error
	GetByToken(ctx context.Context, token string) (*tokenizationDomain.Token, error)
	GetByValueHash(ctx context.Context, valueHash string) (*tokenizationDomain.Token, error)
	DeleteByToken(ctx context.Context, token string) error
	UpdateCiphertext(ctx context.Context, token string, ciphertext []byte, keyVersion int) error
}

// DetokenizeResult carries the recovered PAN and its derived metadata.
type DetokenizeResult struct {
	PAN       string
	Network   panDomain.CardNetwork
	MaskedPAN panDomain.MaskedPAN
}

// TokenizationUseCase defines token exchange operations. Raw PAN digits
// exist in memory only for the duration of a call and are never logged
// or persisted in the clear.
type TokenizationUseCase interface {
	// Tokenize validates the PAN, encrypts it, and stores a vault record
	// under a fresh token handle. In deterministic mode a PAN that was
	// tokenized before yields its existing handle.
	Tokenize(ctx context.Context, rawPAN string) (*tokenizationDomain.Token, error)

	// Detokenize exchanges a token handle for the original PAN. The
	// recovered PAN is re-validated before it is returned.
	Detokenize(ctx context.Context, token string) (*DetokenizeResult, error)

	// Delete removes a vault record, permanently severing the token from
	// its PAN.
	Delete(ctx context.Context, token string) error
}
