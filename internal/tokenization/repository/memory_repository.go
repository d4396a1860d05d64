package repository

import (
	"context"
	"sync"

	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

// InMemoryTokenRepository implements the token vault in process memory.
// Intended for tests and for running the service without a database;
// records do not survive a restart.
type InMemoryTokenRepository struct {
	mu      sync.RWMutex
	byToken map[string]*tokenizationDomain.Token
	byHash  map[string]*tokenizationDomain.Token
}

// NewInMemoryTokenRepository creates an empty in-memory token repository.
func NewInMemoryTokenRepository() *InMemoryTokenRepository {
	return &InMemoryTokenRepository{
		byToken: make(map[string]*tokenizationDomain.Token),
		byHash:  make(map[string]*tokenizationDomain.Token),
	}
}

// Create stores a new vault record. Returns ErrTokenCollision when the
// token handle or value hash already exists.
func (r *InMemoryTokenRepository) Create(_ context.Context, token *tokenizationDomain.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byToken[token.Token]; ok {
		return tokenizationDomain.ErrTokenCollision
	}
	if token.ValueHash != nil {
		if _, ok := r.byHash[*token.ValueHash]; ok {
			return tokenizationDomain.ErrTokenCollision
		}
	}

	stored := cloneToken(token)
	r.byToken[token.Token] = stored
	if token.ValueHash != nil {
		r.byHash[*token.ValueHash] = stored
	}
	return nil
}

// GetByToken retrieves a vault record by its token handle.
func (r *InMemoryTokenRepository) GetByToken(
	_ context.Context,
	tokenStr string,
) (*tokenizationDomain.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.byToken[tokenStr]
	if !ok {
		return nil, tokenizationDomain.ErrTokenNotFound
	}
	return cloneToken(token), nil
}

// GetByValueHash retrieves a vault record by its value hash.
func (r *InMemoryTokenRepository) GetByValueHash(
	_ context.Context,
	valueHash string,
) (*tokenizationDomain.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.byHash[valueHash]
	if !ok {
		return nil, tokenizationDomain.ErrTokenNotFound
	}
	return cloneToken(token), nil
}

// DeleteByToken removes a vault record.
func (r *InMemoryTokenRepository) DeleteByToken(_ context.Context, tokenStr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.byToken[tokenStr]
	if !ok {
		return tokenizationDomain.ErrTokenNotFound
	}

	delete(r.byToken, tokenStr)
	if token.ValueHash != nil {
		delete(r.byHash, *token.ValueHash)
	}
	return nil
}

// UpdateCiphertext replaces a record's ciphertext and key version.
func (r *InMemoryTokenRepository) UpdateCiphertext(
	_ context.Context,
	tokenStr string,
	ciphertext []byte,
	keyVersion int,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.byToken[tokenStr]
	if !ok {
		return tokenizationDomain.ErrTokenNotFound
	}

	token.Ciphertext = append([]byte(nil), ciphertext...)
	token.KeyVersion = keyVersion
	return nil
}

// cloneToken copies a record so callers cannot mutate stored state.
func cloneToken(token *tokenizationDomain.Token) *tokenizationDomain.Token {
	clone := *token
	clone.Ciphertext = append([]byte(nil), token.Ciphertext...)
	if token.ValueHash != nil {
		hash := *token.ValueHash
		clone.ValueHash = &hash
	}
	return &clone
}
