// Package repository implements token vault persistence. The vault maps
// opaque token handles to AEAD-encrypted PANs and supports deterministic
// lookups by value hash. PostgreSQL and MySQL are supported.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fintechx/panvault/internal/database"
	apperrors "github.com/fintechx/panvault/internal/errors"
	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

// PostgreSQLTokenRepository implements token vault persistence for PostgreSQL.
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

// NewPostgreSQLTokenRepository creates a new PostgreSQL token repository.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}

// Create inserts a new vault record. Returns ErrTokenCollision when the
// token handle or value hash already exists.
func (p *PostgreSQLTokenRepository) Create(ctx context.Context, token *tokenizationDomain.Token) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO tokens (id, token, value_hash, ciphertext, key_version, network, masked_pan, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
		token.Token,
		token.ValueHash,
		token.Ciphertext,
		token.KeyVersion,
		token.Network,
		token.MaskedPAN,
		token.CreatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return tokenizationDomain.ErrTokenCollision
		}
		return vaultErr(err, "failed to create token")
	}
	return nil
}

// GetByToken retrieves a vault record by its token handle.
func (p *PostgreSQLTokenRepository) GetByToken(
	ctx context.Context,
	tokenStr string,
) (*tokenizationDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token, value_hash, ciphertext, key_version, network, masked_pan, created_at
			  FROM tokens
			  WHERE token = $1`

	return scanToken(querier.QueryRowContext(ctx, query, tokenStr), "failed to get token by handle")
}

// GetByValueHash retrieves a vault record by its value hash, for
// deterministic tokenization.
func (p *PostgreSQLTokenRepository) GetByValueHash(
	ctx context.Context,
	valueHash string,
) (*tokenizationDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token, value_hash, ciphertext, key_version, network, masked_pan, created_at
			  FROM tokens
			  WHERE value_hash = $1`

	return scanToken(querier.QueryRowContext(ctx, query, valueHash), "failed to get token by value hash")
}

// DeleteByToken removes a vault record. Returns ErrTokenNotFound when no
// record matches the handle.
func (p *PostgreSQLTokenRepository) DeleteByToken(ctx context.Context, tokenStr string) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM tokens WHERE token = $1`

	result, err := querier.ExecContext(ctx, query, tokenStr)
	if err != nil {
		return vaultErr(err, "failed to delete token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return vaultErr(err, "failed to read affected rows")
	}
	if affected == 0 {
		return tokenizationDomain.ErrTokenNotFound
	}
	return nil
}

// UpdateCiphertext replaces a record's ciphertext and key version after
// re-encryption under a newer key.
func (p *PostgreSQLTokenRepository) UpdateCiphertext(
	ctx context.Context,
	tokenStr string,
	ciphertext []byte,
	keyVersion int,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE tokens SET ciphertext = $1, key_version = $2 WHERE token = $3`

	result, err := querier.ExecContext(ctx, query, ciphertext, keyVersion, tokenStr)
	if err != nil {
		return vaultErr(err, "failed to update token ciphertext")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return vaultErr(err, "failed to read affected rows")
	}
	if affected == 0 {
		return tokenizationDomain.ErrTokenNotFound
	}
	return nil
}

// scanToken scans a single vault row, mapping sql.ErrNoRows to
// ErrTokenNotFound.
func scanToken(row *sql.Row, message string) (*tokenizationDomain.Token, error) {
	var token tokenizationDomain.Token

	err := row.Scan(
		&token.ID,
		&token.Token,
		&token.ValueHash,
		&token.Ciphertext,
		&token.KeyVersion,
		&token.Network,
		&token.MaskedPAN,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tokenizationDomain.ErrTokenNotFound
		}
		return nil, vaultErr(err, message)
	}

	return &token, nil
}

// vaultErr wraps an unexpected driver error so callers can match
// ErrVaultUnavailable and treat the failure as retryable.
func vaultErr(err error, message string) error {
	return apperrors.Wrap(errors.Join(tokenizationDomain.ErrVaultUnavailable, err), message)
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique
// constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
