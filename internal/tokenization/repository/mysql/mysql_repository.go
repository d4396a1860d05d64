// Package mysql implements token vault persistence for MySQL databases.
package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/fintechx/panvault/internal/database"
	apperrors "github.com/fintechx/panvault/internal/errors"
	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

// TokenRepository implements token vault persistence for MySQL.
type TokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a new MySQL token repository.
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create inserts a new vault record. Returns ErrTokenCollision when the
// token handle or value hash already exists.
func (m *TokenRepository) Create(ctx context.Context, token *tokenizationDomain.Token) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO tokens (id, token, value_hash, ciphertext, key_version, network, masked_pan, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID.String(),
		token.Token,
		token.ValueHash,
		token.Ciphertext,
		token.KeyVersion,
		token.Network,
		token.MaskedPAN,
		token.CreatedAt,
	)
	if err != nil {
		// MySQL error number 1062 is a duplicate entry.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return tokenizationDomain.ErrTokenCollision
		}
		return vaultErr(err, "failed to create token")
	}
	return nil
}

// GetByToken retrieves a vault record by its token handle.
func (m *TokenRepository) GetByToken(
	ctx context.Context,
	tokenStr string,
) (*tokenizationDomain.Token, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, token, value_hash, ciphertext, key_version, network, masked_pan, created_at
			  FROM tokens
			  WHERE token = ?`

	return scanToken(querier.QueryRowContext(ctx, query, tokenStr), "failed to get token by handle")
}

// GetByValueHash retrieves a vault record by its value hash, for
// deterministic tokenization.
func (m *TokenRepository) GetByValueHash(
	ctx context.Context,
	valueHash string,
) (*tokenizationDomain.Token, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, token, value_hash, ciphertext, key_version, network, masked_pan, created_at
			  FROM tokens
			  WHERE value_hash = ?`

	return scanToken(querier.QueryRowContext(ctx, query, valueHash), "failed to get token by value hash")
}

// DeleteByToken removes a vault record. Returns ErrTokenNotFound when no
// record matches the handle.
func (m *TokenRepository) DeleteByToken(ctx context.Context, tokenStr string) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM tokens WHERE token = ?`

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
func (m *TokenRepository) UpdateCiphertext(
	ctx context.Context,
	tokenStr string,
	ciphertext []byte,
	keyVersion int,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE tokens SET ciphertext = ?, key_version = ? WHERE token = ?`

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

func scanToken(row *sql.Row, message string) (*tokenizationDomain.Token, error) {
	var token tokenizationDomain.Token
	var id string

	err := row.Scan(
		&id,
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

	if token.ID.UnmarshalText([]byte(id)) != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "failed to parse token record id")
	}

	return &token, nil
}

func vaultErr(err error, message string) error {
	return apperrors.Wrap(errors.Join(tokenizationDomain.ErrVaultUnavailable, err), message)
}
