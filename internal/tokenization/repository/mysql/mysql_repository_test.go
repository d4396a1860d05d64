package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

func newTestToken() *tokenizationDomain.Token {
	return &tokenizationDomain.Token{
		ID:         uuid.New(),
		Token:      "tok_h1J9x2Qw",
		Ciphertext: []byte{0x01, 0x02, 0x03},
		KeyVersion: 1,
		Network:    "mastercard",
		MaskedPAN:  "************5559",
		CreatedAt:  time.Now().UTC(),
	}
}

func TestTokenRepository_Create(t *testing.T) {
	t.Run("inserts record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		token := newTestToken()
		mock.ExpectExec("INSERT INTO tokens").
			WithArgs(
				token.ID.String(),
				token.Token,
				token.ValueHash,
				token.Ciphertext,
				token.KeyVersion,
				token.Network,
				token.MaskedPAN,
				token.CreatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewTokenRepository(db)
		assert.NoError(t, repo.Create(context.Background(), token))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps duplicate entry to collision", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO tokens").
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		repo := NewTokenRepository(db)
		err = repo.Create(context.Background(), newTestToken())
		assert.ErrorIs(t, err, tokenizationDomain.ErrTokenCollision)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps driver failure to vault unavailable", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO tokens").WillReturnError(errors.New("connection refused"))

		repo := NewTokenRepository(db)
		err = repo.Create(context.Background(), newTestToken())
		assert.ErrorIs(t, err, tokenizationDomain.ErrVaultUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTokenRepository_GetByToken(t *testing.T) {
	t.Run("returns record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		want := newTestToken()
		rows := sqlmock.NewRows(
			[]string{"id", "token", "value_hash", "ciphertext", "key_version", "network", "masked_pan", "created_at"},
		).AddRow(
			want.ID.String(),
			want.Token,
			nil,
			want.Ciphertext,
			want.KeyVersion,
			want.Network,
			want.MaskedPAN,
			want.CreatedAt,
		)
		mock.ExpectQuery("SELECT (.+) FROM tokens").WithArgs(want.Token).WillReturnRows(rows)

		repo := NewTokenRepository(db)
		got, err := repo.GetByToken(context.Background(), want.Token)
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Token, got.Token)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM tokens").
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "token", "value_hash", "ciphertext", "key_version", "network", "masked_pan", "created_at"},
			))

		repo := NewTokenRepository(db)
		_, err = repo.GetByToken(context.Background(), "nope")
		assert.ErrorIs(t, err, tokenizationDomain.ErrTokenNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTokenRepository_DeleteByToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tokens").
		WithArgs("tok_missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTokenRepository(db)
	err = repo.DeleteByToken(context.Background(), "tok_missing")
	assert.ErrorIs(t, err, tokenizationDomain.ErrTokenNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_UpdateCiphertext(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE tokens").
		WithArgs([]byte{0xAA}, 3, "tok_abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTokenRepository(db)
	assert.NoError(t, repo.UpdateCiphertext(context.Background(), "tok_abc", []byte{0xAA}, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
