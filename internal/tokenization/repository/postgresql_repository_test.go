package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

func newTestToken() *tokenizationDomain.Token {
	return &tokenizationDomain.Token{
		ID:         uuid.New(),
		Token:      "9941234567890128",
		Ciphertext: []byte{0x01, 0x02, 0x03},
		KeyVersion: 1,
		Network:    "visa",
		MaskedPAN:  "************1111",
		CreatedAt:  time.Now().UTC(),
	}
}

func tokenColumns() []string {
	return []string{"id", "token", "value_hash", "ciphertext", "key_version", "network", "masked_pan", "created_at"}
}

func TestPostgreSQLTokenRepository_Create(t *testing.T) {
	t.Run("inserts record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		token := newTestToken()
		mock.ExpectExec("INSERT INTO tokens").
			WithArgs(
				token.ID,
				token.Token,
				token.ValueHash,
				token.Ciphertext,
				token.KeyVersion,
				token.Network,
				token.MaskedPAN,
				token.CreatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLTokenRepository(db)
		assert.NoError(t, repo.Create(context.Background(), token))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violation to collision", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO tokens").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "tokens_token_key"`))

		repo := NewPostgreSQLTokenRepository(db)
		err = repo.Create(context.Background(), newTestToken())
		assert.ErrorIs(t, err, tokenizationDomain.ErrTokenCollision)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps driver failure to vault unavailable", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO tokens").WillReturnError(errors.New("connection refused"))

		repo := NewPostgreSQLTokenRepository(db)
		err = repo.Create(context.Background(), newTestToken())
		assert.ErrorIs(t, err, tokenizationDomain.ErrVaultUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLTokenRepository_GetByToken(t *testing.T) {
	t.Run("returns record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		want := newTestToken()
		rows := sqlmock.NewRows(tokenColumns()).AddRow(
			want.ID,
			want.Token,
			nil,
			want.Ciphertext,
			want.KeyVersion,
			want.Network,
			want.MaskedPAN,
			want.CreatedAt,
		)
		mock.ExpectQuery("SELECT (.+) FROM tokens").WithArgs(want.Token).WillReturnRows(rows)

		repo := NewPostgreSQLTokenRepository(db)
		got, err := repo.GetByToken(context.Background(), want.Token)
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Token, got.Token)
		assert.Equal(t, want.Ciphertext, got.Ciphertext)
		assert.Equal(t, want.KeyVersion, got.KeyVersion)
		assert.Nil(t, got.ValueHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM tokens").
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(tokenColumns()))

		repo := NewPostgreSQLTokenRepository(db)
		_, err = repo.GetByToken(context.Background(), "nope")
		assert.ErrorIs(t, err, tokenizationDomain.ErrTokenNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLTokenRepository_GetByValueHash(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	want := newTestToken()
	hash := "2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae"
	want.ValueHash = &hash

	rows := sqlmock.NewRows(tokenColumns()).AddRow(
		want.ID,
		want.Token,
		want.ValueHash,
		want.Ciphertext,
		want.KeyVersion,
		want.Network,
		want.MaskedPAN,
		want.CreatedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM tokens").WithArgs(hash).WillReturnRows(rows)

	repo := NewPostgreSQLTokenRepository(db)
	got, err := repo.GetByValueHash(context.Background(), hash)
	require.NoError(t, err)
	require.NotNil(t, got.ValueHash)
	assert.Equal(t, hash, *got.ValueHash)
	assert.True(t, got.IsDeterministic())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLTokenRepository_DeleteByToken(t *testing.T) {
	t.Run("deletes record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM tokens").
			WithArgs("tok_abc").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLTokenRepository(db)
		assert.NoError(t, repo.DeleteByToken(context.Background(), "tok_abc"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps zero rows to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM tokens").
			WithArgs("tok_missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLTokenRepository(db)
		err = repo.DeleteByToken(context.Background(), "tok_missing")
		assert.ErrorIs(t, err, tokenizationDomain.ErrTokenNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLTokenRepository_UpdateCiphertext(t *testing.T) {
	t.Run("updates record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE tokens").
			WithArgs([]byte{0xAA}, 2, "tok_abc").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLTokenRepository(db)
		assert.NoError(t, repo.UpdateCiphertext(context.Background(), "tok_abc", []byte{0xAA}, 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps zero rows to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE tokens").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLTokenRepository(db)
		err = repo.UpdateCiphertext(context.Background(), "tok_missing", []byte{0xAA}, 2)
		assert.ErrorIs(t, err, tokenizationDomain.ErrTokenNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
