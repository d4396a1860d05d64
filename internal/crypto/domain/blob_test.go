package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlob(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		blob := EncryptedBlob{
			Version:    SchemeAESGCM,
			Nonce:      []byte("abcdefghijkl"),
			Ciphertext: append([]byte("ciphertext"), make([]byte, TagSize)...),
		}

		parsed, err := ParseBlob(blob.Marshal())
		require.NoError(t, err)
		assert.Equal(t, blob, parsed)
	})

	t.Run("wire layout is bit exact", func(t *testing.T) {
		blob := EncryptedBlob{
			Version:    SchemeChaCha20,
			Nonce:      []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
			Ciphertext: make([]byte, TagSize+3),
		}

		wire := blob.Marshal()
		assert.Equal(t, byte(0x02), wire[0])
		assert.Equal(t, blob.Nonce, wire[1:13])
		assert.Equal(t, blob.Ciphertext, wire[13:])
	})

	t.Run("too short", func(t *testing.T) {
		_, err := ParseBlob(make([]byte, minBlobSize-1))
		assert.ErrorIs(t, err, ErrInvalidBlobFormat)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseBlob(nil)
		assert.ErrorIs(t, err, ErrInvalidBlobFormat)
	})

	t.Run("unknown version", func(t *testing.T) {
		data := make([]byte, minBlobSize)
		data[0] = 0x7f
		_, err := ParseBlob(data)
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("parsed slices are copies", func(t *testing.T) {
		data := make([]byte, minBlobSize)
		data[0] = byte(SchemeAESGCM)

		parsed, err := ParseBlob(data)
		require.NoError(t, err)

		data[1] = 0xff
		assert.Equal(t, byte(0), parsed.Nonce[0])
	})
}

func TestSchemeVersion(t *testing.T) {
	assert.Equal(t, AESGCM, SchemeAESGCM.Algorithm())
	assert.Equal(t, ChaCha20, SchemeChaCha20.Algorithm())
	assert.Equal(t, Algorithm(""), SchemeVersion(0x7f).Algorithm())

	assert.Equal(t, SchemeAESGCM, AESGCM.Scheme())
	assert.Equal(t, SchemeChaCha20, ChaCha20.Scheme())

	assert.NoError(t, AESGCM.Validate())
	assert.ErrorIs(t, Algorithm("des").Validate(), ErrUnsupportedAlgorithm)
}
