package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	generator := NewUUIDGenerator()

	t.Run("generates parseable v4 handles", func(t *testing.T) {
		token, err := generator.Generate(0)
		require.NoError(t, err)

		id, err := uuid.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())
	})

	t.Run("generates distinct handles", func(t *testing.T) {
		first, err := generator.Generate(0)
		require.NoError(t, err)
		second, err := generator.Generate(0)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("validate accepts generated handles", func(t *testing.T) {
		token, err := generator.Generate(0)
		require.NoError(t, err)
		assert.NoError(t, generator.Validate(token))
	})

	t.Run("validate rejects garbage", func(t *testing.T) {
		assert.Error(t, generator.Validate("not-a-uuid"))
		assert.Error(t, generator.Validate(""))
	})
}
