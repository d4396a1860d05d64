package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericGenerator(t *testing.T) {
	generator := NewNumericGenerator()

	t.Run("generates handles with the reserved prefix", func(t *testing.T) {
		token, err := generator.Generate(16)
		require.NoError(t, err)

		assert.Len(t, token, 16)
		assert.True(t, strings.HasPrefix(token, "99"))
		for _, c := range token {
			assert.GreaterOrEqual(t, c, '0')
			assert.LessOrEqual(t, c, '9')
		}
	})

	t.Run("rejects length below minimum", func(t *testing.T) {
		_, err := generator.Generate(2)
		assert.Error(t, err)
	})

	t.Run("rejects length above maximum", func(t *testing.T) {
		_, err := generator.Generate(65)
		assert.Error(t, err)
	})

	t.Run("validate accepts generated handles", func(t *testing.T) {
		token, err := generator.Generate(13)
		require.NoError(t, err)
		assert.NoError(t, generator.Validate(token))
	})

	t.Run("validate rejects wrong prefix", func(t *testing.T) {
		assert.Error(t, generator.Validate("4111111111111111"))
	})

	t.Run("validate rejects non-digits", func(t *testing.T) {
		assert.Error(t, generator.Validate("99a1111111111111"))
	})

	t.Run("validate rejects too short", func(t *testing.T) {
		assert.Error(t, generator.Validate("99"))
	})
}
