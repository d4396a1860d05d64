package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

func TestNewTokenGenerator(t *testing.T) {
	tests := []struct {
		name   string
		format tokenizationDomain.FormatType
	}{
		{name: "uuid", format: tokenizationDomain.FormatTypeUUID},
		{name: "numeric", format: tokenizationDomain.FormatTypeNumeric},
		{name: "luhn-preserving", format: tokenizationDomain.FormatTypeLuhnPreserving},
		{name: "alphanumeric", format: tokenizationDomain.FormatTypeAlphanumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator, err := NewTokenGenerator(tt.format)
			require.NoError(t, err)
			assert.NotNil(t, generator)

			token, err := generator.Generate(16)
			require.NoError(t, err)
			assert.NoError(t, generator.Validate(token))
		})
	}

	t.Run("unsupported format", func(t *testing.T) {
		_, err := NewTokenGenerator(tokenizationDomain.FormatType("morse"))
		assert.ErrorIs(t, err, tokenizationDomain.ErrUnsupportedFormat)
	})
}
