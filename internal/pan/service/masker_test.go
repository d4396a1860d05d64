package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	panDomain "github.com/fintechx/panvault/internal/pan/domain"
)

func mustPAN(t *testing.T, raw string) panDomain.PAN {
	t.Helper()
	pan, err := panDomain.ParsePAN(raw)
	require.NoError(t, err)
	return pan
}

func TestMasker_Mask(t *testing.T) {
	m := NewMasker(0, 4)

	t.Run("default last-four policy", func(t *testing.T) {
		pan := mustPAN(t, "4111111111111111")

		masked, err := m.Mask(pan, 0, 4)
		require.NoError(t, err)

		assert.Len(t, masked.String(), 16)
		assert.True(t, strings.HasSuffix(masked.String(), "1111"))
		assert.Equal(t, "************1111", masked.String())
	})

	t.Run("visible prefix and suffix", func(t *testing.T) {
		pan := mustPAN(t, "4111111111111111")

		masked, err := m.Mask(pan, 6, 4)
		require.NoError(t, err)
		assert.Equal(t, "411111******1111", masked.String())
	})

	t.Run("amex keeps source length", func(t *testing.T) {
		pan := mustPAN(t, "378282246310005")

		masked, err := m.Mask(pan, 0, 4)
		require.NoError(t, err)
		assert.Len(t, masked.String(), 15)
		assert.Equal(t, "***********0005", masked.String())
	})

	t.Run("full mask", func(t *testing.T) {
		pan := mustPAN(t, "4111111111111111")

		masked, err := m.Mask(pan, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("*", 16), masked.String())
	})

	t.Run("config covering whole pan fails closed", func(t *testing.T) {
		pan := mustPAN(t, "4111111111111111")

		_, err := m.Mask(pan, 12, 4)
		assert.ErrorIs(t, err, panDomain.ErrMaskConfigInvalid)

		_, err = m.Mask(pan, 0, 17)
		assert.ErrorIs(t, err, panDomain.ErrMaskConfigInvalid)
	})

	t.Run("negative counts rejected", func(t *testing.T) {
		pan := mustPAN(t, "4111111111111111")

		_, err := m.Mask(pan, -1, 4)
		assert.ErrorIs(t, err, panDomain.ErrMaskConfigInvalid)
	})

	t.Run("deterministic", func(t *testing.T) {
		pan := mustPAN(t, "4111111111111111")

		first, err := m.Mask(pan, 0, 4)
		require.NoError(t, err)
		second, err := m.Mask(pan, 0, 4)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestMasker_MaskDefault(t *testing.T) {
	m := NewMasker(6, 4)
	pan := mustPAN(t, "4111111111111111")

	masked, err := m.MaskDefault(pan)
	require.NoError(t, err)
	assert.Equal(t, "411111******1111", masked.String())
}
