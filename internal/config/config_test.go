package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "127.0.0.1", cfg.ServerHost)
		assert.Equal(t, 8080, cfg.ServerPort)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
		assert.Equal(t, "static", cfg.KeyProvider)
		assert.Equal(t, 1, cfg.KeyVersion)
		assert.Equal(t, "alphanumeric", cfg.TokenFormat)
		assert.False(t, cfg.TokenDeterministic)
		assert.Equal(t, 0, cfg.MaskVisiblePrefix)
		assert.Equal(t, 4, cfg.MaskVisibleSuffix)
		assert.Equal(t, "panvault", cfg.MetricsNamespace)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("DB_DRIVER", "mysql")
		t.Setenv("TOKEN_FORMAT", "luhn-preserving")
		t.Setenv("TOKEN_DETERMINISTIC", "true")
		t.Setenv("MASK_VISIBLE_PREFIX", "6")

		cfg := Load()

		assert.Equal(t, 9090, cfg.ServerPort)
		assert.Equal(t, "mysql", cfg.DBDriver)
		assert.Equal(t, "luhn-preserving", cfg.TokenFormat)
		assert.True(t, cfg.TokenDeterministic)
		assert.Equal(t, 6, cfg.MaskVisiblePrefix)
	})
}

func TestGetGinMode(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	assert.Equal(t, "debug", cfg.GetGinMode())

	cfg.LogLevel = "info"
	assert.Equal(t, "release", cfg.GetGinMode())
}
