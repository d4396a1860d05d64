package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechx/panvault/internal/config"
	cryptoDomain "github.com/fintechx/panvault/internal/crypto/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	raw := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	return &config.Config{
		LogLevel:           "info",
		ServerHost:         "127.0.0.1",
		ServerPort:         8080,
		DBDriver:           "memory",
		CryptoAlgorithm:    "aes-gcm",
		KeyProvider:        "static",
		StaticKeyBase64:    base64.StdEncoding.EncodeToString(raw),
		KeyVersion:         1,
		TokenFormat:        "alphanumeric",
		MaskVisibleSuffix:  4,
		MetricsEnabled:     true,
		MetricsNamespace:   "panvault",
		MetricsPort:        8081,
		RateLimitEnabled:   false,
		TokenDeterministic: false,
	}
}

func TestNewContainer(t *testing.T) {
	cfg := testConfig(t)
	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainer_Logger(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "debug"})

	logger := container.Logger()
	require.NotNil(t, logger)
	assert.Same(t, logger, container.Logger())
}

func TestContainer_Services(t *testing.T) {
	container := NewContainer(testConfig(t))

	t.Run("validator is a singleton", func(t *testing.T) {
		validator := container.Validator()
		require.NotNil(t, validator)
		assert.Same(t, validator, container.Validator())
	})

	t.Run("engine", func(t *testing.T) {
		engine, err := container.Engine()
		require.NoError(t, err)
		require.NotNil(t, engine)
	})

	t.Run("passphrase key provider derives key material", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.KeyProvider = "passphrase"
		cfg.KeyPassphrase = "correct horse battery staple"
		cfg.KeySaltBase64 = base64.StdEncoding.EncodeToString([]byte("panvault-dev-salt"))
		cfg.KDFIterations = 600000
		derived := NewContainer(cfg)

		provider, err := derived.KeyProvider()
		require.NoError(t, err)

		key, err := provider.CurrentKey(context.Background())
		require.NoError(t, err)
		assert.Len(t, key.Bytes(), cryptoDomain.KeySize)
	})

	t.Run("key provider serves the static key", func(t *testing.T) {
		provider, err := container.KeyProvider()
		require.NoError(t, err)

		key, err := provider.CurrentKey(context.Background())
		require.NoError(t, err)
		assert.Len(t, key.Bytes(), cryptoDomain.KeySize)
	})
}

func TestContainer_MemoryDriverNeedsNoDatabase(t *testing.T) {
	container := NewContainer(testConfig(t))

	useCase, err := container.TokenizationUseCase()
	require.NoError(t, err)
	require.NotNil(t, useCase)

	token, err := useCase.Tokenize(context.Background(), "4111111111111111")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
}

func TestContainer_HTTPServer(t *testing.T) {
	container := NewContainer(testConfig(t))

	server, err := container.HTTPServer()
	require.NoError(t, err)
	require.NotNil(t, server)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	require.NotNil(t, metricsServer)

	require.NoError(t, container.Shutdown(context.Background()))
}

func TestContainer_MetricsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.MetricsEnabled = false
	container := NewContainer(cfg)

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.Nil(t, metricsServer)

	recorder, err := container.Recorder()
	require.NoError(t, err)
	assert.NotNil(t, recorder)
}

func TestContainer_InitializationErrors(t *testing.T) {
	t.Run("unsupported key provider", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.KeyProvider = "vault-agent"
		container := NewContainer(cfg)

		_, err := container.KeyProvider()
		require.Error(t, err)

		// The stored error is returned on every subsequent call.
		_, err2 := container.KeyProvider()
		assert.Equal(t, err, err2)
	})

	t.Run("invalid static key", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StaticKeyBase64 = "not base64"
		container := NewContainer(cfg)

		_, err := container.KeyProvider()
		require.Error(t, err)
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.CryptoAlgorithm = "des"
		container := NewContainer(cfg)

		_, err := container.Engine()
		require.Error(t, err)
	})

	t.Run("unsupported token format", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.TokenFormat = "hex"
		container := NewContainer(cfg)

		_, err := container.TokenizationUseCase()
		require.Error(t, err)
	})
}
