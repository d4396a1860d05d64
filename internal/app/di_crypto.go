package app

import (
	"context"
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/fintechx/panvault/internal/crypto/domain"
	cryptoHTTP "github.com/fintechx/panvault/internal/crypto/http"
	cryptoService "github.com/fintechx/panvault/internal/crypto/service"
)

// AEADManager returns the AEAD cipher factory.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// Engine returns the encryption engine configured with the selected AEAD
// algorithm.
func (c *Container) Engine() (cryptoService.Engine, error) {
	var err error
	c.engineInit.Do(func() {
		c.engine, err = c.initEngine()
		if err != nil {
			c.initErrors["engine"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["engine"]; exists {
		return nil, storedErr
	}
	return c.engine, nil
}

// KeyProvider returns the externally owned key material source.
func (c *Container) KeyProvider() (cryptoService.KeyProvider, error) {
	var err error
	c.keyProviderInit.Do(func() {
		c.keyProvider, err = c.initKeyProvider()
		if err != nil {
			c.initErrors["keyProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyProvider"]; exists {
		return nil, storedErr
	}
	return c.keyProvider, nil
}

// CryptoHandler creates the crypto HTTP handler.
func (c *Container) CryptoHandler() (*cryptoHTTP.CryptoHandler, error) {
	engine, err := c.Engine()
	if err != nil {
		return nil, fmt.Errorf("failed to get engine for crypto handler: %w", err)
	}
	keyProvider, err := c.KeyProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get key provider for crypto handler: %w", err)
	}
	algorithm := cryptoDomain.Algorithm(c.config.CryptoAlgorithm)
	return cryptoHTTP.NewCryptoHandler(engine, keyProvider, algorithm, c.Logger()), nil
}

// initEngine creates the encryption engine.
func (c *Container) initEngine() (cryptoService.Engine, error) {
	algorithm := cryptoDomain.Algorithm(c.config.CryptoAlgorithm)
	engine, err := cryptoService.NewEngine(algorithm, c.AEADManager(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create encryption engine: %w", err)
	}
	return engine, nil
}

// initKeyProvider creates the key provider selected by configuration.
func (c *Container) initKeyProvider() (cryptoService.KeyProvider, error) {
	switch c.config.KeyProvider {
	case "static":
		provider, err := cryptoService.NewStaticKeyProviderFromBase64(
			c.config.StaticKeyBase64,
			c.config.KeyVersion,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create static key provider: %w", err)
		}
		return provider, nil
	case "keeper":
		wrapped, err := base64.StdEncoding.DecodeString(c.config.WrappedKeyBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode wrapped key material: %w", err)
		}
		provider, err := cryptoService.NewKeeperKeyProvider(
			context.Background(),
			c.config.KeyURI,
			wrapped,
			c.config.KeyVersion,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create keeper key provider: %w", err)
		}
		return provider, nil
	case "passphrase":
		salt, err := base64.StdEncoding.DecodeString(c.config.KeySaltBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode kdf salt: %w", err)
		}
		key, err := cryptoService.DeriveKey(
			[]byte(c.config.KeyPassphrase),
			salt,
			c.config.KDFIterations,
			c.config.KeyVersion,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to derive key material: %w", err)
		}
		return cryptoService.NewStaticKeyProvider(key), nil
	default:
		return nil, fmt.Errorf("unsupported key provider: %s", c.config.KeyProvider)
	}
}
