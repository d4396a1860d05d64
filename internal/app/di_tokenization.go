package app

import (
	"fmt"

	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
	tokenizationHTTP "github.com/fintechx/panvault/internal/tokenization/http"
	tokenizationRepository "github.com/fintechx/panvault/internal/tokenization/repository"
	tokenizationMySQL "github.com/fintechx/panvault/internal/tokenization/repository/mysql"
	tokenizationUsecase "github.com/fintechx/panvault/internal/tokenization/usecase"
)

// TokenRepository returns the vault record repository based on the database
// driver.
func (c *Container) TokenRepository() (tokenizationUsecase.TokenRepository, error) {
	var err error
	c.tokenRepoInit.Do(func() {
		c.tokenRepo, err = c.initTokenRepository()
		if err != nil {
			c.initErrors["tokenRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenRepo"]; exists {
		return nil, storedErr
	}
	return c.tokenRepo, nil
}

// TokenizationUseCase returns the tokenization use case wrapped with metrics
// recording.
func (c *Container) TokenizationUseCase() (tokenizationUsecase.TokenizationUseCase, error) {
	var err error
	c.tokenizationUseCaseInit.Do(func() {
		c.tokenizationUseCase, err = c.initTokenizationUseCase()
		if err != nil {
			c.initErrors["tokenizationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenizationUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenizationUseCase, nil
}

// TokenizationHandler creates the tokenization HTTP handler.
func (c *Container) TokenizationHandler() (*tokenizationHTTP.TokenizationHandler, error) {
	useCase, err := c.TokenizationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get tokenization use case for handler: %w", err)
	}
	return tokenizationHTTP.NewTokenizationHandler(useCase, c.Logger()), nil
}

// initTokenRepository creates the vault record repository. The "memory"
// driver keeps records in process memory and is intended for development and
// tests.
func (c *Container) initTokenRepository() (tokenizationUsecase.TokenRepository, error) {
	if c.config.DBDriver == "memory" {
		return tokenizationRepository.NewInMemoryTokenRepository(), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for token repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return tokenizationRepository.NewPostgreSQLTokenRepository(db), nil
	case "mysql":
		return tokenizationMySQL.NewTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenizationUseCase creates the tokenization use case with all its
// dependencies.
func (c *Container) initTokenizationUseCase() (tokenizationUsecase.TokenizationUseCase, error) {
	tokenRepo, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for tokenization use case: %w", err)
	}
	engine, err := c.Engine()
	if err != nil {
		return nil, fmt.Errorf("failed to get engine for tokenization use case: %w", err)
	}
	keyProvider, err := c.KeyProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get key provider for tokenization use case: %w", err)
	}
	recorder, err := c.Recorder()
	if err != nil {
		return nil, fmt.Errorf("failed to get recorder for tokenization use case: %w", err)
	}

	format := tokenizationDomain.FormatType(c.config.TokenFormat)
	useCase, err := tokenizationUsecase.NewTokenizationUseCase(
		tokenRepo,
		c.Validator(),
		c.Masker(),
		engine,
		keyProvider,
		tokenizationUsecase.NewSHA256HashService(),
		format,
		c.config.TokenDeterministic,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenization use case: %w", err)
	}

	return tokenizationUsecase.NewTokenizationMetricsDecorator(useCase, recorder), nil
}
