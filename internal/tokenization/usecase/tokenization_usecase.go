package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/fintechx/panvault/internal/crypto/domain"
	cryptoService "github.com/fintechx/panvault/internal/crypto/service"
	apperrors "github.com/fintechx/panvault/internal/errors"
	panService "github.com/fintechx/panvault/internal/pan/service"
	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
	tokenizationService "github.com/fintechx/panvault/internal/tokenization/service"
)

const (
	// maxCollisionAttempts bounds handle regeneration when an insert hits
	// an existing handle.
	maxCollisionAttempts = 3

	// alphanumericHandleLength is the number of random characters after
	// the "tok_" prefix. 24 base62 characters carry ~142 bits of entropy.
	alphanumericHandleLength = 24
)

// tokenizationUseCase implements TokenizationUseCase.
type tokenizationUseCase struct {
	tokenRepo     TokenRepository
	validator     panService.Validator
	masker        panService.Masker
	engine        cryptoService.Engine
	keyProvider   cryptoService.KeyProvider
	hashService   HashService
	generator     tokenizationService.TokenGenerator
	format        tokenizationDomain.FormatType
	deterministic bool
}

// NewTokenizationUseCase creates a TokenizationUseCase with injected
// dependencies. Deterministic mode trades unlinkability for idempotence:
// the vault stores a SHA-256 hash of the PAN so equal PANs share a handle.
func NewTokenizationUseCase(
	tokenRepo TokenRepository,
	validator panService.Validator,
	masker panService.Masker,
	engine cryptoService.Engine,
	keyProvider cryptoService.KeyProvider,
	hashService HashService,
	format tokenizationDomain.FormatType,
	deterministic bool,
) (TokenizationUseCase, error) {
	generator, err := tokenizationService.NewTokenGenerator(format)
	if err != nil {
		return nil, err
	}
	return &tokenizationUseCase{
		tokenRepo:     tokenRepo,
		validator:     validator,
		masker:        masker,
		engine:        engine,
		keyProvider:   keyProvider,
		hashService:   hashService,
		generator:     generator,
		format:        format,
		deterministic: deterministic,
	}, nil
}

// Tokenize validates and encrypts the PAN, then stores a vault record
// under a fresh token handle. The handle is bound into the ciphertext as
// associated data, so a record whose columns were swapped fails to open.
func (t *tokenizationUseCase) Tokenize(
	ctx context.Context,
	rawPAN string,
) (*tokenizationDomain.Token, error) {
	pan, err := t.validator.Validate(rawPAN)
	if err != nil {
		return nil, err
	}

	masked, err := t.masker.MaskDefault(pan)
	if err != nil {
		return nil, err
	}

	key, err := t.keyProvider.CurrentKey(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to obtain key material")
	}
	keyVersion, err := t.keyProvider.CurrentVersion(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to obtain key version")
	}

	panBytes := []byte(pan.String())
	defer cryptoDomain.Zero(panBytes)

	var valueHash *string
	if t.deterministic {
		hash := t.hashService.Hash(panBytes)
		valueHash = &hash

		existing, err := t.existingDeterministicToken(ctx, hash, panBytes, key, keyVersion)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	for attempt := 0; attempt < maxCollisionAttempts; attempt++ {
		handle, err := t.generator.Generate(t.handleLength(pan.Length()))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to generate token handle")
		}

		ciphertext, err := t.engine.EncryptMarshal(panBytes, key, []byte(handle))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to encrypt pan")
		}

		token := &tokenizationDomain.Token{
			ID:         uuid.New(),
			Token:      handle,
			ValueHash:  valueHash,
			Ciphertext: ciphertext,
			KeyVersion: keyVersion,
			Network:    string(pan.Network()),
			MaskedPAN:  string(masked),
			CreatedAt:  time.Now().UTC(),
		}

		err = t.tokenRepo.Create(ctx, token)
		if err == nil {
			return token, nil
		}
		if !apperrors.Is(err, tokenizationDomain.ErrTokenCollision) {
			return nil, err
		}

		// In deterministic mode a collision can mean a concurrent insert
		// of the same PAN won the race; serve its record.
		if t.deterministic {
			existing, getErr := t.tokenRepo.GetByValueHash(ctx, *valueHash)
			if getErr == nil {
				return existing, nil
			}
			if !apperrors.Is(getErr, tokenizationDomain.ErrTokenNotFound) {
				return nil, getErr
			}
		}
	}

	return nil, tokenizationDomain.ErrTokenCollision
}

// existingDeterministicToken returns the vault record for a previously
// tokenized PAN, re-sealing it first when it was encrypted under a stale
// key version. Returns nil when the PAN has no record yet.
func (t *tokenizationUseCase) existingDeterministicToken(
	ctx context.Context,
	hash string,
	panBytes []byte,
	key *cryptoDomain.KeyMaterial,
	keyVersion int,
) (*tokenizationDomain.Token, error) {
	existing, err := t.tokenRepo.GetByValueHash(ctx, hash)
	if err != nil {
		if apperrors.Is(err, tokenizationDomain.ErrTokenNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if existing.KeyVersion == keyVersion {
		return existing, nil
	}

	// We hold the plaintext, so refresh the record under the current key
	// instead of leaving it to fail detokenization later.
	ciphertext, err := t.engine.EncryptMarshal(panBytes, key, []byte(existing.Token))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to re-encrypt pan")
	}
	if err := t.tokenRepo.UpdateCiphertext(ctx, existing.Token, ciphertext, keyVersion); err != nil {
		return nil, err
	}

	existing.Ciphertext = ciphertext
	existing.KeyVersion = keyVersion
	return existing, nil
}

// Detokenize exchanges a handle for the original PAN, refusing records
// sealed under a key version other than the current one.
func (t *tokenizationUseCase) Detokenize(
	ctx context.Context,
	token string,
) (*DetokenizeResult, error) {
	record, err := t.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	keyVersion, err := t.keyProvider.CurrentVersion(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to obtain key version")
	}
	if record.KeyVersion != keyVersion {
		return nil, tokenizationDomain.ErrReEncryptionRequired
	}

	key, err := t.keyProvider.CurrentKey(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to obtain key material")
	}

	plaintext, err := t.engine.DecryptMarshaled(record.Ciphertext, key, []byte(token))
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(plaintext)

	// The vault is not trusted blindly: what comes back must still be a
	// valid PAN.
	pan, err := t.validator.Validate(string(plaintext))
	if err != nil {
		return nil, apperrors.Wrap(err, "vault record failed pan validation")
	}

	masked, err := t.masker.MaskDefault(pan)
	if err != nil {
		return nil, err
	}

	return &DetokenizeResult{
		PAN:       pan.String(),
		Network:   pan.Network(),
		MaskedPAN: masked,
	}, nil
}

// Delete removes a vault record.
func (t *tokenizationUseCase) Delete(ctx context.Context, token string) error {
	return t.tokenRepo.DeleteByToken(ctx, token)
}

// handleLength picks the generated handle length for the active format.
func (t *tokenizationUseCase) handleLength(panLength int) int {
	switch t.format {
	case tokenizationDomain.FormatTypeNumeric, tokenizationDomain.FormatTypeLuhnPreserving:
		return panLength
	case tokenizationDomain.FormatTypeAlphanumeric:
		return alphanumericHandleLength
	default:
		return 0
	}
}
