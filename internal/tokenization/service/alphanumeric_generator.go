package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

const (
	// alphanumericPrefix marks base62 handles so they are recognizable in
	// logs and request payloads.
	alphanumericPrefix = "tok_"

	base62Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type alphanumericGenerator struct{}

// NewAlphanumericGenerator creates an alphanumeric token generator.
// Handles are "tok_" followed by cryptographically secure random base62
// characters.
func NewAlphanumericGenerator() TokenGenerator {
	return &alphanumericGenerator{}
}

// Generate creates a handle with the given number of random characters
// after the "tok_" prefix. Returns an error if length is less than 1.
func (g *alphanumericGenerator) Generate(length int) (string, error) {
	if length < 1 {
		return "", errors.New("length must be at least 1")
	}
	if length+len(alphanumericPrefix) > tokenizationDomain.MaxTokenLength {
		return "", fmt.Errorf("token must not exceed %d characters", tokenizationDomain.MaxTokenLength)
	}

	charsLen := big.NewInt(int64(len(base62Chars)))
	random := make([]byte, length)
	for i := range random {
		v, err := rand.Int(rand.Reader, charsLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random character: %w", err)
		}
		random[i] = base62Chars[v.Int64()]
	}

	return alphanumericPrefix + string(random), nil
}

// Validate checks the "tok_" prefix and the base62 charset.
func (g *alphanumericGenerator) Validate(token string) error {
	if !strings.HasPrefix(token, alphanumericPrefix) {
		return errors.New("alphanumeric token must start with tok_")
	}
	body := token[len(alphanumericPrefix):]
	if len(body) == 0 {
		return errors.New("alphanumeric token too short")
	}
	for _, c := range body {
		if !strings.ContainsRune(base62Chars, c) {
			return errors.New("alphanumeric token must contain only [A-Za-z0-9] after the prefix")
		}
	}
	return nil
}
