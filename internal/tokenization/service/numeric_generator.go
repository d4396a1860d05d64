package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

// numericPrefix marks PAN-shaped handles. The 99 issuer range is reserved
// for national standards bodies and never assigned to card networks, so a
// handle can always be told apart from a real PAN.
const numericPrefix = "99"

type numericGenerator struct{}

// NewNumericGenerator creates a numeric token generator. Handles are
// "99" followed by cryptographically secure random digits.
func NewNumericGenerator() TokenGenerator {
	return &numericGenerator{}
}

// Generate creates a numeric handle of the given total length, including
// the "99" prefix. Returns an error if length is less than 3.
func (g *numericGenerator) Generate(length int) (string, error) {
	if length < len(numericPrefix)+1 {
		return "", errors.New("length must be at least 3 for numeric tokens")
	}
	if length > tokenizationDomain.MaxTokenLength {
		return "", fmt.Errorf("length must not exceed %d", tokenizationDomain.MaxTokenLength)
	}

	random, err := randomDigits(length - len(numericPrefix))
	if err != nil {
		return "", err
	}

	return numericPrefix + random, nil
}

// Validate checks if the token is all digits and carries the "99" prefix.
func (g *numericGenerator) Validate(token string) error {
	if !strings.HasPrefix(token, numericPrefix) {
		return errors.New("numeric token must start with 99")
	}
	if len(token) < len(numericPrefix)+1 {
		return errors.New("numeric token too short")
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return errors.New("numeric token must contain only digits")
		}
	}
	return nil
}

// randomDigits returns n cryptographically secure random decimal digits.
func randomDigits(n int) (string, error) {
	ten := big.NewInt(10)
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}
