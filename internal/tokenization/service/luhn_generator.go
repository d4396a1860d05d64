package service

import (
	"errors"
	"fmt"
	"strings"

	panDomain "github.com/fintechx/panvault/internal/pan/domain"
	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

type luhnGenerator struct{}

// NewLuhnGenerator creates a Luhn-preserving token generator. Handles
// carry the "99" prefix and end in a valid mod-10 check digit, so systems
// that checksum anything PAN-shaped accept them without seeing a PAN.
func NewLuhnGenerator() TokenGenerator {
	return &luhnGenerator{}
}

// Generate creates a Luhn-valid handle of the given total length,
// including the "99" prefix and the trailing check digit. Returns an
// error if length is less than 4.
func (g *luhnGenerator) Generate(length int) (string, error) {
	if length < len(numericPrefix)+2 {
		return "", errors.New("length must be at least 4 for luhn-preserving tokens")
	}
	if length > tokenizationDomain.MaxTokenLength {
		return "", fmt.Errorf("length must not exceed %d", tokenizationDomain.MaxTokenLength)
	}

	random, err := randomDigits(length - len(numericPrefix) - 1)
	if err != nil {
		return "", err
	}

	payload := numericPrefix + random
	check := panDomain.LuhnCheckDigit(payload)

	return payload + string(byte('0'+check)), nil
}

// Validate checks prefix, charset, and the mod-10 check digit.
func (g *luhnGenerator) Validate(token string) error {
	if !strings.HasPrefix(token, numericPrefix) {
		return errors.New("luhn-preserving token must start with 99")
	}
	if len(token) < len(numericPrefix)+2 {
		return errors.New("luhn-preserving token too short")
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return errors.New("luhn-preserving token must contain only digits")
		}
	}

	payload := token[:len(token)-1]
	want := byte('0' + panDomain.LuhnCheckDigit(payload))
	if token[len(token)-1] != want {
		return errors.New("luhn-preserving token failed checksum")
	}
	return nil
}
