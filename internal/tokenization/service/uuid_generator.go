package service

import (
	"errors"

	"github.com/google/uuid"
)

type uuidGenerator struct{}

// NewUUIDGenerator creates a UUID token generator. Handles are random
// UUIDv4 values so they carry no ordering information.
func NewUUIDGenerator() TokenGenerator {
	return &uuidGenerator{}
}

// Generate creates a new UUIDv4 handle. The length parameter is ignored.
func (g *uuidGenerator) Generate(_ int) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Validate checks if the token is a valid UUID.
func (g *uuidGenerator) Validate(token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return errors.New("invalid UUID format")
	}
	return nil
}
