package usecase

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashService provides hashing for deterministic token lookups. The hash
// lets equal PANs map to the same vault record without storing the PAN.
type HashService interface {
	Hash(value []byte) string
}

type sha256HashService struct{}

// NewSHA256HashService creates a new SHA-256 hash service.
func NewSHA256HashService() HashService {
	return &sha256HashService{}
}

// Hash computes the SHA-256 digest of the value as a hex string.
func (s *sha256HashService) Hash(value []byte) string {
	digest := sha256.Sum256(value)
	return hex.EncodeToString(digest[:])
}
