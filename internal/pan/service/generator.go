package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fintechx/panvault/internal/errors"
	panDomain "github.com/fintechx/panvault/internal/pan/domain"
)

// batchWorkers caps the fan-out used by GenerateBatch.
const batchWorkers = 8

// Generator produces Luhn-valid PANs for test environments from an issuer
// prefix and a target length.
type Generator interface {
	// Generate returns a valid PAN starting with prefix. The digits between
	// the prefix and the check digit are drawn from crypto/rand.
	Generate(prefix string, length int) (panDomain.PAN, error)

	// GenerateBatch returns count valid PANs sharing the same prefix and length.
	GenerateBatch(prefix string, length, count int) ([]panDomain.PAN, error)
}

type generator struct{}

// NewGenerator creates a test-PAN generator.
func NewGenerator() Generator {
	return &generator{}
}

// Generate fills the positions after the prefix with random digits and
// appends the Luhn check digit.
func (g *generator) Generate(prefix string, length int) (panDomain.PAN, error) {
	if length < panDomain.MinPANLength || length > panDomain.MaxPANLength {
		return panDomain.PAN{}, panDomain.ErrInvalidLength
	}
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return panDomain.PAN{}, panDomain.ErrInvalidCharacters
		}
	}
	if len(prefix) >= length {
		return panDomain.PAN{}, errors.Wrap(errors.ErrInvalidInput, "prefix must be shorter than the pan length")
	}

	var b strings.Builder
	b.Grow(length)
	b.WriteString(prefix)
	for i := len(prefix); i < length-1; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return panDomain.PAN{}, fmt.Errorf("failed to generate random digit: %w", err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	payload := b.String()
	full := payload + string(byte('0'+panDomain.LuhnCheckDigit(payload)))

	return panDomain.ParsePAN(full)
}

// GenerateBatch fans generation out across a bounded worker group. Results
// keep their slot order; duplicates are possible for very short random spans
// and are the caller's concern.
func (g *generator) GenerateBatch(prefix string, length, count int) ([]panDomain.PAN, error) {
	if count < 1 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "count must be at least 1")
	}

	pans := make([]panDomain.PAN, count)
	var eg errgroup.Group
	eg.SetLimit(batchWorkers)

	for i := 0; i < count; i++ {
		eg.Go(func() error {
			pan, err := g.Generate(prefix, length)
			if err != nil {
				return err
			}
			pans[i] = pan
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return pans, nil
}
