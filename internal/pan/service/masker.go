package service

import (
	"strings"

	panDomain "github.com/fintechx/panvault/internal/pan/domain"
)

// MaskFiller is the fixed non-digit filler used for redacted positions, so a
// masked rendering can never be confused with a real PAN.
const MaskFiller = '*'

// Masker produces display-safe redacted renderings of PANs.
type Masker interface {
	// Mask redacts the PAN, leaving visiblePrefix leading digits and
	// visibleSuffix trailing digits in the clear. Returns
	// ErrMaskConfigInvalid when the counts are negative or together cover
	// the whole PAN or more.
	Mask(pan panDomain.PAN, visiblePrefix, visibleSuffix int) (panDomain.MaskedPAN, error)

	// MaskDefault applies the configured default policy (commonly 0 visible
	// prefix digits and 4 visible suffix digits).
	MaskDefault(pan panDomain.PAN) (panDomain.MaskedPAN, error)
}

type masker struct {
	defaultPrefix int
	defaultSuffix int
}

// NewMasker creates a masker with the given default visibility policy.
func NewMasker(defaultPrefix, defaultSuffix int) Masker {
	return &masker{defaultPrefix: defaultPrefix, defaultSuffix: defaultSuffix}
}

// Mask builds a same-length rendering with filler characters in every
// non-visible position. Deterministic, no side effects.
func (m *masker) Mask(
	pan panDomain.PAN,
	visiblePrefix, visibleSuffix int,
) (panDomain.MaskedPAN, error) {
	if visiblePrefix < 0 || visibleSuffix < 0 {
		return "", panDomain.ErrMaskConfigInvalid
	}
	length := pan.Length()
	if visiblePrefix+visibleSuffix >= length {
		// Failing closed: a config that would reveal every digit is an
		// error, never a passthrough.
		return "", panDomain.ErrMaskConfigInvalid
	}

	digits := pan.String()
	var b strings.Builder
	b.Grow(length)
	b.WriteString(digits[:visiblePrefix])
	for i := 0; i < length-visiblePrefix-visibleSuffix; i++ {
		b.WriteByte(MaskFiller)
	}
	b.WriteString(digits[length-visibleSuffix:])

	return panDomain.MaskedPAN(b.String()), nil
}

// MaskDefault applies the masker's configured default policy.
func (m *masker) MaskDefault(pan panDomain.PAN) (panDomain.MaskedPAN, error) {
	return m.Mask(pan, m.defaultPrefix, m.defaultSuffix)
}
