package service

import (
	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

// NewTokenGenerator creates a token generator for the given format type.
func NewTokenGenerator(formatType tokenizationDomain.FormatType) (TokenGenerator, error) {
	switch formatType {
	case tokenizationDomain.FormatTypeUUID:
		return NewUUIDGenerator(), nil
	case tokenizationDomain.FormatTypeNumeric:
		return NewNumericGenerator(), nil
	case tokenizationDomain.FormatTypeLuhnPreserving:
		return NewLuhnGenerator(), nil
	case tokenizationDomain.FormatTypeAlphanumeric:
		return NewAlphanumericGenerator(), nil
	default:
		return nil, tokenizationDomain.ErrUnsupportedFormat
	}
}
