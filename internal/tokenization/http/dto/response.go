package dto

import (
	"time"

	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
	tokenizationUsecase "github.com/fintechx/panvault/internal/tokenization/usecase"
)

// TokenizeResponse carries the issued token handle and display metadata.
type TokenizeResponse struct {
	Token     string    `json:"token"`
	Network   string    `json:"network"`
	MaskedPAN string    `json:"masked_pan"`
	CreatedAt time.Time `json:"created_at"`
}

// MapTokenToTokenizeResponse builds the response from a vault record,
// dropping the ciphertext and value hash.
func MapTokenToTokenizeResponse(token *tokenizationDomain.Token) TokenizeResponse {
	return TokenizeResponse{
		Token:     token.Token,
		Network:   token.Network,
		MaskedPAN: token.MaskedPAN,
		CreatedAt: token.CreatedAt,
	}
}

// DetokenizeResponse carries the recovered PAN.
type DetokenizeResponse struct {
	PAN       string `json:"pan"`
	Network   string `json:"network"`
	MaskedPAN string `json:"masked_pan"`
}

// MapResultToDetokenizeResponse builds the response from a detokenization
// result.
func MapResultToDetokenizeResponse(result *tokenizationUsecase.DetokenizeResult) DetokenizeResponse {
	return DetokenizeResponse{
		PAN:       result.PAN,
		Network:   string(result.Network),
		MaskedPAN: string(result.MaskedPAN),
	}
}
