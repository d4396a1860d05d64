// Package http provides HTTP handlers for the encryption engine.
package http

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/fintechx/panvault/internal/crypto/domain"
	"github.com/fintechx/panvault/internal/crypto/http/dto"
	cryptoService "github.com/fintechx/panvault/internal/crypto/service"
	"github.com/fintechx/panvault/internal/httputil"
	customValidation "github.com/fintechx/panvault/internal/validation"
)

// CryptoHandler handles encrypt and decrypt requests against the engine
// and the active key.
type CryptoHandler struct {
	engine      cryptoService.Engine
	keyProvider cryptoService.KeyProvider
	algorithm   cryptoDomain.Algorithm
	logger      *slog.Logger
}

// NewCryptoHandler creates a new crypto handler.
func NewCryptoHandler(
	engine cryptoService.Engine,
	keyProvider cryptoService.KeyProvider,
	algorithm cryptoDomain.Algorithm,
	logger *slog.Logger,
) *CryptoHandler {
	return &CryptoHandler{
		engine:      engine,
		keyProvider: keyProvider,
		algorithm:   algorithm,
		logger:      logger,
	}
}

// RegisterRoutes mounts the crypto routes.
func (h *CryptoHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/crypto/encrypt", h.EncryptHandler)
	group.POST("/crypto/decrypt", h.DecryptHandler)
}

// EncryptHandler seals a plaintext under the active key.
// POST /v1/crypto/encrypt
func (h *CryptoHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	plaintext, aad, err := decodePayload(req.Plaintext, req.AAD)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	defer cryptoDomain.Zero(plaintext)

	key, err := h.keyProvider.CurrentKey(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	keyVersion, err := h.keyProvider.CurrentVersion(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	blob, err := h.engine.EncryptMarshal(plaintext, key, aad)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncryptResponse{
		Blob:       base64.StdEncoding.EncodeToString(blob),
		Algorithm:  string(h.algorithm),
		KeyVersion: keyVersion,
	})
}

// DecryptHandler opens a marshaled blob under the active key.
// POST /v1/crypto/decrypt
func (h *CryptoHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	blob, aad, err := decodePayload(req.Blob, req.AAD)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	key, err := h.keyProvider.CurrentKey(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	plaintext, err := h.engine.DecryptMarshaled(blob, key, aad)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer cryptoDomain.Zero(plaintext)

	c.JSON(http.StatusOK, dto.DecryptResponse{
		Plaintext: base64.StdEncoding.EncodeToString(plaintext),
	})
}

// decodePayload decodes the base64 payload and optional AAD.
func decodePayload(payloadB64, aadB64 string) (payload, aad []byte, err error) {
	payload, err = base64.StdEncoding.DecodeString(payloadB64)
	if err != nil {
		return nil, nil, err
	}
	if aadB64 != "" {
		aad, err = base64.StdEncoding.DecodeString(aadB64)
		if err != nil {
			return nil, nil, err
		}
	}
	return payload, aad, nil
}
