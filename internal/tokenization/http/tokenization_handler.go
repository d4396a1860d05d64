// Package http provides HTTP handlers for token exchange operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintechx/panvault/internal/httputil"
	"github.com/fintechx/panvault/internal/tokenization/http/dto"
	tokenizationUsecase "github.com/fintechx/panvault/internal/tokenization/usecase"
	customValidation "github.com/fintechx/panvault/internal/validation"
)

// TokenizationHandler handles tokenize, detokenize, and delete requests.
type TokenizationHandler struct {
	useCase tokenizationUsecase.TokenizationUseCase
	logger  *slog.Logger
}

// NewTokenizationHandler creates a new tokenization handler.
func NewTokenizationHandler(
	useCase tokenizationUsecase.TokenizationUseCase,
	logger *slog.Logger,
) *TokenizationHandler {
	return &TokenizationHandler{useCase: useCase, logger: logger}
}

// RegisterRoutes mounts the token routes.
func (h *TokenizationHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/tokens", h.TokenizeHandler)
	group.POST("/tokens/detokenize", h.DetokenizeHandler)
	group.DELETE("/tokens/:token", h.DeleteHandler)
}

// TokenizeHandler exchanges a PAN for a token handle.
// POST /v1/tokens
// Returns 201 Created with the handle and display metadata.
func (h *TokenizationHandler) TokenizeHandler(c *gin.Context) {
	var req dto.TokenizeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.useCase.Tokenize(c.Request.Context(), req.PAN)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTokenToTokenizeResponse(token))
}

// DetokenizeHandler exchanges a token handle back for its PAN.
// POST /v1/tokens/detokenize
// The PAN travels in a POST body, never in a URL, so it cannot land in
// access logs.
func (h *TokenizationHandler) DetokenizeHandler(c *gin.Context) {
	var req dto.DetokenizeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.useCase.Detokenize(c.Request.Context(), req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapResultToDetokenizeResponse(result))
}

// DeleteHandler removes a vault record.
// DELETE /v1/tokens/:token
// Returns 204 No Content on success.
func (h *TokenizationHandler) DeleteHandler(c *gin.Context) {
	token := c.Param("token")

	if err := h.useCase.Delete(c.Request.Context(), token); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
