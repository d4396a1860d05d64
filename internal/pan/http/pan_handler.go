// Package http provides HTTP handlers for PAN validation and masking.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/fintechx/panvault/internal/errors"
	"github.com/fintechx/panvault/internal/httputil"
	"github.com/fintechx/panvault/internal/pan/http/dto"
	panService "github.com/fintechx/panvault/internal/pan/service"
	customValidation "github.com/fintechx/panvault/internal/validation"
)

// PANHandler handles PAN validation and masking requests.
type PANHandler struct {
	validator panService.Validator
	masker    panService.Masker
	logger    *slog.Logger
}

// NewPANHandler creates a new PAN handler.
func NewPANHandler(
	validator panService.Validator,
	masker panService.Masker,
	logger *slog.Logger,
) *PANHandler {
	return &PANHandler{
		validator: validator,
		masker:    masker,
		logger:    logger,
	}
}

// RegisterRoutes mounts the PAN routes.
func (h *PANHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/pan/validate", h.ValidateHandler)
	group.POST("/pan/mask", h.MaskHandler)
}

// ValidateHandler validates a candidate PAN.
// POST /v1/pan/validate
// A well-formed request always gets 200: the verdict, valid or not, is the
// resource. Malformed requests get 400/422.
func (h *PANHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	pan, err := h.validator.Validate(req.PAN)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) {
			c.JSON(http.StatusOK, dto.ValidateResponse{Valid: false, Reason: err.Error()})
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPANToValidateResponse(pan))
}

// MaskHandler returns a display-safe rendering of a PAN.
// POST /v1/pan/mask
func (h *PANHandler) MaskHandler(c *gin.Context) {
	var req dto.MaskRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	pan, err := h.validator.Validate(req.PAN)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var maskedPAN string
	if req.VisiblePrefix != nil || req.VisibleSuffix != nil {
		prefix := 0
		suffix := 0
		if req.VisiblePrefix != nil {
			prefix = *req.VisiblePrefix
		}
		if req.VisibleSuffix != nil {
			suffix = *req.VisibleSuffix
		}
		result, err := h.masker.Mask(pan, prefix, suffix)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		maskedPAN = string(result)
	} else {
		result, err := h.masker.MaskDefault(pan)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		maskedPAN = string(result)
	}

	c.JSON(http.StatusOK, dto.MaskResponse{
		MaskedPAN: maskedPAN,
		Network:   string(pan.Network()),
	})
}
