package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechx/panvault/internal/pan/http/dto"
	panService "github.com/fintechx/panvault/internal/pan/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewPANHandler(
		panService.NewValidator(),
		panService.NewMasker(0, 4),
		slog.New(slog.DiscardHandler),
	)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/v1"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestPANHandler_ValidateHandler(t *testing.T) {
	router := setupRouter(t)

	t.Run("valid pan", func(t *testing.T) {
		w := postJSON(t, router, "/v1/pan/validate", dto.ValidateRequest{PAN: "4111111111111111"})
		require.Equal(t, http.StatusOK, w.Code)

		var response dto.ValidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Valid)
		assert.Equal(t, "visa", response.Network)
		assert.Equal(t, 16, response.Length)
		assert.Empty(t, response.Reason)
	})

	t.Run("checksum failure is a verdict not an error", func(t *testing.T) {
		w := postJSON(t, router, "/v1/pan/validate", dto.ValidateRequest{PAN: "4111111111111112"})
		require.Equal(t, http.StatusOK, w.Code)

		var response dto.ValidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Valid)
		assert.NotEmpty(t, response.Reason)
		assert.Empty(t, response.Network)
	})

	t.Run("response never echoes the pan", func(t *testing.T) {
		w := postJSON(t, router, "/v1/pan/validate", dto.ValidateRequest{PAN: "4111111111111111"})
		assert.NotContains(t, w.Body.String(), "4111111111111111")
	})

	t.Run("blank pan", func(t *testing.T) {
		w := postJSON(t, router, "/v1/pan/validate", dto.ValidateRequest{PAN: "   "})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/pan/validate", bytes.NewReader([]byte("{")))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPANHandler_MaskHandler(t *testing.T) {
	router := setupRouter(t)

	t.Run("default policy", func(t *testing.T) {
		w := postJSON(t, router, "/v1/pan/mask", dto.MaskRequest{PAN: "4111111111111111"})
		require.Equal(t, http.StatusOK, w.Code)

		var response dto.MaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "************1111", response.MaskedPAN)
		assert.Equal(t, "visa", response.Network)
	})

	t.Run("custom visibility", func(t *testing.T) {
		prefix, suffix := 6, 4
		w := postJSON(t, router, "/v1/pan/mask", dto.MaskRequest{
			PAN:           "4111111111111111",
			VisiblePrefix: &prefix,
			VisibleSuffix: &suffix,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var response dto.MaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "411111******1111", response.MaskedPAN)
	})

	t.Run("policy covering whole pan fails closed", func(t *testing.T) {
		prefix, suffix := 12, 4
		w := postJSON(t, router, "/v1/pan/mask", dto.MaskRequest{
			PAN:           "4111111111111111",
			VisiblePrefix: &prefix,
			VisibleSuffix: &suffix,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("invalid pan", func(t *testing.T) {
		w := postJSON(t, router, "/v1/pan/mask", dto.MaskRequest{PAN: "41a1"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
