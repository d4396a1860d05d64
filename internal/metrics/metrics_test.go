package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() { assert.NoError(t, provider.Shutdown(context.Background())) }()

	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())
}

func TestRecorder(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() { assert.NoError(t, provider.Shutdown(context.Background())) }()

	recorder, err := NewRecorder(provider.MeterProvider(), "panvault")
	require.NoError(t, err)

	recorder.Observe(context.Background(), "tokenization", "tokenize", 10*time.Millisecond, nil)
	recorder.Observe(context.Background(), "tokenization", "detokenize", 5*time.Millisecond, assert.AnError)

	// Both samples must show up in the exposition output with a status label.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "panvault_operations_total")
	assert.Contains(t, body, `status="success"`)
	assert.Contains(t, body, `status="error"`)
}

func TestNoOpRecorder(t *testing.T) {
	recorder := NewNoOpRecorder()
	assert.NotPanics(t, func() {
		recorder.Observe(context.Background(), "pan", "validate", time.Millisecond, nil)
	})
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() { assert.NoError(t, provider.Shutdown(context.Background())) }()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "panvault"))
	router.GET("/v1/tokens/:token", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tokens/tok_abc", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	scrape := httptest.NewRecorder()
	provider.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := scrape.Body.String()
	assert.Contains(t, body, "panvault_http_requests_total")
	// The route pattern, not the raw path, must be the label value.
	assert.Contains(t, body, "/v1/tokens/:token")
	assert.False(t, strings.Contains(body, "tok_abc"))
}
