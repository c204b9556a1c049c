package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"librarygateway/internal/correlation"
	"librarygateway/internal/metrics"
)

func TestRequestLogger_AssignsCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	var seenID string
	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/books", func(c *gin.Context) {
		seenID = correlation.FromContext(c.Request.Context())
		c.JSON(http.StatusOK, []string{})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seenID, "handler must see the request's correlation id")

	// Both the receipt and completion lines carry the same id.
	entries := logs.All()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, seenID, e.ContextMap()["request_id"])
	}
	assert.Equal(t, int64(http.StatusOK), entries[1].ContextMap()["status"])

	// Logging-only: the id is not part of the response payload.
	assert.NotContains(t, w.Body.String(), seenID)
}

func TestRequestLogger_FreshIDPerRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var ids []string
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		ids = append(ids, correlation.FromContext(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	}

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/books/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/7", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "library_gateway_http_requests_total")
	// The route template, not the raw path, is the path label.
	assert.Contains(t, body, `path="/books/:id"`)
}
