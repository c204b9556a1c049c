// Package middleware provides the HTTP surface glue: per-request
// correlation ids, structured request/response logging, and Prometheus
// metrics.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"librarygateway/internal/correlation"
	"librarygateway/internal/metrics"
)

// RequestLogger assigns every inbound request a fresh correlation id and
// logs receipt and completion with it. The id rides the request context, so
// handler log lines and the outbound remote call carry the same id; it is
// never written into a response payload.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := correlation.New()
		c.Request = c.Request.WithContext(correlation.WithContext(c.Request.Context(), id))

		start := time.Now()
		logger.Info("request received",
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
		)

		c.Next()

		logger.Info("request completed",
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// Metrics records in-flight, count, and duration metrics per request, using
// the route template as the path label so path parameters don't explode
// cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.IncInFlight()
		defer metrics.DecInFlight()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metrics.RecordRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
