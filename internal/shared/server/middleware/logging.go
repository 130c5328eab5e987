package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"runwear/internal/shared/metrics"
	"runwear/internal/shared/telemetry"
)

// Logging emits a structured log and records request metrics per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()

		metrics.ObserveHTTPRequest(route, c.Request.Method, status, latency)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       route,
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if bucket, ok := c.Get("bucket"); ok {
			fields["bucket"] = bucket
		}
		if cond, ok := c.Get("condition"); ok {
			fields["condition"] = cond
		}
		telemetry.Info("request.complete", fields)
	}
}
