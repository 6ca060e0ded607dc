package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cvanaliz-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
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
		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if analysisID := c.GetString("analysisId"); analysisID != "" {
			fields["analysis_id"] = analysisID
		}
		if mode := c.GetString("analysisMode"); mode != "" {
			fields["analysis_mode"] = mode
		}

		logFn := telemetry.Info
		switch {
		case status >= 500:
			logFn = telemetry.Error
		case status >= 400:
			logFn = telemetry.Warn
		}
		logFn("request.complete", fields)
	}
}
