package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"wealthyways/internal/logger"
	"wealthyways/internal/uuid"
)

// RequestIDKey is the Gin context key holding the request id.
const RequestIDKey = "requestID"

const requestIDHeader = "X-Request-ID"

// RequestLogging returns a Gin middleware that logs each request with a
// request ID, method, path, status code, latency, and client IP using Zap.
// A valid incoming X-Request-ID is propagated instead of generating a new one.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.FromHeader(c.GetHeader(requestIDHeader))
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		logger.Get().Infow("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}
