package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records per-request metrics.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Metrics reports every request to obs labelled by its route template, so
// /transactions/1 and /transactions/2 share a series.
func Metrics(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
