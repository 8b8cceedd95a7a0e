package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/cleanearth/internal/observability"
)

// RequestMetrics records per-request counters and latency.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start).Seconds())
	}
}
