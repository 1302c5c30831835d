package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"marketplace.backend/pkg/metrics"
)

// MetricsMiddleware records request count and latency per matched route
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
