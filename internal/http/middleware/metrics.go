package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"idn-area/internal/metrics"
)

// Metrics records request count and latency per route template. Unmatched
// requests share a single label so arbitrary paths cannot grow the series.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Observe(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
