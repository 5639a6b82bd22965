package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// MetricsRecorder receives one observation per finished request.
type MetricsRecorder interface {
	Observe(method, route string, status int, elapsed time.Duration)
}

// Metrics reports requests labelled by route template rather than raw path.
func Metrics(recorder MetricsRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		recorder.Observe(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
