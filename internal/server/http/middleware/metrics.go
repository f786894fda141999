package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/kicktracker/internal/metrics"
)

// Metrics records request counters, latency and in-flight gauge.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.HTTPRequestsInFlight.Inc()
		start := time.Now()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		route := routeOf(c)
		metrics.HTTPRequestDurationSeconds.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
