package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"checkin-backend/metrics"
)

// Metrics counts completed requests by method and status code.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
