package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/pkg/logger"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/metrics"
)

// RequestLogger logs every request with its latency and records
// request metrics.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, strconv.Itoa(status)).Inc()

		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		} else if status >= 400 {
			event = logger.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Str("ip", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}
