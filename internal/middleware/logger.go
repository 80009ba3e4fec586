package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"ristorante/internal/pkg/logger"
)

// RequestLogger logs every request with latency and status, and sends
// server errors to the error logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if status >= 500 {
			logger.Error.Printf("%s %s status=%d latency=%s client=%s errors=%s",
				c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP(), c.Errors.String())
			return
		}

		logger.Info.Printf("%s %s status=%d latency=%s client=%s",
			c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP())
	}
}
