package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nurturebloom/utils"
)

// RequestLogger writes one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", clientIP(c)),
		}
		if c.FullPath() == "" {
			fields[1] = zap.String("path", c.Request.URL.Path)
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			utils.GetLogger().Error("Request failed", fields...)
		case status >= 400:
			utils.GetLogger().Warn("Request rejected", fields...)
		default:
			utils.GetLogger().Info("Request handled", fields...)
		}
	}
}
