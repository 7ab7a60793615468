package config

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medspa-backend/utils"
)

const slowRequest = 200 * time.Millisecond

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("request_id", c.GetString(utils.RequestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			zap.L().Error("request", fields...)
		case latency > slowRequest:
			zap.L().Warn("slow request", fields...)
		default:
			zap.L().Info("request", fields...)
		}
	}
}
