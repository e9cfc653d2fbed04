package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"hotelhub/internal/logger"
)

// RequestLogger logs every request with latency and the authenticated
// user, if any. It also assigns a request id when the client sent none.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = logger.NewRequestID()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		// Push the id into the request context so services logging via
		// logger.WithContext(ctx) carry it too.
		c.Request = c.Request.WithContext(
			logger.ContextWithRequestID(c.Request.Context(), requestID))

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
			"request_id", requestID,
		}
		if userID := c.GetInt64("user_id"); userID != 0 {
			fields = append(fields, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		log := logger.Get()
		if c.Writer.Status() >= 500 {
			log.Error("request", fields...)
		} else {
			log.Info("request", fields...)
		}
	}
}
