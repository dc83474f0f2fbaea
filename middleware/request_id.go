package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDMiddleware tags every request with a correlation id and
// stores a request-scoped logger in the context for handlers to pick
// up. An inbound X-Request-ID is honored so upstream callers can trace
// a payment attempt end to end.
func RequestIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Set("logger", logger.With(zap.String("requestId", requestID)))
		c.Next()
	}
}
