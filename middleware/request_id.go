package middleware

import (
	"bookflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDMiddleware assigns every request an id, echoes it in the
// response and attaches a request-scoped logger to the gin context.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-ID", id)
		c.Set("requestID", id)
		c.Set("logger", utils.GetLogger().With(zap.String("requestId", id)))
		c.Next()
	}
}
