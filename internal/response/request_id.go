package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key holding the request ID that
// buildMetadata echoes back in every envelope.
const ContextKeyRequestID = "request_id"

// RequestIDMiddleware tags each request with an ID so a dashboard API call
// can be correlated between the access log and the response metadata. A
// client-supplied X-Request-ID is kept; otherwise a fresh UUID is issued.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
