package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/wardfs/wardfs/internal/shared/id"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

// RequestID assigns each request an identifier. A caller-supplied
// X-Request-ID is honored; otherwise a fresh ULID is generated. The ID is
// echoed in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = id.NewRequestID().String()
		}
		c.Set(RequestIDKey, rid)
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}
