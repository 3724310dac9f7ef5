// Package middleware holds the gin middleware chain shared by every route.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrgen/internal/logging"
)

// HeaderRequestID carries the request ID on responses.
const HeaderRequestID = "X-Request-ID"

// RequestID generates a unique request ID, injects it into the request
// context, and sets the X-Request-ID response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := logging.GenerateRequestID()
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
