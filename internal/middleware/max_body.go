package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBody caps the request body at limit bytes. Reads past the limit
// fail, which form binding reports as an error.
func MaxBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
