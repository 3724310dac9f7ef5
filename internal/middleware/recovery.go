package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recovery catches panics in downstream handlers, logs the panic with a
// full stack trace, and returns a 500 JSON error response. The request ID
// is read from the X-Request-ID response header set by RequestID, which
// runs inside Recovery in the chain.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			requestID := c.Writer.Header().Get(HeaderRequestID)

			logger.WithFields(logrus.Fields{
				"component":  "http",
				"panic":      fmt.Sprintf("%v", rec),
				"stack":      string(debug.Stack()),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"request_id": requestID,
			}).Error("panic_recovered")

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":       "INTERNAL_ERROR",
					"message":    "internal error",
					"request_id": requestID,
				},
			})
		}()
		c.Next()
	}
}
