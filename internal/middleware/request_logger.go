package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cristianadrielbraun/qrgen/internal/logging"
)

// RequestLogger logs every HTTP request once it has been served. The log
// level follows the status class: 5xx is error, 4xx is warn.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logging.FromContext(c.Request.Context(), logger).WithFields(logrus.Fields{
			"component":     "http",
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"route":         c.FullPath(),
			"remote_addr":   c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
			"status":        c.Writer.Status(),
			"bytes_written": c.Writer.Size(),
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("http_request")
		case status >= 400:
			entry.Warn("http_request")
		default:
			entry.Info("http_request")
		}
	}
}
