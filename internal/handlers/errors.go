package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrgen/internal/logging"
)

// API error codes.
const (
	ErrValidation = "VALIDATION_ERROR"
	ErrEncoding   = "ENCODING_ERROR"
	ErrTooLarge   = "PAYLOAD_TOO_LARGE"
	ErrInternal   = "INTERNAL_ERROR"
)

var errorStatus = map[string]int{
	ErrValidation: http.StatusBadRequest,
	ErrEncoding:   http.StatusUnprocessableEntity,
	ErrTooLarge:   http.StatusRequestEntityTooLarge,
	ErrInternal:   http.StatusInternalServerError,
}

// writeError aborts with the JSON error body
// {"error":{"code","message","request_id"}}.
func writeError(c *gin.Context, code, message string) {
	status, ok := errorStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":       code,
			"message":    message,
			"request_id": logging.RequestID(c.Request.Context()),
		},
	})
}
