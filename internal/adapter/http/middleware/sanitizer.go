package middleware

import (
	"errors"
	"net/http"

	"builderhub-payments/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// MaxBodySize caps the request body. Reads past the limit fail with
// *http.MaxBytesError, which BindError turns into a 413.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// BindError maps a body binding failure to the client-facing error.
func BindError(err error) *apperror.AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.ErrPayloadTooLarge()
	}
	return apperror.Validation(err.Error())
}
