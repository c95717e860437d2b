package middleware

import (
	"net/http"

	"lites-backend/internal/transport/httpdto"
	"lites-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs errors accumulated on the context and, when a handler
// bailed out without writing a response, emits the error envelope.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.ErrorfCtx(c.Request.Context(), "request error: %s", err.Error())
		}
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, httpdto.NewPlainError(httpdto.InternalErrorMessage))
		}
	}
}
