// Package handler provides the HTTP handlers for the three endpoint
// families. Each handler dispatches on the request method and a typed
// action, matched exhaustively; the default branch is the 400 path.
package handler

import (
	"net/http"
	"strconv"

	"lites-backend/internal/services"
	"lites-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "Invalid request"
	msgMethodNotAllowed = "Method not allowed"
)

func writeInvalidRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, httpdto.NewPlainError(msgInvalidRequest))
}

// writeError maps a service error to a status code. Unexpected storage
// failures surface as a generic 500; the cause is kept on the context for
// the logging middleware.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := services.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, httpdto.NewPlainError(httpdto.InternalErrorMessage))
		return
	}
	c.JSON(status, httpdto.NewPlainError(err.Error()))
}

// idQuery parses a required numeric query parameter; ok is false when the
// parameter is absent or malformed.
func idQuery(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
