package handler

import (
	"errors"
	"net/http"

	"lites-backend/internal/services"
	"lites-backend/internal/transport/httpdto"
	lites_errors "lites-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login. OPTIONS never reaches it; the
// CORS middleware short-circuits preflight for every endpoint.
type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Handle dispatches by method: POST carries the action body, anything else
// is 405 on this endpoint.
func (h *AuthHandler) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodPost:
		h.handlePost(c)
	default:
		c.JSON(http.StatusMethodNotAllowed, httpdto.NewPlainError(msgMethodNotAllowed))
	}
}

func (h *AuthHandler) handlePost(c *gin.Context) {
	var req httpdto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c)
		return
	}

	switch httpdto.AuthAction(req.Action) {
	case httpdto.AuthActionRegister:
		h.register(c, req)
	case httpdto.AuthActionLogin:
		h.login(c, req)
	default:
		writeInvalidRequest(c)
	}
}

func (h *AuthHandler) register(c *gin.Context, req httpdto.AuthRequest) {
	u, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Phone:       req.Phone,
		Nickname:    req.Nickname,
		Username:    req.Username,
		AvatarType:  req.AvatarType,
		AvatarValue: req.AvatarValue,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewUserResponse(u))
}

func (h *AuthHandler) login(c *gin.Context, req httpdto.AuthRequest) {
	u, err := h.service.Login(c.Request.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, lites_errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, httpdto.NewErrorResponse(err.Error()))
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewUserResponse(u))
}
