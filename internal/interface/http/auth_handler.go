package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/response"
	"github.com/devconnect/devconnect-api/pkg/validation"
)

// AuthHandler serves login and current-user lookup.
type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/auth
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorList(c, http.StatusBadRequest, validation.ToErrorList(err))
		return
	}

	token, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// Same body for unknown email and wrong password.
			response.Errors(c, http.StatusBadRequest, "Invalid Credentials")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CurrentUser GET /api/auth
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Auth.CurrentUser(uid)
	if err != nil {
		response.Msg(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, u.Public())
}
