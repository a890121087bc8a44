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

// UserHandler serves registration and avatar upload.
type UserHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewUserHandler(auth *application.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Auth: auth, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorList(c, http.StatusBadRequest, validation.ToErrorList(err))
		return
	}

	token, err := h.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Errors(c, http.StatusBadRequest, "User already exists")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// UploadAvatar POST /api/users/avatar (multipart field "avatar")
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Errors(c, http.StatusBadRequest, "Avatar file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.Logger.WithError(err).Error("avatar open failed")
		response.ServerError(c)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Auth.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Msg(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("avatar upload failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar": url})
}
