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

// PostHandler serves the feed. Missing posts answer 404 on these routes.
type PostHandler struct {
	Posts  *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(posts *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Posts: posts, Logger: logger}
}

type postRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorList(c, http.StatusBadRequest, validation.ToErrorList(err))
		return
	}

	p, err := h.Posts.Create(c.Request.Context(), uid, req.Text)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Msg(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("post create failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

// List GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Posts.List()
	if err != nil {
		h.Logger.WithError(err).Error("post list failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Posts.Get(c.Param("id"))
	if err != nil {
		response.Msg(c, http.StatusNotFound, "Post not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Posts.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, application.ErrPostNotFound):
			response.Msg(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, application.ErrNotPostAuthor):
			response.Msg(c, http.StatusUnauthorized, "User not authorized")
		default:
			h.Logger.WithError(err).WithField("user_id", uid).Error("post delete failed")
			response.ServerError(c)
		}
		return
	}
	response.Msg(c, http.StatusOK, "Post removed")
}

// Like PUT /api/posts/like/:id
func (h *PostHandler) Like(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	likes, err := h.Posts.Like(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPostNotFound):
			response.Msg(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, application.ErrAlreadyLiked):
			response.Msg(c, http.StatusBadRequest, "Post has already been liked")
		default:
			h.Logger.WithError(err).WithField("user_id", uid).Error("post like failed")
			response.ServerError(c)
		}
		return
	}
	c.JSON(http.StatusOK, likes)
}

// Unlike PUT /api/posts/unlike/:id
func (h *PostHandler) Unlike(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	likes, err := h.Posts.Unlike(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPostNotFound):
			response.Msg(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, application.ErrNotLiked):
			response.Msg(c, http.StatusBadRequest, "Post has not been liked")
		default:
			h.Logger.WithError(err).WithField("user_id", uid).Error("post unlike failed")
			response.ServerError(c)
		}
		return
	}
	c.JSON(http.StatusOK, likes)
}

// AddComment POST /api/posts/comment/:id
func (h *PostHandler) AddComment(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorList(c, http.StatusBadRequest, validation.ToErrorList(err))
		return
	}

	comments, err := h.Posts.AddComment(c.Request.Context(), uid, c.Param("id"), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPostNotFound):
			response.Msg(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, application.ErrUserNotFound):
			response.Msg(c, http.StatusNotFound, "User not found")
		default:
			h.Logger.WithError(err).WithField("user_id", uid).Error("comment add failed")
			response.ServerError(c)
		}
		return
	}
	c.JSON(http.StatusOK, comments)
}

// RemoveComment DELETE /api/posts/comment/:id/:commentId
func (h *PostHandler) RemoveComment(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	comments, err := h.Posts.RemoveComment(c.Request.Context(), uid, c.Param("id"), c.Param("commentId"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPostNotFound):
			response.Msg(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, application.ErrCommentNotFound):
			response.Msg(c, http.StatusNotFound, "Comment not found")
		case errors.Is(err, application.ErrNotCommentAuthor):
			response.Msg(c, http.StatusUnauthorized, "User not authorized")
		default:
			h.Logger.WithError(err).WithField("user_id", uid).Error("comment remove failed")
			response.ServerError(c)
		}
		return
	}
	c.JSON(http.StatusOK, comments)
}
