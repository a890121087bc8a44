package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/infrastructure/github"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/response"
	"github.com/devconnect/devconnect-api/pkg/validation"
)

// ProfileHandler serves everything under /api/profile. Missing resources
// on these routes answer 400, matching the preserved wire contract.
type ProfileHandler struct {
	Profiles *application.ProfileService
	Logger   *logrus.Logger
}

func NewProfileHandler(profiles *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Logger: logger}
}

type upsertProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" binding:"required"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" binding:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type experienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// GetOwn GET /api/profile/me
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Profiles.GetOwn(uid)
	if err != nil {
		response.Msg(c, http.StatusBadRequest, "There is no profile for this user")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Upsert POST /api/profile
func (h *ProfileHandler) Upsert(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req upsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorList(c, http.StatusBadRequest, validation.ToErrorList(err))
		return
	}

	p, err := h.Profiles.Upsert(c.Request.Context(), uid, application.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("profile upsert failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

// List GET /api/profile
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.Profiles.List()
	if err != nil {
		h.Logger.WithError(err).Error("profile list failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetByUserID GET /api/profile/user/:userId
func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	p, err := h.Profiles.GetByUserID(c.Param("userId"))
	if err != nil {
		response.Msg(c, http.StatusBadRequest, "Profile not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteAccount DELETE /api/profile
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Profiles.DeleteAccount(c.Request.Context(), uid); err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("account delete failed")
		response.ServerError(c)
		return
	}
	response.Msg(c, http.StatusOK, "User removed")
}

// AddExperience PUT /api/profile/experience
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorList(c, http.StatusBadRequest, validation.ToErrorList(err))
		return
	}

	p, err := h.Profiles.AddExperience(c.Request.Context(), uid, entity.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		h.profileMutationError(c, uid, err, "add experience failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveExperience DELETE /api/profile/experience/:expId
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Profiles.RemoveExperience(c.Request.Context(), uid, c.Param("expId"))
	if err != nil {
		h.profileMutationError(c, uid, err, "remove experience failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddEducation PUT /api/profile/education
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorList(c, http.StatusBadRequest, validation.ToErrorList(err))
		return
	}

	p, err := h.Profiles.AddEducation(c.Request.Context(), uid, entity.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		h.profileMutationError(c, uid, err, "add education failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveEducation DELETE /api/profile/education/:eduId
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Profiles.RemoveEducation(c.Request.Context(), uid, c.Param("eduId"))
	if err != nil {
		h.profileMutationError(c, uid, err, "remove education failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// GithubRepos GET /api/profile/github/:username
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	repos, err := h.Profiles.GithubRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, github.ErrUserNotFound) {
			response.Msg(c, http.StatusNotFound, "No Github profile found")
			return
		}
		h.Logger.WithError(err).WithField("username", c.Param("username")).Error("github lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"msg": "Github is unavailable"})
		return
	}
	c.JSON(http.StatusOK, repos)
}

// Search GET /api/profile/search?q=
func (h *ProfileHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Errors(c, http.StatusBadRequest, "Query is required")
		return
	}
	results, err := h.Profiles.Search(c.Request.Context(), q, 10)
	if err != nil {
		h.Logger.WithError(err).Error("profile search failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *ProfileHandler) profileMutationError(c *gin.Context, uid string, err error, logMsg string) {
	if errors.Is(err, application.ErrProfileNotFound) {
		response.Msg(c, http.StatusBadRequest, "Profile not found")
		return
	}
	h.Logger.WithError(err).WithField("user_id", uid).Error(logMsg)
	response.ServerError(c)
}
