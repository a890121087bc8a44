package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/internal/container"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// ProfileModule wires the profile aggregate routes.
// Public: GET /api/profile, GET /api/profile/user/:userId,
// GET /api/profile/github/:username, GET /api/profile/search
// Protected: GET /api/profile/me, POST /api/profile, DELETE /api/profile,
// PUT/DELETE /api/profile/experience[/:expId], PUT/DELETE /api/profile/education[/:eduId]

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	githubLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath())

	rg.GET("/profile", m.Handler.List)
	rg.GET("/profile/user/:userId", m.Handler.GetByUserID)
	rg.GET("/profile/github/:username", githubLimiter, m.Handler.GithubRepos)
	rg.GET("/profile/search", m.Handler.Search)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/profile/me", m.Handler.GetOwn)
		auth.POST("/profile", m.Handler.Upsert)
		auth.DELETE("/profile", m.Handler.DeleteAccount)
		auth.PUT("/profile/experience", m.Handler.AddExperience)
		auth.DELETE("/profile/experience/:expId", m.Handler.RemoveExperience)
		auth.PUT("/profile/education", m.Handler.AddEducation)
		auth.DELETE("/profile/education/:eduId", m.Handler.RemoveEducation)
	}
}
