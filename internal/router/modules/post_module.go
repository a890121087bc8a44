package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/internal/container"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// PostModule wires the feed routes; everything requires a bearer token.

type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/posts", m.Handler.Create)
		auth.GET("/posts", m.Handler.List)
		auth.GET("/posts/:id", m.Handler.Get)
		auth.DELETE("/posts/:id", m.Handler.Delete)
		auth.PUT("/posts/like/:id", m.Handler.Like)
		auth.PUT("/posts/unlike/:id", m.Handler.Unlike)
		auth.POST("/posts/comment/:id", m.Handler.AddComment)
		auth.DELETE("/posts/comment/:id/:commentId", m.Handler.RemoveComment)
	}
}
