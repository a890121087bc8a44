package router

import (
	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/internal/container"
	"github.com/devconnect/devconnect-api/internal/infrastructure/github"
	pginfra "github.com/devconnect/devconnect-api/internal/infrastructure/postgres"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/router/modules"
)

// InitModules builds the repositories, services, and handlers from the
// container singletons and registers every feature module.
// Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	profileRepo := pginfra.NewProfileRepository(container.GetPGPool())
	postRepo := pginfra.NewPostRepository(container.GetPGPool())

	ghClient := github.NewClient(cfg.GithubAPIBaseURL, cfg.GithubToken,
		container.GetRedis(), cfg.GithubCacheTTL, logger)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(),
		publisherOrNil(), container.GetGCS(), cfg.GCSBucket, logger)
	profileSvc := application.NewProfileService(profileRepo, userRepo, ghClient,
		container.GetES(), cfg.ESProfilesIndex, logger)
	postSvc := application.NewPostService(postRepo, userRepo, logger)

	userHandler := handlers.NewUserHandler(authSvc, logger)
	authHandler := handlers.NewAuthHandler(authSvc, logger)
	profileHandler := handlers.NewProfileHandler(profileSvc, logger)
	postHandler := handlers.NewPostHandler(postSvc, logger)

	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewProfileModule(profileHandler, container.GetJWT()))
	r.Add(modules.NewPostModule(postHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

// publisherOrNil avoids handing a typed-nil *RabbitPublisher to the service
// when messaging is not configured.
func publisherOrNil() application.Publisher {
	if p := container.GetRabbitPub(); p != nil {
		return p
	}
	return nil
}
