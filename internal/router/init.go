package router

import (
	app "github.com/oksasatya/community-blog-api/internal/application"
	"github.com/oksasatya/community-blog-api/internal/container"
	pginfra "github.com/oksasatya/community-blog-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/community-blog-api/internal/interface/http"
	"github.com/oksasatya/community-blog-api/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module.
// Called once during application startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	tokens := container.GetTokens()

	userRepo := pginfra.NewUserRepository(pool)
	sessionRepo := pginfra.NewSessionRepository(pool)
	postRepo := pginfra.NewPostRepository(pool)
	commentRepo := pginfra.NewCommentRepository(pool)

	authSvc := app.NewAuthService(userRepo, sessionRepo, tokens, logger)
	postSvc := app.NewPostService(postRepo, logger)
	commentSvc := app.NewCommentService(commentRepo, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), tokens))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), tokens))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc, logger), tokens))
}
