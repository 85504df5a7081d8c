package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/repository"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/auth/login", authHandler.Login)

	// Any authenticated role may change its own password
	r.With(middleware.Authenticate(config.JWT, repo.User, log)).
		Post("/auth/update-password", authHandler.UpdatePassword)
}
