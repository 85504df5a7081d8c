package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, repo.User, log))

		r.With(middleware.Require(entity.OpBrowseStores, log)).Get("/user/stores", userHandler.BrowseStores)
		r.With(middleware.Require(entity.OpRateStore, log)).Post("/user/stores/{storeId}/rating", userHandler.SubmitRating)
		r.With(middleware.Require(entity.OpRateStore, log)).Put("/user/stores/{storeId}/rating", userHandler.UpdateRating)
	})
}
