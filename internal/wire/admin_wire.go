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

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, repo.User, log))

		r.With(middleware.Require(entity.OpCreateUser, log)).Post("/admin/users", adminHandler.CreateUser)
		r.With(middleware.Require(entity.OpListUsers, log)).Get("/admin/users", adminHandler.ListUsers)
		r.With(middleware.Require(entity.OpViewDashboard, log)).Get("/admin/dashboard", adminHandler.Dashboard)
		r.With(middleware.Require(entity.OpCreateStore, log)).Post("/admin/stores", adminHandler.CreateStore)
		r.With(middleware.Require(entity.OpListStores, log)).Get("/admin/stores", adminHandler.ListStores)
	})
}
