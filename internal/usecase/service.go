package usecase

import (
	"store-rating/internal/data/repository"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Admin  AdminService
	Owner  OwnerService
	Store  StoreService
	Rating RatingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		Admin:  NewAdminService(repo, log),
		Owner:  NewOwnerService(repo, log),
		Store:  NewStoreService(repo, log),
		Rating: NewRatingService(repo, log),
	}
}
