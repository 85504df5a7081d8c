package usecase

import (
	"context"
	"fmt"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingService interface {
	// Submit records a user's first rating for a store. A second
	// submit for the same pair fails; the caller must update instead.
	Submit(ctx context.Context, userID uuid.UUID, storeID string, req *request.RatingRequest) (*response.RatingResponse, error)
	// Update changes the value of an existing rating in place.
	Update(ctx context.Context, userID uuid.UUID, storeID string, req *request.RatingRequest) (*response.RatingResponse, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) Submit(ctx context.Context, userID uuid.UUID, storeID string, req *request.RatingRequest) (*response.RatingResponse, error) {
	// 1. Validate value range
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit rating validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("store not found")
	}

	// 2. Store must exist
	store, err := s.repo.Store.FindByID(ctx, storeUUID)
	if err != nil {
		s.log.Error("Failed to find store", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("store not found")
	}

	// 3. Atomic conditional insert; losing a race against a duplicate
	// submit looks the same as the sequential duplicate case.
	now := time.Now()
	rating := &entity.Rating{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StoreID: storeUUID,
		UserID:  userID,
		Rating:  req.Rating,
	}

	inserted, err := s.repo.Rating.Insert(ctx, rating)
	if err != nil {
		s.log.Error("Failed to insert rating", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("insert rating: %w", err)
	}
	if !inserted {
		return nil, fmt.Errorf("you have already rated this store, use update instead")
	}

	s.log.Info("Rating submitted",
		zap.String("store_id", storeID),
		zap.String("user_id", userID.String()),
		zap.Int("rating", req.Rating))

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) Update(ctx context.Context, userID uuid.UUID, storeID string, req *request.RatingRequest) (*response.RatingResponse, error) {
	// 1. Validate value range
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update rating validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("rating not found, submit first")
	}

	// 2. In-place mutation; the row keeps its identity
	rating, err := s.repo.Rating.UpdateValue(ctx, userID, storeUUID, req.Rating)
	if err != nil {
		s.log.Error("Failed to update rating", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("update rating: %w", err)
	}
	if rating == nil {
		return nil, fmt.Errorf("rating not found, submit first")
	}

	s.log.Info("Rating updated",
		zap.String("store_id", storeID),
		zap.String("user_id", userID.String()),
		zap.Int("rating", req.Rating))

	resp := response.RatingToResponse(rating)
	return &resp, nil
}
