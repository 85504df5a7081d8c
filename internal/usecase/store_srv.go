package usecase

import (
	"context"
	"fmt"

	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoreService interface {
	// Browse lists stores for an end user, joining each row with its
	// overall average and the caller's own rating.
	Browse(ctx context.Context, userID uuid.UUID, req *request.ListStoresRequest) (*response.ListResponse[response.BrowseStoreResponse], error)
}

type storeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStoreService(repo *repository.Repository, log *zap.Logger) StoreService {
	return &storeService{
		repo: repo,
		log:  log.With(zap.String("service", "store")),
	}
}

func (s *storeService) Browse(ctx context.Context, userID uuid.UUID, req *request.ListStoresRequest) (*response.ListResponse[response.BrowseStoreResponse], error) {
	filter := repository.StoreFilter{
		Name:    req.Name,
		Address: req.Address,
	}
	if req.OwnerID != "" {
		ownerID, err := uuid.Parse(req.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("validation failed: ownerId: Must be a valid UUID")
		}
		filter.OwnerID = &ownerID
	}

	stores, err := s.repo.Store.FindWithFilters(ctx, filter, req.PerPage(), req.Offset())
	if err != nil {
		s.log.Error("Failed to browse stores", zap.Error(err))
		return nil, fmt.Errorf("browse stores: %w", err)
	}

	total, err := s.repo.Store.CountWithFilters(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count stores", zap.Error(err))
		return nil, fmt.Errorf("count stores: %w", err)
	}

	storeIDs := make([]uuid.UUID, len(stores))
	for i, store := range stores {
		storeIDs[i] = store.ID
	}

	averages, err := s.repo.Rating.AverageByStoreIDs(ctx, storeIDs)
	if err != nil {
		s.log.Error("Failed to aggregate ratings", zap.Error(err))
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}

	ownRatings, err := s.repo.Rating.FindByUserAndStores(ctx, userID, storeIDs)
	if err != nil {
		s.log.Error("Failed to load user ratings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("load user ratings: %w", err)
	}

	storeResponses := make([]response.BrowseStoreResponse, len(stores))
	for i, store := range stores {
		var overall *float64
		if avg, ok := averages[store.ID]; ok {
			overall = &avg
		}
		var own *int
		if value, ok := ownRatings[store.ID]; ok {
			own = &value
		}
		storeResponses[i] = response.StoreToBrowseResponse(store, overall, own)
	}

	s.log.Info("Stores browsed",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(stores)),
		zap.Int64("total", total))

	return response.NewListResponse(storeResponses, req.Page, req.PerPage(), total), nil
}
