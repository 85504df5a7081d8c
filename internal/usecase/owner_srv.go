package usecase

import (
	"context"
	"fmt"

	"store-rating/internal/data/repository"
	"store-rating/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OwnerService interface {
	// Report builds the per-store rating report for everything the
	// owner owns: average plus every rater's name, email and value.
	Report(ctx context.Context, ownerID uuid.UUID) (*response.OwnerReportResponse, error)
}

type ownerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOwnerService(repo *repository.Repository, log *zap.Logger) OwnerService {
	return &ownerService{
		repo: repo,
		log:  log.With(zap.String("service", "owner")),
	}
}

func (s *ownerService) Report(ctx context.Context, ownerID uuid.UUID) (*response.OwnerReportResponse, error) {
	stores, err := s.repo.Store.FindByOwnerID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to find owner stores", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("find owner stores: %w", err)
	}

	if len(stores) == 0 {
		return nil, fmt.Errorf("stores not found for this owner")
	}

	storeIDs := make([]uuid.UUID, len(stores))
	for i, store := range stores {
		storeIDs[i] = store.ID
	}

	ratings, err := s.repo.Rating.FindByStoreIDsWithRater(ctx, storeIDs)
	if err != nil {
		s.log.Error("Failed to load ratings", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	// Group ratings by store and reduce to per-store averages
	byStore := make(map[uuid.UUID][]response.StoreRatingEntry)
	sums := make(map[uuid.UUID]int)
	for _, r := range ratings {
		byStore[r.StoreID] = append(byStore[r.StoreID], response.StoreRatingEntry{
			UserID:    r.UserID.String(),
			UserName:  r.UserName,
			UserEmail: r.UserEmail,
			Rating:    r.Rating.Rating,
		})
		sums[r.StoreID] += r.Rating.Rating
	}

	reports := make([]response.StoreReport, len(stores))
	for i, store := range stores {
		entries := byStore[store.ID]
		if entries == nil {
			entries = []response.StoreRatingEntry{}
		}

		// Average is 0 for an unrated store in this report
		averageRating := 0.0
		if len(entries) > 0 {
			averageRating = float64(sums[store.ID]) / float64(len(entries))
		}

		reports[i] = response.StoreReport{
			StoreID:       store.ID.String(),
			StoreName:     store.Name,
			AverageRating: averageRating,
			Ratings:       entries,
		}
	}

	s.log.Info("Owner report built",
		zap.String("owner_id", ownerID.String()),
		zap.Int("stores", len(stores)),
		zap.Int("ratings", len(ratings)))

	return &response.OwnerReportResponse{
		TotalStores: len(stores),
		Data:        reports,
	}, nil
}
