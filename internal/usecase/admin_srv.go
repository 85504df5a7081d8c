package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	ListUsers(ctx context.Context, req *request.ListUsersRequest) (*response.ListResponse[response.UserResponse], error)
	CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error)
	ListStores(ctx context.Context, req *request.ListStoresRequest) (*response.ListResponse[response.StoreResponse], error)
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ListUsers(ctx context.Context, req *request.ListUsersRequest) (*response.ListResponse[response.UserResponse], error) {
	filter := repository.UserFilter{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	}
	if req.Role != "" {
		filter.Role = entity.Role(strings.ToUpper(req.Role))
	}

	users, err := s.repo.User.FindWithFilters(ctx, filter, req.PerPage(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.User.CountWithFilters(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	s.log.Info("Users listed",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", req.Page))

	return response.NewListResponse(userResponses, req.Page, req.PerPage(), total), nil
}

func (s *adminService) CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create store validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("validation failed: OwnerID: Must be a valid UUID")
	}

	// 2. The owner must exist; the owner's role is deliberately not
	// checked (any identity may own a store).
	owner, err := s.repo.User.FindByID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to find owner", zap.Error(err), zap.String("owner_id", req.OwnerID))
		return nil, fmt.Errorf("check owner: %w", err)
	}
	if owner == nil {
		return nil, fmt.Errorf("validation failed: OwnerID: no such user")
	}

	now := time.Now()
	store := &entity.Store{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: ownerID,
	}

	if err := s.repo.Store.Create(ctx, store); err != nil {
		s.log.Error("Failed to create store", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create store: %w", err)
	}

	s.log.Info("Store created",
		zap.String("store_id", store.ID.String()),
		zap.String("owner_id", ownerID.String()))

	resp := response.StoreToResponse(store, nil)
	return &resp, nil
}

func (s *adminService) ListStores(ctx context.Context, req *request.ListStoresRequest) (*response.ListResponse[response.StoreResponse], error) {
	filter := repository.StoreFilter{
		Name:    req.Name,
		Email:   req.Email,
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
		s.log.Error("Failed to list stores", zap.Error(err))
		return nil, fmt.Errorf("list stores: %w", err)
	}

	total, err := s.repo.Store.CountWithFilters(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count stores", zap.Error(err))
		return nil, fmt.Errorf("count stores: %w", err)
	}

	// Join each page row with its aggregate rating, recomputed on the
	// fly. A store absent from the averages map has no ratings and
	// keeps a nil overallRating.
	storeIDs := make([]uuid.UUID, len(stores))
	for i, store := range stores {
		storeIDs[i] = store.ID
	}

	averages, err := s.repo.Rating.AverageByStoreIDs(ctx, storeIDs)
	if err != nil {
		s.log.Error("Failed to aggregate ratings", zap.Error(err))
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}

	storeResponses := make([]response.StoreResponse, len(stores))
	for i, store := range stores {
		var overall *float64
		if avg, ok := averages[store.ID]; ok {
			overall = &avg
		}
		storeResponses[i] = response.StoreToResponse(store, overall)
	}

	s.log.Info("Stores listed",
		zap.Int("count", len(stores)),
		zap.Int64("total", total),
		zap.Int("page", req.Page))

	return response.NewListResponse(storeResponses, req.Page, req.PerPage(), total), nil
}

func (s *adminService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	admins, err := s.repo.User.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}

	owners, err := s.repo.User.CountByRole(ctx, entity.RoleOwner)
	if err != nil {
		return nil, fmt.Errorf("count owners: %w", err)
	}

	normalUsers, err := s.repo.User.CountByRole(ctx, entity.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("count normal users: %w", err)
	}

	totalStores, err := s.repo.Store.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stores: %w", err)
	}

	totalRatings, err := s.repo.Rating.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count ratings: %w", err)
	}

	avgRating, err := s.repo.Rating.AverageAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("average ratings: %w", err)
	}

	s.log.Info("Dashboard computed",
		zap.Int64("users", totalUsers),
		zap.Int64("stores", totalStores),
		zap.Int64("ratings", totalRatings))

	return &response.DashboardResponse{
		Users: response.UserCounts{
			Total:       totalUsers,
			Admins:      admins,
			Owners:      owners,
			NormalUsers: normalUsers,
		},
		Stores: totalStores,
		Ratings: response.RatingStats{
			Total:   totalRatings,
			Average: fmt.Sprintf("%.2f", avgRating),
		},
	}, nil
}
