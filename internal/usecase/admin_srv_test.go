package usecase

import (
	"context"
	"testing"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAdminCreateStore_Success(t *testing.T) {
	repos, userRepo, storeRepo, _ := newTestRepos()
	svc := NewAdminService(repos, zap.NewNop())

	ownerID := uuid.New()
	userRepo.On("FindByID", mock.Anything, ownerID).Return(&entity.User{
		Base: entity.Base{ID: ownerID},
		Role: entity.RoleOwner,
	}, nil)
	storeRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Store) bool {
		return s.Name == "Corner Grocery" && s.OwnerID == ownerID
	})).Return(nil)

	resp, err := svc.CreateStore(context.Background(), &request.CreateStoreRequest{
		Name:    "Corner Grocery",
		OwnerID: ownerID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, ownerID.String(), resp.OwnerID)
	assert.Nil(t, resp.OverallRating)
	storeRepo.AssertExpectations(t)
}

func TestAdminCreateStore_OwnerRoleNotChecked(t *testing.T) {
	// Any existing identity may own a store, whatever its role
	repos, userRepo, storeRepo, _ := newTestRepos()
	svc := NewAdminService(repos, zap.NewNop())

	ownerID := uuid.New()
	userRepo.On("FindByID", mock.Anything, ownerID).Return(&entity.User{
		Base: entity.Base{ID: ownerID},
		Role: entity.RoleUser,
	}, nil)
	storeRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.CreateStore(context.Background(), &request.CreateStoreRequest{
		Name:    "Corner Grocery",
		OwnerID: ownerID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
}

func TestAdminCreateStore_OwnerMissing(t *testing.T) {
	repos, userRepo, storeRepo, _ := newTestRepos()
	svc := NewAdminService(repos, zap.NewNop())

	ownerID := uuid.New()
	userRepo.On("FindByID", mock.Anything, ownerID).Return(nil, nil)

	resp, err := svc.CreateStore(context.Background(), &request.CreateStoreRequest{
		Name:    "Corner Grocery",
		OwnerID: ownerID.String(),
	})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "validation failed")
	storeRepo.AssertNotCalled(t, "Create")
}

func TestAdminCreateStore_BadOwnerID(t *testing.T) {
	repos, userRepo, _, _ := newTestRepos()
	svc := NewAdminService(repos, zap.NewNop())

	resp, err := svc.CreateStore(context.Background(), &request.CreateStoreRequest{
		Name:    "Corner Grocery",
		OwnerID: "not-a-uuid",
	})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "validation failed")
	userRepo.AssertNotCalled(t, "FindByID")
}

func TestAdminListStores_NilOverallForUnrated(t *testing.T) {
	repos, _, storeRepo, ratingRepo := newTestRepos()
	svc := NewAdminService(repos, zap.NewNop())

	rated := uuid.New()
	unrated := uuid.New()
	stores := []*entity.Store{
		{Base: entity.Base{ID: rated}, Name: "Corner Grocery", OwnerID: uuid.New()},
		{Base: entity.Base{ID: unrated}, Name: "New Bakery", OwnerID: uuid.New()},
	}

	storeRepo.On("FindWithFilters", mock.Anything, mock.Anything, 10, 0).Return(stores, nil)
	storeRepo.On("CountWithFilters", mock.Anything, mock.Anything).Return(int64(2), nil)
	ratingRepo.On("AverageByStoreIDs", mock.Anything, []uuid.UUID{rated, unrated}).Return(map[uuid.UUID]float64{
		rated: 4.5,
	}, nil)

	resp, err := svc.ListStores(context.Background(), &request.ListStoresRequest{
		Pagination: request.Pagination{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	require.NotNil(t, resp.Data[0].OverallRating)
	assert.InDelta(t, 4.5, *resp.Data[0].OverallRating, 1e-9)
	assert.Nil(t, resp.Data[1].OverallRating)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestAdminListUsers_RoleFilterUppercased(t *testing.T) {
	repos, userRepo, _, _ := newTestRepos()
	svc := NewAdminService(repos, zap.NewNop())

	wantFilter := repository.UserFilter{Role: entity.RoleOwner}
	userRepo.On("FindWithFilters", mock.Anything, wantFilter, 10, 0).Return([]*entity.User{}, nil)
	userRepo.On("CountWithFilters", mock.Anything, wantFilter).Return(int64(0), nil)

	resp, err := svc.ListUsers(context.Background(), &request.ListUsersRequest{
		Role:       "owner",
		Pagination: request.Pagination{Page: 1, Limit: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.Total)
	assert.NotNil(t, resp.Data)
	userRepo.AssertExpectations(t)
}

func TestAdminDashboard(t *testing.T) {
	repos, userRepo, storeRepo, ratingRepo := newTestRepos()
	svc := NewAdminService(repos, zap.NewNop())

	userRepo.On("CountAll", mock.Anything).Return(int64(12), nil)
	userRepo.On("CountByRole", mock.Anything, entity.RoleAdmin).Return(int64(1), nil)
	userRepo.On("CountByRole", mock.Anything, entity.RoleOwner).Return(int64(3), nil)
	userRepo.On("CountByRole", mock.Anything, entity.RoleUser).Return(int64(8), nil)
	storeRepo.On("CountAll", mock.Anything).Return(int64(5), nil)
	ratingRepo.On("CountAll", mock.Anything).Return(int64(20), nil)
	ratingRepo.On("AverageAll", mock.Anything).Return(3.456, nil)

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), resp.Users.Total)
	assert.Equal(t, int64(1), resp.Users.Admins)
	assert.Equal(t, int64(3), resp.Users.Owners)
	assert.Equal(t, int64(8), resp.Users.NormalUsers)
	assert.Equal(t, int64(5), resp.Stores)
	assert.Equal(t, int64(20), resp.Ratings.Total)

	// System average is rendered with two decimals
	assert.Equal(t, "3.46", resp.Ratings.Average)
}

func TestAdminDashboard_EmptySystem(t *testing.T) {
	repos, userRepo, storeRepo, ratingRepo := newTestRepos()
	svc := NewAdminService(repos, zap.NewNop())

	userRepo.On("CountAll", mock.Anything).Return(int64(0), nil)
	userRepo.On("CountByRole", mock.Anything, mock.Anything).Return(int64(0), nil)
	storeRepo.On("CountAll", mock.Anything).Return(int64(0), nil)
	ratingRepo.On("CountAll", mock.Anything).Return(int64(0), nil)
	ratingRepo.On("AverageAll", mock.Anything).Return(0.0, nil)

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.Ratings.Average)
}
