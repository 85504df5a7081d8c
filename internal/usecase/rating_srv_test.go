package usecase

import (
	"context"
	"testing"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSubmitRating_Success(t *testing.T) {
	repos, _, storeRepo, ratingRepo := newTestRepos()
	svc := NewRatingService(repos, zap.NewNop())

	userID := uuid.New()
	storeID := uuid.New()

	storeRepo.On("FindByID", mock.Anything, storeID).Return(&entity.Store{
		Base: entity.Base{ID: storeID},
		Name: "Corner Grocery",
	}, nil)
	ratingRepo.On("Insert", mock.Anything, mock.MatchedBy(func(r *entity.Rating) bool {
		return r.StoreID == storeID && r.UserID == userID && r.Rating == 4
	})).Return(true, nil)

	resp, err := svc.Submit(context.Background(), userID, storeID.String(), &request.RatingRequest{Rating: 4})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, storeID.String(), resp.StoreID)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, 4, resp.Rating)
	ratingRepo.AssertExpectations(t)
}

func TestSubmitRating_ValueOutOfRange(t *testing.T) {
	for _, value := range []int{0, -1, 6, 100} {
		repos, _, storeRepo, ratingRepo := newTestRepos()
		svc := NewRatingService(repos, zap.NewNop())

		resp, err := svc.Submit(context.Background(), uuid.New(), uuid.New().String(), &request.RatingRequest{Rating: value})
		require.Error(t, err, "rating %d must be rejected", value)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "validation failed")
		storeRepo.AssertNotCalled(t, "FindByID")
		ratingRepo.AssertNotCalled(t, "Insert")
	}
}

func TestSubmitRating_StoreNotFound(t *testing.T) {
	repos, _, storeRepo, ratingRepo := newTestRepos()
	svc := NewRatingService(repos, zap.NewNop())

	storeID := uuid.New()
	storeRepo.On("FindByID", mock.Anything, storeID).Return(nil, nil)

	resp, err := svc.Submit(context.Background(), uuid.New(), storeID.String(), &request.RatingRequest{Rating: 3})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "store not found")
	ratingRepo.AssertNotCalled(t, "Insert")
}

func TestSubmitRating_MalformedStoreID(t *testing.T) {
	repos, _, storeRepo, _ := newTestRepos()
	svc := NewRatingService(repos, zap.NewNop())

	resp, err := svc.Submit(context.Background(), uuid.New(), "not-a-uuid", &request.RatingRequest{Rating: 3})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "store not found")
	storeRepo.AssertNotCalled(t, "FindByID")
}

func TestSubmitRating_AlreadyRated(t *testing.T) {
	repos, _, storeRepo, ratingRepo := newTestRepos()
	svc := NewRatingService(repos, zap.NewNop())

	storeID := uuid.New()
	storeRepo.On("FindByID", mock.Anything, storeID).Return(&entity.Store{
		Base: entity.Base{ID: storeID},
	}, nil)

	// The conditional insert reports no row written when the pair
	// already holds a rating, including when a concurrent submit won.
	ratingRepo.On("Insert", mock.Anything, mock.Anything).Return(false, nil)

	resp, err := svc.Submit(context.Background(), uuid.New(), storeID.String(), &request.RatingRequest{Rating: 5})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "already rated")
}

func TestUpdateRating_Success(t *testing.T) {
	repos, _, _, ratingRepo := newTestRepos()
	svc := NewRatingService(repos, zap.NewNop())

	userID := uuid.New()
	storeID := uuid.New()
	created := time.Now().Add(-time.Hour)

	ratingRepo.On("UpdateValue", mock.Anything, userID, storeID, 2).Return(&entity.Rating{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: created,
			UpdatedAt: time.Now(),
		},
		StoreID: storeID,
		UserID:  userID,
		Rating:  2,
	}, nil)

	resp, err := svc.Update(context.Background(), userID, storeID.String(), &request.RatingRequest{Rating: 2})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// The row keeps its identity; only the value and updated_at move
	assert.Equal(t, 2, resp.Rating)
	assert.Equal(t, created, resp.CreatedAt)
	assert.True(t, resp.UpdatedAt.After(resp.CreatedAt))
}

func TestUpdateRating_NoExistingRating(t *testing.T) {
	repos, _, _, ratingRepo := newTestRepos()
	svc := NewRatingService(repos, zap.NewNop())

	userID := uuid.New()
	storeID := uuid.New()
	ratingRepo.On("UpdateValue", mock.Anything, userID, storeID, 3).Return(nil, nil)

	resp, err := svc.Update(context.Background(), userID, storeID.String(), &request.RatingRequest{Rating: 3})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateRating_ValueOutOfRange(t *testing.T) {
	repos, _, _, ratingRepo := newTestRepos()
	svc := NewRatingService(repos, zap.NewNop())

	resp, err := svc.Update(context.Background(), uuid.New(), uuid.New().String(), &request.RatingRequest{Rating: 6})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "validation failed")
	ratingRepo.AssertNotCalled(t, "UpdateValue")
}
