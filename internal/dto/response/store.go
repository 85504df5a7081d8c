package response

import (
	"time"

	"store-rating/internal/data/entity"
)

// StoreResponse is the admin view of a store. OverallRating is nil when
// the store has no ratings yet; callers must not read that as zero.
type StoreResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         *string   `json:"email,omitempty"`
	Address       *string   `json:"address,omitempty"`
	OwnerID       string    `json:"ownerId"`
	OverallRating *float64  `json:"overallRating"`
	CreatedAt     time.Time `json:"created_at"`
}

// BrowseStoreResponse is the end-user view: the overall average plus
// the caller's own rating, both nil when absent.
type BrowseStoreResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       *string  `json:"address,omitempty"`
	OverallRating *float64 `json:"overallRating"`
	UserRating    *int     `json:"userRating"`
}

func StoreToResponse(store *entity.Store, overallRating *float64) StoreResponse {
	return StoreResponse{
		ID:            store.ID.String(),
		Name:          store.Name,
		Email:         store.Email,
		Address:       store.Address,
		OwnerID:       store.OwnerID.String(),
		OverallRating: overallRating,
		CreatedAt:     store.CreatedAt,
	}
}

func StoreToBrowseResponse(store *entity.Store, overallRating *float64, userRating *int) BrowseStoreResponse {
	return BrowseStoreResponse{
		ID:            store.ID.String(),
		Name:          store.Name,
		Address:       store.Address,
		OverallRating: overallRating,
		UserRating:    userRating,
	}
}
