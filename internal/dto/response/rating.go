package response

import (
	"time"

	"store-rating/internal/data/entity"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreRatingEntry is one rater's line in the owner report.
type StoreRatingEntry struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Rating    int    `json:"rating"`
}

// StoreReport aggregates one owned store. AverageRating is 0 when the
// store has no ratings, unlike the nullable listing aggregate.
type StoreReport struct {
	StoreID       string             `json:"storeId"`
	StoreName     string             `json:"storeName"`
	AverageRating float64            `json:"averageRating"`
	Ratings       []StoreRatingEntry `json:"ratings"`
}

type OwnerReportResponse struct {
	TotalStores int           `json:"totalStores"`
	Data        []StoreReport `json:"data"`
}

func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID.String(),
		StoreID:   rating.StoreID.String(),
		UserID:    rating.UserID.String(),
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}
