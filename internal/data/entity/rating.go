package entity

import (
	"github.com/google/uuid"
)

// Rating is a 1-5 score one user gave one store. The (store_id, user_id)
// pair is unique-constrained, so a user can never hold two ratings for
// the same store.
type Rating struct {
	Base
	StoreID uuid.UUID `db:"store_id"`
	UserID  uuid.UUID `db:"user_id"`
	Rating  int       `db:"rating"` // 1-5
}

// RatingWithRater joins a rating with the rater's public identity,
// used by the owner report.
type RatingWithRater struct {
	Rating
	UserName  string `db:"user_name"`
	UserEmail string `db:"user_email"`
}
