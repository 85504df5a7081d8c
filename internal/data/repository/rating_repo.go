package repository

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RatingRepository interface {
	// Insert adds a rating. It reports false when the (store, user)
	// pair already holds a rating; the row is left untouched in that
	// case.
	Insert(ctx context.Context, rating *entity.Rating) (bool, error)
	// UpdateValue mutates an existing rating in place and returns the
	// updated row, or nil when no rating exists for the pair.
	UpdateValue(ctx context.Context, userID, storeID uuid.UUID, value int) (*entity.Rating, error)
	// AverageByStoreIDs returns the mean rating per store. Stores with
	// no ratings are absent from the map.
	AverageByStoreIDs(ctx context.Context, storeIDs []uuid.UUID) (map[uuid.UUID]float64, error)
	// FindByUserAndStores returns the user's own rating value per store.
	FindByUserAndStores(ctx context.Context, userID uuid.UUID, storeIDs []uuid.UUID) (map[uuid.UUID]int, error)
	FindByStoreIDsWithRater(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.RatingWithRater, error)
	CountAll(ctx context.Context) (int64, error)
	AverageAll(ctx context.Context) (float64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (rr *ratingRepository) Insert(ctx context.Context, rating *entity.Rating) (bool, error) {
	// The unique constraint on (store_id, user_id) makes this a single
	// atomic conditional insert; concurrent duplicate submits cannot
	// both succeed.
	query := `
		INSERT INTO ratings (id, store_id, user_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (store_id, user_id) DO NOTHING
	`

	result, err := rr.db.Exec(ctx, query,
		rating.ID,
		rating.StoreID,
		rating.UserID,
		rating.Rating,
		rating.CreatedAt,
		rating.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to insert rating",
			zap.Error(err),
			zap.String("store_id", rating.StoreID.String()),
			zap.String("user_id", rating.UserID.String()),
		)
		return false, fmt.Errorf("insert rating for store %s by user %s: %w",
			rating.StoreID.String(), rating.UserID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (rr *ratingRepository) UpdateValue(ctx context.Context, userID, storeID uuid.UUID, value int) (*entity.Rating, error) {
	query := `
		UPDATE ratings
		SET rating = $3, updated_at = NOW()
		WHERE user_id = $1 AND store_id = $2
		RETURNING id, store_id, user_id, rating, created_at, updated_at
	`

	var rating entity.Rating
	err := rr.db.QueryRow(ctx, query, userID, storeID, value).Scan(
		&rating.ID,
		&rating.StoreID,
		&rating.UserID,
		&rating.Rating,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to update rating",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("update rating for store %s by user %s: %w",
			storeID.String(), userID.String(), err)
	}

	return &rating, nil
}

func (rr *ratingRepository) AverageByStoreIDs(ctx context.Context, storeIDs []uuid.UUID) (map[uuid.UUID]float64, error) {
	averages := make(map[uuid.UUID]float64)
	if len(storeIDs) == 0 {
		return averages, nil
	}

	query := `
		SELECT store_id, AVG(rating)
		FROM ratings
		WHERE store_id = ANY($1)
		GROUP BY store_id
	`

	rows, err := rr.db.Query(ctx, query, storeIDs)
	if err != nil {
		rr.log.Error("Failed to average ratings by store", zap.Error(err))
		return nil, fmt.Errorf("average ratings by store: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var storeID uuid.UUID
		var avg float64
		if err := rows.Scan(&storeID, &avg); err != nil {
			rr.log.Error("Failed to scan average row", zap.Error(err))
			return nil, fmt.Errorf("scan average row: %w", err)
		}
		averages[storeID] = avg
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate average rows: %w", err)
	}

	return averages, nil
}

func (rr *ratingRepository) FindByUserAndStores(ctx context.Context, userID uuid.UUID, storeIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	ratings := make(map[uuid.UUID]int)
	if len(storeIDs) == 0 {
		return ratings, nil
	}

	query := `
		SELECT store_id, rating
		FROM ratings
		WHERE user_id = $1 AND store_id = ANY($2)
	`

	rows, err := rr.db.Query(ctx, query, userID, storeIDs)
	if err != nil {
		rr.log.Error("Failed to find ratings by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find ratings by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var storeID uuid.UUID
		var value int
		if err := rows.Scan(&storeID, &value); err != nil {
			rr.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings[storeID] = value
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	return ratings, nil
}

func (rr *ratingRepository) FindByStoreIDsWithRater(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.RatingWithRater, error) {
	if len(storeIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT r.id, r.store_id, r.user_id, r.rating, r.created_at, r.updated_at,
		       u.name, u.email
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.store_id = ANY($1)
		ORDER BY r.created_at DESC
	`

	rows, err := rr.db.Query(ctx, query, storeIDs)
	if err != nil {
		rr.log.Error("Failed to find ratings with rater", zap.Error(err))
		return nil, fmt.Errorf("find ratings with rater: %w", err)
	}
	defer rows.Close()

	var ratings []*entity.RatingWithRater
	for rows.Next() {
		var r entity.RatingWithRater
		err := rows.Scan(
			&r.ID,
			&r.StoreID,
			&r.UserID,
			&r.Rating.Rating,
			&r.CreatedAt,
			&r.UpdatedAt,
			&r.UserName,
			&r.UserEmail,
		)
		if err != nil {
			rr.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &r)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	return ratings, nil
}

func (rr *ratingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings`

	var count int64
	err := rr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		rr.log.Error("Failed to count all ratings", zap.Error(err))
		return 0, fmt.Errorf("count all ratings: %w", err)
	}

	return count, nil
}

func (rr *ratingRepository) AverageAll(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM ratings`

	var avg float64
	err := rr.db.QueryRow(ctx, query).Scan(&avg)
	if err != nil {
		rr.log.Error("Failed to average all ratings", zap.Error(err))
		return 0, fmt.Errorf("average all ratings: %w", err)
	}

	return avg, nil
}
