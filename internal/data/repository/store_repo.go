package repository

import (
	"context"
	"fmt"
	"strings"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// StoreFilter holds the optional list filters, same contract as
// UserFilter with an exact owner match instead of role.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
	OwnerID *uuid.UUID
}

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error)
	FindWithFilters(ctx context.Context, filter StoreFilter, limit, offset int) ([]*entity.Store, error)
	CountWithFilters(ctx context.Context, filter StoreFilter) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type storeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoreRepository(db database.PgxIface, log *zap.Logger) StoreRepository {
	return &storeRepository{
		db:  db,
		log: log.With(zap.String("repository", "store")),
	}
}

const storeColumns = `id, name, email, address, owner_id, created_at, updated_at`

func scanStore(row pgx.Row) (*entity.Store, error) {
	var store entity.Store
	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (sr *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, email, address, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := sr.db.Exec(ctx, query,
		store.ID,
		store.Name,
		store.Email,
		store.Address,
		store.OwnerID,
		store.CreatedAt,
		store.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to create store",
			zap.Error(err),
			zap.String("name", store.Name),
			zap.String("owner_id", store.OwnerID.String()),
		)
		return fmt.Errorf("create store %s: %w", store.Name, err)
	}

	return nil
}

func (sr *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`

	store, err := scanStore(sr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by ID",
			zap.Error(err),
			zap.String("store_id", id.String()),
		)
		return nil, fmt.Errorf("find store by ID %s: %w", id.String(), err)
	}

	return store, nil
}

func (sr *storeRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := sr.db.Query(ctx, query, ownerID)
	if err != nil {
		sr.log.Error("Failed to find stores by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find stores by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var stores []*entity.Store
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			sr.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate stores rows: %w", err)
	}

	return stores, nil
}

func buildStoreWhere(query string, filter StoreFilter) (string, []any) {
	var clauses []string
	var args []any

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.Email != "" {
		args = append(args, "%"+filter.Email+"%")
		clauses = append(clauses, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if filter.Address != "" {
		args = append(args, "%"+filter.Address+"%")
		clauses = append(clauses, fmt.Sprintf("address ILIKE $%d", len(args)))
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		clauses = append(clauses, fmt.Sprintf("owner_id = $%d", len(args)))
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	return query, args
}

func (sr *storeRepository) FindWithFilters(ctx context.Context, filter StoreFilter, limit, offset int) ([]*entity.Store, error) {
	query, args := buildStoreWhere(`SELECT `+storeColumns+` FROM stores`, filter)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to list stores",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list stores limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var stores []*entity.Store
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			sr.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate stores rows: %w", err)
	}

	return stores, nil
}

func (sr *storeRepository) CountWithFilters(ctx context.Context, filter StoreFilter) (int64, error) {
	query, args := buildStoreWhere(`SELECT COUNT(*) FROM stores`, filter)

	var count int64
	err := sr.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		sr.log.Error("Failed to count stores", zap.Error(err))
		return 0, fmt.Errorf("count stores: %w", err)
	}

	return count, nil
}

func (sr *storeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stores`

	var count int64
	err := sr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		sr.log.Error("Failed to count all stores", zap.Error(err))
		return 0, fmt.Errorf("count all stores: %w", err)
	}

	return count, nil
}
