package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shariarfaisal/snapshop/internal/models"
)

// ErrStoreNotFound is returned when no store exists for a subdomain.
var ErrStoreNotFound = errors.New("store not found")

type StoreRepository struct {
	pool *pgxpool.Pool
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{pool: pool}
}

// GetBySubdomain retrieves a store by its subdomain
func (r *StoreRepository) GetBySubdomain(ctx context.Context, subdomain string) (*models.Store, error) {
	store := &models.Store{}

	query := `
		SELECT id, name, subdomain, logo, owner_id, active
		FROM stores
		WHERE subdomain = $1
	`

	err := r.pool.QueryRow(ctx, query, subdomain).Scan(
		&store.ID,
		&store.Name,
		&store.Subdomain,
		&store.Logo,
		&store.OwnerID,
		&store.Active,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	return store, nil
}

// ListByOwner retrieves all stores owned by a user
func (r *StoreRepository) ListByOwner(ctx context.Context, ownerID int) ([]models.Store, error) {
	query := `
		SELECT id, name, subdomain, logo, owner_id, active
		FROM stores
		WHERE owner_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []models.Store
	for rows.Next() {
		var s models.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Subdomain, &s.Logo, &s.OwnerID, &s.Active); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, s)
	}

	return stores, rows.Err()
}
