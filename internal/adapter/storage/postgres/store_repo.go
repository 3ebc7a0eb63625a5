package postgres

import (
	"context"
	"errors"
	"fmt"

	"cybersource-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// StoreRepo implements ports.StoreRepository.
type StoreRepo struct {
	pool Pool
}

// NewStoreRepo creates a new StoreRepo.
func NewStoreRepo(pool Pool) *StoreRepo {
	return &StoreRepo{pool: pool}
}

// GetByID fetches a storefront by id.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	query := `SELECT id, name, COALESCE(url, ''), COALESCE(secure_url, '') FROM stores WHERE id = $1`

	s := &domain.Store{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.URL, &s.SecureURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan store: %w", err)
	}
	return s, nil
}
