package postgres

import (
	"context"
	"errors"
	"fmt"

	"cybersource-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ContactRepo implements ports.CustomerDirectory over the contacts table.
type ContactRepo struct {
	pool Pool
}

// NewContactRepo creates a new ContactRepo.
func NewContactRepo(pool Pool) *ContactRepo {
	return &ContactRepo{pool: pool}
}

// FindContactByUserID returns the contact for a platform user id, or nil if there is none.
// Account emails come from the user's security accounts, oldest first.
func (r *ContactRepo) FindContactByUserID(ctx context.Context, userID string) (*domain.Contact, error) {
	query := `SELECT c.id, c.user_id, c.first_name, COALESCE(c.middle_name, ''), c.last_name,
		COALESCE(c.emails, '{}'),
		ARRAY(SELECT a.email FROM security_accounts a
			WHERE a.user_id = c.user_id AND a.email IS NOT NULL ORDER BY a.created_at)
		FROM contacts c WHERE c.user_id = $1`

	c := &domain.Contact{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&c.ID, &c.UserID, &c.FirstName, &c.MiddleName, &c.LastName, &c.Emails, &c.AccountEmails,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	return c, nil
}
