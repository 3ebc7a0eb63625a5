package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// lifecycleTxOptions covers one lifecycle write: the payment row, its new
// gateway transactions and the order status change.
var lifecycleTxOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite}

// Transactor implements ports.DBTransactor for payment lifecycle writes.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a Transactor on the given pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin opens a read-committed, read-write transaction for a lifecycle write.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := t.pool.BeginTx(ctx, lifecycleTxOptions)
	if err != nil {
		return nil, fmt.Errorf("begin lifecycle transaction: %w", err)
	}
	return tx, nil
}
