package postgres

import (
	"context"
	"errors"
	"fmt"

	"cybersource-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// GetByID fetches an order and its line items.
func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT id, number, customer_id, store_id, status, currency, total, tax_total, discount_amount
		FROM orders WHERE id = $1`

	o := &domain.Order{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Number, &o.CustomerID, &o.StoreID, &o.Status, &o.Currency,
		&o.Total, &o.TaxTotal, &o.DiscountAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	items, err := r.listItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// UpdateStatus sets the order status within a database transaction.
func (r *OrderRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status string) error {
	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", id)
	}
	return nil
}

func (r *OrderRepo) listItems(ctx context.Context, orderID uuid.UUID) ([]domain.LineItem, error) {
	query := `SELECT id, name, sku, quantity, price, placed_price, tax_total, discount_amount, is_gift
		FROM order_line_items WHERE order_id = $1 ORDER BY position ASC`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order line items: %w", err)
	}
	defer rows.Close()

	var items []domain.LineItem
	for rows.Next() {
		var li domain.LineItem
		err := rows.Scan(
			&li.ID, &li.Name, &li.Sku, &li.Quantity, &li.Price, &li.PlacedPrice,
			&li.TaxTotal, &li.DiscountAmount, &li.IsGift,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order line item row: %w", err)
		}
		items = append(items, li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order line item rows: %w", err)
	}
	return items, nil
}
