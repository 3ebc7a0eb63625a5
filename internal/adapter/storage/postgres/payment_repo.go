package postgres

import (
	"context"
	"errors"
	"fmt"

	"cybersource-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, order_id, number, status, amount, currency, is_approved, is_cancelled,
		authorized_at, captured_at, voided_at, cancelled_at, refunded_at,
		COALESCE(outer_transaction_id, ''), comments, billing_address, created_at, updated_at`

const paymentTransactionColumns = `id, payment_id, type, outer_id, amount, currency, gateway_status,
		response_code, note, response_data, processed_at`

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// GetByID fetches a payment with its transactions.
func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.load(ctx, r.pool.QueryRow(ctx, query, id))
}

// GetByOuterID fetches the payment the gateway knows by outerID.
func (r *PaymentRepo) GetByOuterID(ctx context.Context, outerID string) (*domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE outer_transaction_id = $1`
	return r.load(ctx, r.pool.QueryRow(ctx, query, outerID))
}

// Update writes the mutable lifecycle fields of a payment within a database transaction.
func (r *PaymentRepo) Update(ctx context.Context, tx pgx.Tx, p *domain.PaymentRecord) error {
	query := `UPDATE payments SET status = $1, is_approved = $2, is_cancelled = $3,
		authorized_at = $4, captured_at = $5, voided_at = $6, cancelled_at = $7, refunded_at = $8,
		outer_transaction_id = NULLIF($9, ''), comments = $10, billing_address = $11, updated_at = $12
		WHERE id = $13`

	tag, err := tx.Exec(ctx, query,
		p.Status, p.IsApproved, p.IsCancelled,
		p.AuthorizedAt, p.CapturedAt, p.VoidedAt, p.CancelledAt, p.RefundedAt,
		p.OuterTransactionID, p.Comments, p.BillingAddress, p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %s", p.ID)
	}
	return nil
}

// AppendTransactions inserts accepted gateway operations for a payment.
func (r *PaymentRepo) AppendTransactions(ctx context.Context, tx pgx.Tx, paymentID uuid.UUID, txns []domain.PaymentTransaction) error {
	query := `INSERT INTO payment_transactions (` + paymentTransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	for _, t := range txns {
		_, err := tx.Exec(ctx, query,
			t.ID, paymentID, t.Type, t.OuterID, t.Amount, t.Currency, t.GatewayStatus,
			t.ResponseCode, t.Note, t.ResponseData, t.ProcessedAt,
		)
		if err != nil {
			return fmt.Errorf("insert payment transaction %s: %w", t.Type, err)
		}
	}
	return nil
}

func (r *PaymentRepo) load(ctx context.Context, row pgx.Row) (*domain.PaymentRecord, error) {
	p, err := scanPayment(row)
	if err != nil || p == nil {
		return p, err
	}

	txns, err := r.listTransactions(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Transactions = txns
	return p, nil
}

func (r *PaymentRepo) listTransactions(ctx context.Context, paymentID uuid.UUID) ([]domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentTransactionColumns + `
		FROM payment_transactions WHERE payment_id = $1 ORDER BY processed_at ASC`

	rows, err := r.pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("list payment transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.PaymentTransaction
	for rows.Next() {
		var t domain.PaymentTransaction
		err := rows.Scan(
			&t.ID, &t.PaymentID, &t.Type, &t.OuterID, &t.Amount, &t.Currency, &t.GatewayStatus,
			&t.ResponseCode, &t.Note, &t.ResponseData, &t.ProcessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment transaction rows: %w", err)
	}
	return txns, nil
}

// scanPayment returns nil, nil when the row does not exist.
func scanPayment(row pgx.Row) (*domain.PaymentRecord, error) {
	p := &domain.PaymentRecord{}
	err := row.Scan(
		&p.ID, &p.OrderID, &p.Number, &p.Status, &p.Amount, &p.Currency, &p.IsApproved, &p.IsCancelled,
		&p.AuthorizedAt, &p.CapturedAt, &p.VoidedAt, &p.CancelledAt, &p.RefundedAt,
		&p.OuterTransactionID, &p.Comments, &p.BillingAddress, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}
