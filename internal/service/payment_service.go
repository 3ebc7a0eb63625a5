package service

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"cybersource-gateway/config"
	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Operation labels used for metrics and logs.
const (
	opAuthorize = "authorize"
	opCapture   = "capture"
	opRefund    = "refund"
	opVoid      = "void"
	opRefresh   = "refresh"
)

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	payments   ports.PaymentRepository
	orders     ports.OrderRepository
	stores     ports.StoreRepository
	issuer     ports.CaptureContextIssuer
	ops        *OperationClient
	mapper     StatusMapper
	transactor ports.DBTransactor
	metrics    ports.Metrics
	cfg        config.GatewayConfig
	log        zerolog.Logger
	now        func() time.Time
}

// NewPaymentService creates a new PaymentServiceImpl. metrics may be nil.
func NewPaymentService(
	payments ports.PaymentRepository,
	orders ports.OrderRepository,
	stores ports.StoreRepository,
	issuer ports.CaptureContextIssuer,
	ops *OperationClient,
	transactor ports.DBTransactor,
	metrics ports.Metrics,
	cfg config.GatewayConfig,
	log zerolog.Logger,
) *PaymentServiceImpl {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &PaymentServiceImpl{
		payments:   payments,
		orders:     orders,
		stores:     stores,
		issuer:     issuer,
		ops:        ops,
		mapper:     NewStatusMapper(),
		transactor: transactor,
		metrics:    metrics,
		cfg:        cfg,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// IssueCaptureContext issues a capture context for the store's checkout origin.
// An empty storeID selects the configured default store.
func (s *PaymentServiceImpl) IssueCaptureContext(ctx context.Context, storeID string) (*domain.CaptureContext, error) {
	if storeID == "" {
		storeID = s.cfg.DefaultStoreID
	}
	if storeID == "" {
		return nil, apperror.Validation("store id is required")
	}

	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get store: %w", err))
	}
	if store == nil {
		return nil, apperror.ErrNotFound("Store")
	}

	storeURL, err := store.CheckoutURL()
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("store %s: %v", store.ID, err))
	}

	return s.issuer.Issue(ctx, storeURL, s.cfg.CardTypeList(), s.cfg.Sandbox)
}

// Authorize submits the card token and records the classified outcome.
func (s *PaymentServiceImpl) Authorize(ctx context.Context, paymentID uuid.UUID, token string) (*domain.LifecycleOutcome, error) {
	payment, order, err := s.load(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	result, err := s.ops.Authorize(ctx, s.requestContext(payment), token, payment, order)
	if err != nil {
		return nil, err
	}
	s.logUnmapped(opAuthorize, payment, result)

	before, orderStatus := payment.Clone(), order.Status
	outcome := s.mapper.MapAuthorize(result, payment, order, s.cfg.SingleMessageMode, s.now())
	if err := s.persist(ctx, before, payment, orderStatus, order); err != nil {
		return nil, err
	}

	s.record(opAuthorize, payment, outcome)
	return &outcome, nil
}

// Capture settles part or all of an authorization.
func (s *PaymentServiceImpl) Capture(ctx context.Context, req ports.CaptureRequest) (*domain.LifecycleOutcome, error) {
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, apperror.Validation("capture amount must be positive")
	}

	payment, order, err := s.load(ctx, req.PaymentID)
	if err != nil {
		return nil, err
	}

	sequence := NextCaptureSequence(payment)
	result, err := s.ops.Capture(ctx, s.requestContext(payment), payment, order, req.Amount, sequence, req.IsFinal, req.Notes)
	if err != nil {
		return nil, err
	}

	amount := payment.RemainingCaptureAmount()
	if req.Amount != nil {
		amount = *req.Amount
	}

	before := payment.Clone()
	outcome, err := s.mapper.MapCapture(result, payment, req.IsFinal, amount, s.now())
	if err != nil {
		s.metrics.ObserveOutcome(opCapture, domain.OutcomeFailed)
		s.log.Error().
			Err(err).
			Str("payment_id", payment.ID.String()).
			Str("gateway_status", result.RawStatus).
			RawJSON("response", rawOrEmpty(result)).
			Msg("capture rejected by gateway")
		return nil, err
	}
	if err := s.persist(ctx, before, payment, order.Status, order); err != nil {
		return nil, err
	}

	s.record(opCapture, payment, outcome)
	return &outcome, nil
}

// Refund returns money to the card. A nil amount refunds everything not yet refunded.
func (s *PaymentServiceImpl) Refund(ctx context.Context, paymentID uuid.UUID, amount *decimal.Decimal) (*domain.LifecycleOutcome, error) {
	payment, err := s.loadPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	result, err := s.ops.Refund(ctx, s.requestContext(payment), payment, amount)
	if err != nil {
		return nil, err
	}

	refunded := payment.RemainingAmount()
	if amount != nil {
		refunded = *amount
	}

	before := payment.Clone()
	outcome := s.mapper.MapRefund(result, payment, refunded, s.now())
	if err := s.persist(ctx, before, payment, "", nil); err != nil {
		return nil, err
	}

	s.record(opRefund, payment, outcome)
	return &outcome, nil
}

// Void cancels an unsettled authorization.
func (s *PaymentServiceImpl) Void(ctx context.Context, paymentID uuid.UUID) (*domain.LifecycleOutcome, error) {
	payment, err := s.loadPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	result, err := s.ops.Void(ctx, s.requestContext(payment), payment)
	if err != nil {
		return nil, err
	}

	before := payment.Clone()
	outcome := s.mapper.MapVoid(result, payment, s.now())
	if err := s.persist(ctx, before, payment, "", nil); err != nil {
		return nil, err
	}

	s.record(opVoid, payment, outcome)
	return &outcome, nil
}

// RefreshStatus re-reads the gateway transaction and re-classifies the payment.
// An empty outerID uses the payment's recorded outer transaction id.
func (s *PaymentServiceImpl) RefreshStatus(ctx context.Context, paymentID uuid.UUID, outerID string) (*domain.LifecycleOutcome, error) {
	payment, err := s.loadPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, payment, outerID)
}

// RefreshByOuterID refreshes the payment recorded against a gateway transaction id.
func (s *PaymentServiceImpl) RefreshByOuterID(ctx context.Context, outerID string) (*domain.LifecycleOutcome, error) {
	payment, err := s.payments.GetByOuterID(ctx, outerID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get payment by outer id: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("Payment")
	}
	return s.refresh(ctx, payment, outerID)
}

// LookupTransaction reads a gateway transaction for operators. No payment is loaded or changed.
func (s *PaymentServiceImpl) LookupTransaction(ctx context.Context, outerID string) (*domain.GatewayOperationResult, error) {
	rc := domain.PaymentRequestContext{Sandbox: s.cfg.Sandbox, SingleMessageMode: s.cfg.SingleMessageMode}
	result, err := s.ops.Fetch(ctx, rc, outerID)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("outer_id", outerID).
		Str("gateway_status", result.RawStatus).
		Msg("transaction looked up")
	return result, nil
}

func (s *PaymentServiceImpl) refresh(ctx context.Context, payment *domain.PaymentRecord, outerID string) (*domain.LifecycleOutcome, error) {
	if outerID == "" {
		outerID = payment.OuterTransactionID
	}
	if outerID == "" {
		return nil, apperror.ErrSequenceViolation("payment has no gateway transaction to refresh")
	}

	order, err := s.loadOrder(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}

	result, err := s.ops.Fetch(ctx, s.requestContext(payment), outerID)
	if err != nil {
		return nil, err
	}
	s.logUnmapped(opRefresh, payment, result)

	before, orderStatus := payment.Clone(), order.Status
	outcome := s.mapper.MapRefresh(result, payment, order, s.cfg.SingleMessageMode, s.now())
	if err := s.persist(ctx, before, payment, orderStatus, order); err != nil {
		return nil, err
	}

	s.record(opRefresh, payment, outcome)
	return &outcome, nil
}

func (s *PaymentServiceImpl) requestContext(p *domain.PaymentRecord) domain.PaymentRequestContext {
	return domain.PaymentRequestContext{
		Sandbox:           s.cfg.Sandbox,
		SingleMessageMode: s.cfg.SingleMessageMode,
		OuterPaymentID:    p.OuterTransactionID,
	}
}

func (s *PaymentServiceImpl) load(ctx context.Context, paymentID uuid.UUID) (*domain.PaymentRecord, *domain.Order, error) {
	payment, err := s.loadPayment(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	order, err := s.loadOrder(ctx, payment.OrderID)
	if err != nil {
		return nil, nil, err
	}
	return payment, order, nil
}

func (s *PaymentServiceImpl) loadPayment(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("Payment")
	}
	return payment, nil
}

func (s *PaymentServiceImpl) loadOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("Order")
	}
	return order, nil
}

// persist writes the payment, its new transactions and the order status in one
// database transaction. Nothing is written when the mapper left both unchanged.
func (s *PaymentServiceImpl) persist(
	ctx context.Context,
	before, after *domain.PaymentRecord,
	orderStatusBefore string,
	order *domain.Order,
) error {
	orderChanged := order != nil && order.Status != orderStatusBefore
	if reflect.DeepEqual(before, after) && !orderChanged {
		return nil
	}

	now := s.now()
	after.UpdatedAt = now

	newTxns := make([]domain.PaymentTransaction, 0, len(after.Transactions)-len(before.Transactions))
	for i := len(before.Transactions); i < len(after.Transactions); i++ {
		txn := &after.Transactions[i]
		if txn.ID == uuid.Nil {
			txn.ID = uuid.New()
		}
		txn.PaymentID = after.ID
		newTxns = append(newTxns, *txn)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.payments.Update(ctx, dbTx, after); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update payment: %w", err))
	}
	if len(newTxns) > 0 {
		if err := s.payments.AppendTransactions(ctx, dbTx, after.ID, newTxns); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("append transactions: %w", err))
		}
	}
	if orderChanged {
		if err := s.orders.UpdateStatus(ctx, dbTx, order.ID, order.Status); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update order status: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

func (s *PaymentServiceImpl) record(op string, payment *domain.PaymentRecord, outcome domain.LifecycleOutcome) {
	s.metrics.ObserveOutcome(op, outcome.Kind)

	ev := s.log.Info()
	if !outcome.IsSuccess {
		ev = s.log.Warn()
	}
	ev.Str("operation", op).
		Str("payment_id", payment.ID.String()).
		Str("outcome", string(outcome.Kind)).
		Str("status", string(payment.Status)).
		Str("gateway_status", string(outcome.GatewayStatus)).
		Msg("payment operation classified")
}

// logUnmapped reports statuses outside the known set along with the raw payload.
func (s *PaymentServiceImpl) logUnmapped(op string, payment *domain.PaymentRecord, result *domain.GatewayOperationResult) {
	if result.Status != domain.GatewayStatusUnknown {
		return
	}
	s.log.Error().
		Err(apperror.ErrUnmappedGatewayStatus(result.RawStatus)).
		Str("operation", op).
		Str("payment_id", payment.ID.String()).
		RawJSON("response", rawOrEmpty(result)).
		Msg("unmapped gateway status")
}

func rawOrEmpty(result *domain.GatewayOperationResult) []byte {
	if len(result.Raw) == 0 {
		return []byte("{}")
	}
	return result.Raw
}
