package service

import (
	"context"
	"encoding/json"
	"fmt"

	"cybersource-gateway/config"
	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// Notification handling results, used as metric labels.
const (
	notificationProcessed = "processed"
	notificationIgnored   = "ignored"
	notificationDuplicate = "duplicate"
	notificationRejected  = "rejected"
	notificationFailed    = "failed"
)

// notificationEnvelope is the delivered body. Decision events name the
// transaction in payload[0].data.id when transactionId is absent.
type notificationEnvelope struct {
	domain.Notification
	Payload []struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	} `json:"payload"`
}

// NotificationService implements ports.NotificationHandler.
type NotificationService struct {
	payments ports.PaymentService
	store    ports.NotificationStore
	sigSvc   ports.SignatureService
	metrics  ports.Metrics
	cfg      config.WebhookConfig
	log      zerolog.Logger
}

// NewNotificationService creates a new NotificationService. metrics may be nil.
func NewNotificationService(
	payments ports.PaymentService,
	store ports.NotificationStore,
	sigSvc ports.SignatureService,
	metrics ports.Metrics,
	cfg config.WebhookConfig,
	log zerolog.Logger,
) *NotificationService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &NotificationService{
		payments: payments,
		store:    store,
		sigSvc:   sigSvc,
		metrics:  metrics,
		cfg:      cfg,
		log:      log,
	}
}

// Handle verifies and de-duplicates a delivery, then refreshes the payment a
// fraud-review decision refers to. Non-decision events return a nil outcome.
func (s *NotificationService) Handle(ctx context.Context, body []byte, signature string) (*domain.LifecycleOutcome, error) {
	if s.cfg.VerifiesSignatures() && !s.sigSvc.Verify(s.cfg.SharedSecret, string(body), signature) {
		s.metrics.ObserveNotification("", notificationRejected)
		return nil, apperror.ErrInvalidNotificationSignature()
	}

	var env notificationEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		s.metrics.ObserveNotification("", notificationRejected)
		return nil, apperror.Validation(fmt.Sprintf("invalid notification body: %v", err))
	}
	n := env.Notification
	if n.TransactionID == "" && len(env.Payload) > 0 {
		n.TransactionID = env.Payload[0].Data.ID
	}

	logger := s.log.With().
		Str("notification_id", n.ID).
		Str("event_type", n.EventType).
		Str("transaction_id", n.TransactionID).
		Logger()

	key := domain.BuildNotificationKey(n.ID)
	if n.ID != "" {
		fresh, err := s.store.CheckAndSet(ctx, key, s.cfg.NotificationTTL)
		if err != nil {
			logger.Warn().Err(err).Msg("notification de-duplication unavailable, processing anyway")
		} else if !fresh {
			s.metrics.ObserveNotification(n.EventType, notificationDuplicate)
			return nil, apperror.ErrDuplicateNotification()
		}
	}

	if !n.IsDecision() {
		logger.Debug().Msg("ignoring non-decision notification")
		s.metrics.ObserveNotification(n.EventType, notificationIgnored)
		return nil, nil
	}
	if n.TransactionID == "" {
		s.metrics.ObserveNotification(n.EventType, notificationRejected)
		return nil, apperror.Validation("decision notification carries no transaction id")
	}

	outcome, err := s.payments.RefreshByOuterID(ctx, n.TransactionID)
	if err != nil {
		logger.Error().Err(err).Msg("refresh after decision failed")
		if n.ID != "" {
			if ferr := s.store.Forget(ctx, key); ferr != nil {
				logger.Warn().Err(ferr).Msg("could not release notification key")
			}
		}
		s.metrics.ObserveNotification(n.EventType, notificationFailed)
		return nil, err
	}

	logger.Info().
		Str("outcome", string(outcome.Kind)).
		Str("status", string(outcome.NewStatus)).
		Msg("decision notification processed")
	s.metrics.ObserveNotification(n.EventType, notificationProcessed)
	return outcome, nil
}
