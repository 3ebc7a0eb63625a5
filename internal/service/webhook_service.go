package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cybersource-gateway/config"
	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// Paths the gateway delivers to, relative to the public base URL.
const (
	NotificationPath = "/api/v1/webhooks/notifications"
	HealthCheckPath  = "/api/v1/webhooks/health-check"
)

// notificationScopeQuirk appears in creation errors for products the
// organization is not entitled to. The subscription can't be created and the
// gateway will never deliver for it, so the error is not fatal.
const notificationScopeQuirk = "Notificationsubscriptionsv1webhooksNotificationScope"

// defaultRetryPolicy is how the gateway retries a failed delivery.
var defaultRetryPolicy = ports.WebhookRetryPolicy{
	Algorithm:       "ARITHMETIC",
	FirstRetry:      1,
	Interval:        1,
	NumberOfRetries: 3,
	DeactivateFlag:  "false",
}

// WebhookManagerService implements ports.WebhookManager.
type WebhookManagerService struct {
	gateway        ports.WebhookGateway
	cfg            config.WebhookConfig
	organizationID string
	log            zerolog.Logger
}

// NewWebhookManager creates a new WebhookManagerService.
func NewWebhookManager(
	gateway ports.WebhookGateway,
	cfg config.WebhookConfig,
	organizationID string,
	log zerolog.Logger,
) *WebhookManagerService {
	return &WebhookManagerService{
		gateway:        gateway,
		cfg:            cfg,
		organizationID: organizationID,
		log:            log,
	}
}

// Register reconciles the configured subscription. The configured proxy domain
// wins over baseURL, which is normally the scheme and host of the triggering request.
func (s *WebhookManagerService) Register(ctx context.Context, baseURL string) error {
	base := strings.TrimRight(s.cfg.ProxyDomain, "/")
	if base == "" {
		base = strings.TrimRight(baseURL, "/")
	}
	if base == "" {
		return apperror.Validation("webhook base url is required: configure webhook.proxy_domain")
	}
	return s.reconcile(ctx, base, s.cfg.Name, s.cfg.EventTypes)
}

// Reconcile deletes every subscription named name and creates a fresh one for
// eventTypes, leaving exactly one. It uses the configured proxy domain.
func (s *WebhookManagerService) Reconcile(ctx context.Context, name string, eventTypes []string) error {
	base := strings.TrimRight(s.cfg.ProxyDomain, "/")
	if base == "" {
		return apperror.Validation("webhook base url is required: configure webhook.proxy_domain")
	}
	return s.reconcile(ctx, base, name, eventTypes)
}

// Unregister deletes every subscription carrying the configured name.
func (s *WebhookManagerService) Unregister(ctx context.Context) error {
	subs, err := s.listFor(ctx, s.cfg.EventTypes)
	if err != nil {
		return err
	}
	return s.deleteNamed(ctx, subs, s.cfg.Name)
}

// List returns the subscriptions for the configured event types, first-seen order, no duplicates.
func (s *WebhookManagerService) List(ctx context.Context) ([]domain.WebhookSubscription, error) {
	return s.listFor(ctx, s.cfg.EventTypes)
}

func (s *WebhookManagerService) reconcile(ctx context.Context, base, name string, eventTypes []string) error {
	if name == "" {
		return apperror.Validation("webhook name is required")
	}
	if len(eventTypes) == 0 {
		return apperror.Validation("at least one webhook event type is required")
	}

	existing, err := s.listFor(ctx, eventTypes)
	if err != nil {
		return err
	}
	if err := s.deleteNamed(ctx, existing, name); err != nil {
		return err
	}

	req := &ports.CreateWebhookRequest{
		Name:           name,
		Description:    s.cfg.Description,
		OrganizationID: s.organizationID,
		ProductID:      s.cfg.ProductID,
		EventTypes:     eventTypes,
		WebhookURL:     base + NotificationPath,
		HealthCheckURL: base + HealthCheckPath,
		RetryPolicy:    defaultRetryPolicy,
		SecurityPolicy: ports.WebhookSecurityPolicy{SecurityType: "KEY", ProxyType: "external"},
	}

	created, err := s.gateway.CreateWebhook(ctx, req)
	if err != nil {
		if strings.Contains(err.Error(), notificationScopeQuirk) {
			s.log.Warn().Err(err).Str("name", name).Msg("webhook product not enabled for organization, skipping")
			return nil
		}
		return fmt.Errorf("create webhook %q: %w", name, err)
	}

	s.log.Info().
		Str("webhook_id", created.ID).
		Str("name", name).
		Strs("event_types", eventTypes).
		Str("url", req.WebhookURL).
		Msg("webhook registered")
	return nil
}

// listFor queries once per event type. A not-found answer means no
// subscriptions for that type.
func (s *WebhookManagerService) listFor(ctx context.Context, eventTypes []string) ([]domain.WebhookSubscription, error) {
	seen := make(map[string]struct{})
	var out []domain.WebhookSubscription

	for _, eventType := range eventTypes {
		subs, err := s.gateway.ListWebhooks(ctx, s.organizationID, s.cfg.ProductID, eventType)
		if err != nil {
			if errors.Is(err, ports.ErrGatewayNotFound) {
				continue
			}
			return nil, fmt.Errorf("list webhooks for %s: %w", eventType, err)
		}
		for _, sub := range subs {
			if _, dup := seen[sub.ID]; dup {
				continue
			}
			seen[sub.ID] = struct{}{}
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *WebhookManagerService) deleteNamed(ctx context.Context, subs []domain.WebhookSubscription, name string) error {
	for _, sub := range subs {
		if sub.Name != name {
			continue
		}
		if err := s.gateway.DeleteWebhook(ctx, sub.ID); err != nil {
			if errors.Is(err, ports.ErrGatewayNotFound) {
				continue
			}
			return fmt.Errorf("delete webhook %s: %w", sub.ID, err)
		}
		s.log.Info().Str("webhook_id", sub.ID).Str("name", name).Msg("webhook deleted")
	}
	return nil
}
