package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"
)

type webhookResponse struct {
	WebhookID  string   `json:"webhookId"`
	Name       string   `json:"name"`
	ProductID  string   `json:"productId"`
	EventTypes []string `json:"eventTypes"`
	Status     string   `json:"status"`
	WebhookURL string   `json:"webhookUrl"`
	CreatedOn  string   `json:"createdOn"`
}

func (w webhookResponse) toDomain() domain.WebhookSubscription {
	sub := domain.WebhookSubscription{
		ID:         w.WebhookID,
		Name:       w.Name,
		ProductID:  w.ProductID,
		EventTypes: w.EventTypes,
		Status:     domain.WebhookStatus(w.Status),
		WebhookURL: w.WebhookURL,
	}
	if t, err := time.Parse(time.RFC3339, w.CreatedOn); err == nil {
		sub.CreatedAt = &t
	}
	return sub
}

// ListWebhooks lists subscriptions for one event type. The gateway scopes listing per event type.
func (c *Client) ListWebhooks(ctx context.Context, organizationID, productID, eventType string) ([]domain.WebhookSubscription, error) {
	q := url.Values{}
	q.Set("organizationId", organizationID)
	q.Set("productId", productID)
	q.Set("eventType", eventType)

	resp, err := c.do(ctx, "webhook_list", c.cfg.Sandbox, http.MethodGet, pathWebhooks+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp) {
		return nil, apiError(resp)
	}

	var items []webhookResponse
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, apperror.ErrGatewayAPI(resp.StatusCode(), fmt.Errorf("decode webhook list: %w", err))
	}

	subs := make([]domain.WebhookSubscription, 0, len(items))
	for _, item := range items {
		subs = append(subs, item.toDomain())
	}
	return subs, nil
}

// CreateWebhook creates a subscription.
func (c *Client) CreateWebhook(ctx context.Context, req *ports.CreateWebhookRequest) (*domain.WebhookSubscription, error) {
	resp, err := c.do(ctx, "webhook_create", c.cfg.Sandbox, http.MethodPost, pathWebhooks, req)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp) {
		return nil, apiError(resp)
	}

	var created webhookResponse
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return nil, apperror.ErrGatewayAPI(resp.StatusCode(), fmt.Errorf("decode webhook: %w", err))
	}
	sub := created.toDomain()
	return &sub, nil
}

// DeleteWebhook removes a subscription by id.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	resp, err := c.do(ctx, "webhook_delete", c.cfg.Sandbox, http.MethodDelete, pathWebhooks+"/"+url.PathEscape(webhookID), nil)
	if err != nil {
		return err
	}
	if !isSuccess(resp) {
		return apiError(resp)
	}
	return nil
}
