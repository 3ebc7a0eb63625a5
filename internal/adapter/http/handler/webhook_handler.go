package handler

import (
	"io"
	"net/http"

	"cybersource-gateway/internal/adapter/http/dto"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"
	"cybersource-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderNotificationSignature carries the HMAC of a delivered notification body.
const HeaderNotificationSignature = "v-c-signature"

// WebhookHandler serves the gateway's delivery endpoints and the operator
// subscription endpoints.
type WebhookHandler struct {
	manager       ports.WebhookManager
	notifications ports.NotificationHandler
	log           zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(manager ports.WebhookManager, notifications ports.NotificationHandler, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{manager: manager, notifications: notifications, log: log}
}

// Notify handles POST /api/v1/webhooks/notifications.
func (h *WebhookHandler) Notify(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	outcome, err := h.notifications.Handle(c.Request.Context(), body, c.GetHeader(HeaderNotificationSignature))
	switch {
	case apperror.HasCode(err, apperror.CodeDuplicateNotification):
		response.OK(c, dto.NotificationResponse{Result: "duplicate"})
	case err != nil:
		response.Error(c, err)
	case outcome == nil:
		response.OK(c, dto.NotificationResponse{Result: "ignored"})
	default:
		out := toOutcomeResponse(outcome)
		response.OK(c, dto.NotificationResponse{Result: "processed", Outcome: &out})
	}
}

// HealthCheck handles GET and POST /api/v1/webhooks/health-check. The gateway
// probes it before activating a subscription.
func (h *WebhookHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Register handles POST /api/v1/webhooks/register.
func (h *WebhookHandler) Register(c *gin.Context) {
	if err := h.manager.Register(c.Request.Context(), requestBaseURL(c)); err != nil {
		response.Error(c, err)
		return
	}
	h.list(c)
}

// Unregister handles POST /api/v1/webhooks/unregister.
func (h *WebhookHandler) Unregister(c *gin.Context) {
	if err := h.manager.Unregister(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// List handles GET /api/v1/webhooks.
func (h *WebhookHandler) List(c *gin.Context) {
	h.list(c)
}

func (h *WebhookHandler) list(c *gin.Context) {
	subs, err := h.manager.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.WebhookResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, dto.WebhookResponse{
			ID:         s.ID,
			Name:       s.Name,
			ProductID:  s.ProductID,
			EventTypes: s.EventTypes,
			Status:     string(s.Status),
			WebhookURL: s.WebhookURL,
		})
	}
	response.OK(c, out)
}

// requestBaseURL is the scheme and host the caller reached this service on.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto == "https" || proto == "http" {
		scheme = proto
	}
	host := c.Request.Host
	if fwd := c.GetHeader("X-Forwarded-Host"); fwd != "" {
		host = fwd
	}
	if host == "" {
		return ""
	}
	return scheme + "://" + host
}
