package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cybersource-gateway/config"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	pathCaptureContext = "/microform/v2/sessions"
	pathPayments       = "/pts/v2/payments"
	pathTransactions   = "/tss/v2/transactions"
	pathPublicKeys     = "/flex/v2/public-keys"
	pathWebhooks       = "/notification-subscriptions/v2/webhooks"
)

// APIError is a non-2xx gateway response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Is lets errors.Is(err, ports.ErrGatewayNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ports.ErrGatewayNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err carries a gateway 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ports.ErrGatewayNotFound)
}

// Client is the REST client for the card gateway. It implements
// ports.GatewayClient, ports.PublicKeyFetcher and ports.WebhookGateway.
// Each call opens its own request; nothing is shared between calls except the connection pool.
type Client struct {
	http    *resty.Client
	cfg     config.GatewayConfig
	signer  *httpSigner
	metrics ports.Metrics
	log     zerolog.Logger
	now     func() time.Time
}

// NewClient creates a gateway client. metrics may be nil.
func NewClient(cfg config.GatewayConfig, metrics ports.Metrics, log zerolog.Logger) (*Client, error) {
	signer, err := newHTTPSigner(cfg.MerchantID, cfg.MerchantKeyID, cfg.MerchantSecretKey)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/hal+json;charset=utf-8").
		SetHeader("User-Agent", "cybersource-gateway/1.0")

	return &Client{
		http:    httpClient,
		cfg:     cfg,
		signer:  signer,
		metrics: metrics,
		log:     log,
		now:     time.Now,
	}, nil
}

// do signs and executes one request. Transport failures come back as apperror GW_001;
// response status handling is left to the caller.
func (c *Client) do(ctx context.Context, op string, sandbox bool, method, target string, body any) (*resty.Response, error) {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("marshal %s request: %w", op, err))
		}
	}

	host := c.cfg.Host(sandbox)
	req := c.http.R().
		SetContext(ctx).
		SetHeaders(c.signer.headers(method, host, target, raw, c.now()))
	if raw != nil {
		req.SetHeader("Content-Type", "application/json;charset=utf-8").SetBody(raw)
	}

	start := time.Now()
	resp, err := req.Execute(method, c.cfg.BaseURL(sandbox)+target)
	if c.metrics != nil {
		c.metrics.ObserveGatewayCall(op, time.Since(start), err)
	}
	if err != nil {
		return nil, apperror.ErrTransport(fmt.Errorf("%s %s: %w", method, target, err))
	}

	c.log.Debug().
		Str("op", op).
		Bool("sandbox", sandbox).
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Msg("gateway call")

	return resp, nil
}

func apiError(resp *resty.Response) error {
	return apperror.ErrGatewayAPI(resp.StatusCode(), &APIError{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
	})
}

func isSuccess(resp *resty.Response) bool {
	return resp.StatusCode() >= 200 && resp.StatusCode() < 300
}
