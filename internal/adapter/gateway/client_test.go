package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"cybersource-gateway/config"
	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

func newTestClient(t *testing.T, sandboxURL, productionURL string) *Client {
	t.Helper()
	sb, err := url.Parse(sandboxURL)
	require.NoError(t, err)
	prod, err := url.Parse(productionURL)
	require.NoError(t, err)

	c, err := NewClient(config.GatewayConfig{
		MerchantID:        "acme_shop",
		MerchantKeyID:     "key-123",
		MerchantSecretKey: testSecret,
		Sandbox:           true,
		SandboxHost:       sb.Host,
		ProductionHost:    prod.Host,
		Scheme:            "http",
		Timeout:           5 * time.Second,
	}, nil, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestNewClient_InvalidSecret(t *testing.T) {
	_, err := NewClient(config.GatewayConfig{MerchantSecretKey: "not base64!!"}, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestSigner_Headers(t *testing.T) {
	s, err := newHTTPSigner("acme_shop", "key-123", testSecret)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	body := []byte(`{"a":1}`)
	h := s.headers(http.MethodPost, "apitest.example.com", "/pts/v2/payments", body, now)

	assert.Equal(t, "acme_shop", h["v-c-merchant-id"])
	assert.Equal(t, "Sun, 01 Mar 2026 12:00:00 GMT", h["Date"])

	sum := sha256.Sum256(body)
	assert.Equal(t, "SHA-256="+base64.StdEncoding.EncodeToString(sum[:]), h["Digest"])

	signingString := strings.Join([]string{
		"host: apitest.example.com",
		"date: Sun, 01 Mar 2026 12:00:00 GMT",
		"request-target: post /pts/v2/payments",
		"digest: " + h["Digest"],
		"v-c-merchant-id: acme_shop",
	}, "\n")
	mac := hmac.New(sha256.New, []byte("0123456789abcdef0123456789abcdef"))
	mac.Write([]byte(signingString))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.Equal(t,
		`keyid="key-123", algorithm="HmacSHA256", headers="host date request-target digest v-c-merchant-id", signature="`+expected+`"`,
		h["Signature"])
}

func TestSigner_GetHasNoDigest(t *testing.T) {
	s, err := newHTTPSigner("acme_shop", "key-123", testSecret)
	require.NoError(t, err)

	h := s.headers(http.MethodGet, "apitest.example.com", "/flex/v2/public-keys/k1", nil, time.Now())
	_, ok := h["Digest"]
	assert.False(t, ok)
	assert.Contains(t, h["Signature"], `headers="host date request-target v-c-merchant-id"`)
}

func TestClient_CreatePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pts/v2/payments", r.URL.Path)
		assert.Equal(t, "acme_shop", r.Header.Get("v-c-merchant-id"))
		assert.Contains(t, r.Header.Get("Signature"), `keyid="key-123"`)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, digest(body), r.Header.Get("Digest"))

		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))
		amounts := req["orderInformation"].(map[string]any)["amountDetails"].(map[string]any)
		assert.Equal(t, "1234.50", amounts["totalAmount"])
		assert.Equal(t, "tok-1", req["tokenInformation"].(map[string]any)["transientTokenJwt"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"7012345678","status":"AUTHORIZED","processorInformation":{"transactionId":"016153570198200","responseCode":"00"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "http://prod.invalid")
	res, err := c.CreatePayment(context.Background(), true, &ports.CreatePaymentRequest{
		ClientReferenceInformation: ports.ClientReference{Code: "CO-1"},
		OrderInformation: ports.OrderInformation{
			AmountDetails: ports.AmountDetails{TotalAmount: "1234.50", Currency: "USD"},
		},
		TokenInformation: &ports.TokenInformation{TransientTokenJwt: "tok-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GatewayStatusAuthorized, res.Status)
	assert.Equal(t, "7012345678", res.ID)
	assert.Equal(t, "016153570198200", res.TransactionID)
	assert.Equal(t, "00", res.ProcessorResponseCode)
	assert.JSONEq(t, `{"id":"7012345678","status":"AUTHORIZED","processorInformation":{"transactionId":"016153570198200","responseCode":"00"}}`, string(res.Raw))
}

func TestClient_CreatePayment_InvalidRequestIsResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"INVALID_REQUEST","reason":"MISSING_FIELD","message":"Declined - The request is missing one or more fields"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "http://prod.invalid")
	res, err := c.CreatePayment(context.Background(), true, &ports.CreatePaymentRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.GatewayStatusInvalidRequest, res.Status)
	assert.Equal(t, "MISSING_FIELD", res.ErrorReason)
	assert.Equal(t, "Declined - The request is missing one or more fields", res.Reason())
}

func TestClient_ServerErrorIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream down`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "http://prod.invalid")
	_, err := c.VoidPayment(context.Background(), true, "7012345678", &ports.VoidPaymentRequest{})
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeGatewayAPI))
	assert.False(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Body)
}

func TestClient_FetchPublicKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/flex/v2/public-keys/k1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"kty":"RSA","use":"enc","kid":"k1","n":"AQAB","e":"AQAB"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "http://prod.invalid")

	key, err := c.FetchPublicKey(context.Background(), true, "k1")
	require.NoError(t, err)
	assert.Equal(t, "k1", key.KeyID)
	assert.Equal(t, "AQAB", key.Exponent)

	_, err = c.FetchPublicKey(context.Background(), true, "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClient_SandboxSelectsHost(t *testing.T) {
	var sandboxHits, productionHits int
	sandbox := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sandboxHits++
		_, _ = w.Write([]byte(`{"kid":"k1"}`))
	}))
	defer sandbox.Close()
	production := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productionHits++
		_, _ = w.Write([]byte(`{"kid":"k1"}`))
	}))
	defer production.Close()

	c := newTestClient(t, sandbox.URL, production.URL)

	_, err := c.FetchPublicKey(context.Background(), false, "k1")
	require.NoError(t, err)
	assert.Equal(t, 0, sandboxHits)
	assert.Equal(t, 1, productionHits)

	_, err = c.FetchPublicKey(context.Background(), true, "k1")
	require.NoError(t, err)
	assert.Equal(t, 1, sandboxHits)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newTestClient(t, srv.URL, "http://prod.invalid")
	srv.Close()

	_, err := c.GetTransaction(context.Background(), true, "7012345678")
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeTransport))
}

func TestClient_GenerateCaptureContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/microform/v2/sessions", r.URL.Path)

		var req ports.CaptureContextRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"https://shop.test"}, req.TargetOrigins)
		assert.Equal(t, []string{"VISA", "MASTERCARD"}, req.AllowedCardNetworks)
		assert.Equal(t, "v2.0", req.ClientVersion)

		w.Header().Set("Content-Type", "application/jwt")
		_, _ = w.Write([]byte("eyJh.eyJi.c2ln\n"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "http://prod.invalid")
	token, err := c.GenerateCaptureContext(context.Background(), true, &ports.CaptureContextRequest{
		ClientVersion:       "v2.0",
		TargetOrigins:       []string{"https://shop.test"},
		AllowedCardNetworks: []string{"VISA", "MASTERCARD"},
	})
	require.NoError(t, err)
	assert.Equal(t, "eyJh.eyJi.c2ln", token)
}

func TestClient_Webhooks(t *testing.T) {
	var deleted []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/notification-subscriptions/v2/webhooks":
			assert.Equal(t, "acme_shop", r.URL.Query().Get("organizationId"))
			assert.Equal(t, "decisionManager", r.URL.Query().Get("productId"))
			if r.URL.Query().Get("eventType") == domain.EventDecisionReject {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(`[{"webhookId":"wh-1","name":"Card Gateway Webhook","productId":"decisionManager","eventTypes":["risk.casemanagement.decision.accept"],"status":"ACTIVE","createdOn":"2026-01-02T03:04:05Z"}]`))
		case r.Method == http.MethodPost:
			var req ports.CreateWebhookRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "ARITHMETIC", req.RetryPolicy.Algorithm)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"webhookId":"wh-2","name":"` + req.Name + `","status":"INACTIVE"}`))
		case r.Method == http.MethodDelete:
			deleted = append(deleted, strings.TrimPrefix(r.URL.Path, "/notification-subscriptions/v2/webhooks/"))
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "http://prod.invalid")
	ctx := context.Background()

	subs, err := c.ListWebhooks(ctx, "acme_shop", "decisionManager", domain.EventDecisionAccept)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "wh-1", subs[0].ID)
	assert.Equal(t, domain.WebhookStatusActive, subs[0].Status)
	require.NotNil(t, subs[0].CreatedAt)

	_, err = c.ListWebhooks(ctx, "acme_shop", "decisionManager", domain.EventDecisionReject)
	assert.True(t, IsNotFound(err))

	created, err := c.CreateWebhook(ctx, &ports.CreateWebhookRequest{
		Name:        "Card Gateway Webhook",
		RetryPolicy: ports.WebhookRetryPolicy{Algorithm: "ARITHMETIC"},
	})
	require.NoError(t, err)
	assert.Equal(t, "wh-2", created.ID)

	require.NoError(t, c.DeleteWebhook(ctx, "wh-1"))
	assert.Equal(t, []string{"wh-1"}, deleted)
}
