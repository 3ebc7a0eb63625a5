package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cybersource-gateway/config"
	"cybersource-gateway/internal/adapter/http/middleware"
	redisStore "cybersource-gateway/internal/adapter/storage/redis"
	"cybersource-gateway/internal/core/domain"
	"cybersource-gateway/internal/core/ports"
	"cybersource-gateway/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	payments      *mocks.MockPaymentService
	manager       *mocks.MockWebhookManager
	notifications *mocks.MockNotificationHandler
	hash          *mocks.MockHashService
}

func setupRouter(t *testing.T, mutate func(*RouterDeps)) (*gin.Engine, routerFixture) {
	ctrl := gomock.NewController(t)
	f := routerFixture{
		payments:      mocks.NewMockPaymentService(ctrl),
		manager:       mocks.NewMockWebhookManager(ctrl),
		notifications: mocks.NewMockNotificationHandler(ctrl),
		hash:          mocks.NewMockHashService(ctrl),
	}
	deps := RouterDeps{
		PaymentSvc:      f.payments,
		WebhookManager:  f.manager,
		Notifications:   f.notifications,
		HashSvc:         f.hash,
		OperatorKeyHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		HealthCheckers:  []ports.HealthChecker{fakeChecker{name: "postgresql"}},
		Logger:          zerolog.Nop(),
	}
	if mutate != nil {
		mutate(&deps)
	}
	return SetupRouter(deps), f
}

func serve(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_HealthAndRequestID(t *testing.T) {
	r, _ := setupRouter(t, nil)

	w := serve(r, http.MethodGet, "/health", "", map[string]string{middleware.HeaderRequestID: "req-abc"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-abc", w.Header().Get(middleware.HeaderRequestID))
}

func TestRouter_PaymentRoutes(t *testing.T) {
	r, f := setupRouter(t, nil)
	paymentID := uuid.New()
	accepted := &domain.LifecycleOutcome{Kind: domain.OutcomeVoidAccepted, IsSuccess: true, NewStatus: domain.PaymentStatusVoided}

	f.hash.EXPECT().Verify("op-key", gomock.Any()).Return(true, nil)
	f.payments.EXPECT().Void(gomock.Any(), paymentID).Return(accepted, nil)

	w := serve(r, http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/void", "",
		map[string]string{middleware.HeaderOperatorKey: "op-key"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	assert.Contains(t, w.Body.String(), `"request_id"`)
}

func TestRouter_StorefrontPaymentRoutesArePublic(t *testing.T) {
	r, f := setupRouter(t, nil)
	paymentID := uuid.New()

	f.payments.EXPECT().IssueCaptureContext(gomock.Any(), "").Return(&domain.CaptureContext{SignedToken: "jwt"}, nil)
	f.payments.EXPECT().Authorize(gomock.Any(), paymentID, "tok").
		Return(&domain.LifecycleOutcome{Kind: domain.OutcomeApproved, IsSuccess: true}, nil)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/v1/payments/capture-context", "", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/authorize", `{"token":"tok"}`, nil).Code)
}

func TestRouter_MoneyRoutesRequireKey(t *testing.T) {
	r, f := setupRouter(t, nil)
	base := "/api/v1/payments/" + uuid.New().String()

	// The payment service mock has no expectations, so reaching a handler fails the test.
	routes := []struct{ method, path string }{
		{http.MethodPost, base + "/capture"},
		{http.MethodPost, base + "/refund"},
		{http.MethodPost, base + "/void"},
		{http.MethodPost, base + "/refresh-status"},
		{http.MethodGet, "/api/v1/payments/transactions/7000000000000000000001"},
	}
	for _, rt := range routes {
		t.Run(rt.path, func(t *testing.T) {
			w := serve(r, rt.method, rt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			f.hash.EXPECT().Verify("wrong", gomock.Any()).Return(false, nil)
			w = serve(r, rt.method, rt.path, "", map[string]string{middleware.HeaderOperatorKey: "wrong"})
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRouter_MoneyRoutesDisabledWithoutHash(t *testing.T) {
	r, _ := setupRouter(t, func(d *RouterDeps) { d.OperatorKeyHash = "" })

	w := serve(r, http.MethodPost, "/api/v1/payments/"+uuid.New().String()+"/refund", "",
		map[string]string{middleware.HeaderOperatorKey: "op-key"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_TransactionLookup(t *testing.T) {
	r, f := setupRouter(t, nil)

	f.hash.EXPECT().Verify("op-key", gomock.Any()).Return(true, nil)
	f.payments.EXPECT().LookupTransaction(gomock.Any(), "7000000000000000000001").
		Return(&domain.GatewayOperationResult{Status: domain.GatewayStatusAuthorized, RawStatus: "AUTHORIZED", ID: "7000000000000000000001"}, nil)

	w := serve(r, http.MethodGet, "/api/v1/payments/transactions/7000000000000000000001", "",
		map[string]string{middleware.HeaderOperatorKey: "op-key"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"raw_status":"AUTHORIZED"`)
}

func TestRouter_NotificationRouteIsPublic(t *testing.T) {
	r, f := setupRouter(t, nil)

	f.notifications.EXPECT().Handle(gomock.Any(), gomock.Any(), "sig").Return(nil, nil)

	w := serve(r, http.MethodPost, "/api/v1/webhooks/notifications", `{"notificationId":"n"}`,
		map[string]string{HeaderNotificationSignature: "sig"})
	assert.Equal(t, http.StatusOK, w.Code)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		w = serve(r, method, "/api/v1/webhooks/health-check", "", nil)
		assert.Equal(t, http.StatusOK, w.Code, method)
	}
}

func TestRouter_OperatorRoutesRequireKey(t *testing.T) {
	r, f := setupRouter(t, nil)

	w := serve(r, http.MethodGet, "/api/v1/webhooks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	f.hash.EXPECT().Verify("wrong", gomock.Any()).Return(false, nil)
	w = serve(r, http.MethodPost, "/api/v1/webhooks/unregister", "", map[string]string{middleware.HeaderOperatorKey: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	f.hash.EXPECT().Verify("op-key", gomock.Any()).Return(true, nil)
	f.manager.EXPECT().Unregister(gomock.Any()).Return(nil)
	w = serve(r, http.MethodPost, "/api/v1/webhooks/unregister", "", map[string]string{middleware.HeaderOperatorKey: "op-key"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_OperatorRoutesDisabledWithoutHash(t *testing.T) {
	r, _ := setupRouter(t, func(d *RouterDeps) { d.OperatorKeyHash = "" })

	w := serve(r, http.MethodPost, "/api/v1/webhooks/register", "", map[string]string{middleware.HeaderOperatorKey: "op-key"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "csg_router_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	r, _ := setupRouter(t, func(d *RouterDeps) { d.Metrics = reg })

	w := serve(r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "csg_router_test_total 1")
}

func TestRouter_NoMetricsWithoutGatherer(t *testing.T) {
	r, _ := setupRouter(t, nil)

	w := serve(r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_PaymentsRateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	r, f := setupRouter(t, func(d *RouterDeps) {
		d.RateLimitStore = redisStore.NewRateLimitStore(client)
		d.RateLimit = config.RateLimitConfig{Window: time.Minute, Payments: 2, Notifications: 10}
	})

	paymentID := uuid.New()
	f.payments.EXPECT().Authorize(gomock.Any(), paymentID, "tok").
		Return(&domain.LifecycleOutcome{Kind: domain.OutcomeApproved, IsSuccess: true}, nil).Times(2)

	path := "/api/v1/payments/" + paymentID.String() + "/authorize"
	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, path, `{"token":"tok"}`, nil).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, path, `{"token":"tok"}`, nil).Code)

	// Operator payment routes share the payments budget and are limited before the key check.
	w := serve(r, http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/void", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Notifications have their own budget.
	f.notifications.EXPECT().Handle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/v1/webhooks/notifications", `{}`, nil).Code)
}
