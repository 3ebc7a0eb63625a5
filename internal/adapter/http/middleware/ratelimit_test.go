package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cybersource-gateway/config"
	redisStore "cybersource-gateway/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(t *testing.T) *gin.Engine {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := redisStore.NewRateLimitStore(client)
	rule := RateLimitRule{Limit: 3, Window: time.Minute}

	r := gin.New()
	r.GET("/test", RateLimiter(store, GroupPayments, rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func requestFrom(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = ip + ":40000"
	return req
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, requestFrom("10.0.0.1"))
		assert.Equal(t, http.StatusOK, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, requestFrom("10.0.0.1"))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, requestFrom("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_KeysByClientIP(t *testing.T) {
	router := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, requestFrom("10.0.0.1"))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, requestFrom("10.0.0.2"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitRules(t *testing.T) {
	rules := RateLimitRules(config.RateLimitConfig{Window: 30 * time.Second, Payments: 100, Notifications: 0})

	assert.Equal(t, RateLimitRule{Limit: 100, Window: 30 * time.Second}, rules[GroupPayments])
	_, ok := rules[GroupNotifications]
	assert.False(t, ok, "zero limit disables the group")

	rules = RateLimitRules(config.RateLimitConfig{Notifications: 5})
	assert.Equal(t, time.Minute, rules[GroupNotifications].Window)
}
