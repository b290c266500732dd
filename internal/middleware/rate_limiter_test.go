package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fuanyi-237/inventory-hyclass/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimitedRouter(t *testing.T, maxRequests int) (*gin.Engine, *testutil.TestRedis) {
	gin.SetMode(gin.TestMode)

	testRedis := testutil.SetupTestRedis(t)
	t.Cleanup(func() { testRedis.Teardown(t) })

	client := redis.NewClient(&redis.Options{Addr: testRedis.Server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRateLimiter(client, RateLimiterConfig{
		MaxRequests: maxRequests,
		Window:      time.Minute,
		BlockTime:   time.Minute,
	})

	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router, testRedis
}

func doRequest(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRateLimiter_UnderLimit(t *testing.T) {
	router, _ := setupRateLimitedRouter(t, 3)

	for i := 0; i < 3; i++ {
		recorder := doRequest(router)
		assert.Equal(t, http.StatusOK, recorder.Code, "Request %d should pass", i+1)
	}
}

func TestRateLimiter_OverLimit(t *testing.T) {
	router, _ := setupRateLimitedRouter(t, 2)

	for i := 0; i < 2; i++ {
		recorder := doRequest(router)
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	recorder := doRequest(router)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("Retry-After"), "Throttled response should tell the client when to retry")
	assert.Contains(t, recorder.Body.String(), "rate_limited")
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	router, testRedis := setupRateLimitedRouter(t, 1)

	recorder := doRequest(router)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(router)
	require.Equal(t, http.StatusTooManyRequests, recorder.Code)

	// miniredis clock: advance past the window and the counter resets
	testRedis.Server.FastForward(2 * time.Minute)

	recorder = doRequest(router)
	assert.Equal(t, http.StatusOK, recorder.Code, "Limit should reset after the window expires")
}

func TestRateLimiter_FailOpen(t *testing.T) {
	router, testRedis := setupRateLimitedRouter(t, 1)

	// A dead Redis must not lock clients out
	testRedis.Server.Close()

	for i := 0; i < 3; i++ {
		recorder := doRequest(router)
		assert.Equal(t, http.StatusOK, recorder.Code, "Requests should pass when Redis is unavailable")
	}
}
