package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestIPRateLimiter_BurstThenRefill(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 2)
	l.now = func() time.Time { return now }

	require.True(t, l.Allow("10.0.0.1"))
	require.True(t, l.Allow("10.0.0.1"))
	require.False(t, l.Allow("10.0.0.1"))
	require.True(t, l.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	require.True(t, l.Allow("10.0.0.1"))
}

func TestIPRateLimiter_ForgetsIdleVisitors(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 1)
	l.now = func() time.Time { return now }

	require.True(t, l.Allow("10.0.0.1"))
	now = now.Add(idleLimiterTTL + time.Second)
	require.True(t, l.Allow("10.0.0.2"))
	require.Len(t, l.visitors, 1)
}

func TestIPRateLimiter_SweepsAtMostOncePerInterval(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 1)
	l.now = func() time.Time { return now }

	require.True(t, l.Allow("10.0.0.1"))
	require.Equal(t, now, l.lastSweep)

	// idle entries outlive the TTL until the next sweep is due
	l.visitors["10.0.0.1"].lastSeen = now.Add(-2 * idleLimiterTTL)
	now = now.Add(sweepInterval / 2)
	require.True(t, l.Allow("10.0.0.2"))
	require.Len(t, l.visitors, 2)

	now = now.Add(sweepInterval / 2)
	require.True(t, l.Allow("10.0.0.3"))
	require.Len(t, l.visitors, 2)
	require.NotContains(t, l.visitors, "10.0.0.1")
	require.Equal(t, now, l.lastSweep)
}

func TestRateLimitMiddleware_Rejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", RateLimitMiddleware(NewIPRateLimiter(0.001, 1)), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Contains(t, w.Body.String(), "RATE_LIMITED")
}
