package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyMiddleware_WithHookedRedis(t *testing.T) {
	origGet := redisGet
	origSet := redisSet
	origSetNX := redisSetNX
	origDel := redisDel
	t.Cleanup(func() {
		redisGet = origGet
		redisSet = origSet
		redisSetNX = origSetNX
		redisDel = origDel
	})

	newRouter := func() *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(asUser(1), IdempotencyMiddleware())
		return r
	}

	t.Run("storage key carries user id", func(t *testing.T) {
		var seen string
		redisGet = func(_ context.Context, key string) (string, error) { seen = key; return "", redisv9.Nil }
		redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return true, nil }
		redisSet = func(context.Context, string, interface{}, time.Duration) error { return nil }
		redisDel = func(context.Context, string) error { return nil }

		r := newRouter()
		r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set(IdempotencyHeader, "abc")
		r.ServeHTTP(httptest.NewRecorder(), req)
		require.Equal(t, "idempotency:1:abc", seen)
	})

	t.Run("success stores and failure cleans up", func(t *testing.T) {
		setCalled := false
		delCalled := false
		redisGet = func(context.Context, string) (string, error) { return "", redisv9.Nil }
		redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return true, nil }
		redisSet = func(context.Context, string, interface{}, time.Duration) error { setCalled = true; return nil }
		redisDel = func(context.Context, string) error { delCalled = true; return nil }

		r := newRouter()
		r.POST("/ok", func(c *gin.Context) { c.String(http.StatusOK, `"done"`) })
		r.POST("/fail", func(c *gin.Context) { c.String(http.StatusBadRequest, "bad") })

		reqOK := httptest.NewRequest(http.MethodPost, "/ok", nil)
		reqOK.Header.Set(IdempotencyHeader, "key-3")
		wOK := httptest.NewRecorder()
		r.ServeHTTP(wOK, reqOK)
		require.Equal(t, http.StatusOK, wOK.Code)
		require.True(t, setCalled)
		require.False(t, delCalled)

		reqFail := httptest.NewRequest(http.MethodPost, "/fail", nil)
		reqFail.Header.Set(IdempotencyHeader, "key-4")
		wFail := httptest.NewRecorder()
		r.ServeHTTP(wFail, reqFail)
		require.Equal(t, http.StatusBadRequest, wFail.Code)
		require.True(t, delCalled)
	})

	t.Run("lost lock race returns conflict", func(t *testing.T) {
		redisGet = func(context.Context, string) (string, error) { return "", redisv9.Nil }
		redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return false, nil }

		r := newRouter()
		r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set(IdempotencyHeader, "key-5")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("setnx error returns conflict", func(t *testing.T) {
		redisGet = func(context.Context, string) (string, error) { return "", redisv9.Nil }
		redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) {
			return false, errors.New("boom")
		}

		r := newRouter()
		r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set(IdempotencyHeader, "key-6")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("read error passes through", func(t *testing.T) {
		redisGet = func(context.Context, string) (string, error) { return "", errors.New("redis down") }
		redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) {
			t.Fatal("lock must not be taken when redis is down")
			return false, nil
		}

		r := newRouter()
		r.POST("/x", func(c *gin.Context) { c.Status(http.StatusAccepted) })

		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set(IdempotencyHeader, "key-7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusAccepted, w.Code)
	})
}
