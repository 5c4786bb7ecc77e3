package middleware

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"e-commerce.backend/internal/domain/entities"
	redispkg "e-commerce.backend/pkg/redis"
)

func startMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })
	return srv
}

// asUser authenticates every request as the given user id
func asUser(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(PrincipalKey, &entities.Principal{User: &entities.User{ID: id}, SessionID: "sid"})
		c.Next()
	}
}
