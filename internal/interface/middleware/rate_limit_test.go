package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func newLimitedEngine(t *testing.T, max int, allow AllowFunc) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.Use(RealIP())
	r.GET("/ping", RateLimit(rdb, max, time.Minute, KeyByIP(), allow), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r, mr
}

func get(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_BlocksOverLimit(t *testing.T) {
	r, mr := newLimitedEngine(t, 2, nil)
	ip := map[string]string{"X-Real-IP": "203.0.113.9"}

	w := get(r, "/ping", ip)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = get(r, "/ping", ip)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = get(r, "/ping", ip)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"success":false,"message":"rate limit exceeded"}`, w.Body.String())

	// other clients have their own bucket
	w = get(r, "/ping", map[string]string{"X-Real-IP": "203.0.113.10"})
	assert.Equal(t, http.StatusOK, w.Code)

	// window expiry resets the count
	mr.FastForward(time.Minute + time.Second)
	w = get(r, "/ping", ip)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_AllowBypasses(t *testing.T) {
	r, _ := newLimitedEngine(t, 1, AllowPrivateIP())
	private := map[string]string{"X-Real-IP": "10.0.0.5"}

	for i := 0; i < 3; i++ {
		w := get(r, "/ping", private)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimit_FailsOpenWhenRedisDown(t *testing.T) {
	r, mr := newLimitedEngine(t, 1, nil)
	mr.Close()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/ping", nil).Code)
	}
}

func TestRateLimit_NilClientIsNoop(t *testing.T) {
	r := gin.New()
	r.GET("/ping", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, get(r, "/ping", nil).Code)
	}
}
