package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/xiebiao/bookstore-rest/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-rest/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// 处理器为nil：只验证路由注册和认证拦截，不会真正调用处理器
func newTestEngine(cfg *config.Config) *gin.Engine {
	auth := middleware.NewAuthMiddleware(jwt.NewManager("test-secret", time.Hour, 24*time.Hour), nil)
	limiter := middleware.NewRateLimiter(1, 1, time.Minute)
	return New(cfg, &Handlers{}, auth, limiter)
}

func TestNew(t *testing.T) {
	t.Run("健康检查", func(t *testing.T) {
		r := newTestEngine(&config.Config{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("写接口需要登录", func(t *testing.T) {
		r := newTestEngine(&config.Config{})
		routes := []struct{ method, path string }{
			{http.MethodPost, "/api/v1/books"},
			{http.MethodPost, "/api/v1/authors"},
			{http.MethodPost, "/api/v1/category"},
			{http.MethodPost, "/api/v1/comments/b1/user/u1"},
			{http.MethodPost, "/api/v1/ratings/b1/user/u1"},
			{http.MethodDelete, "/api/v1/ratings/b1/user/u1"},
			{http.MethodPost, "/api/v1/users/logout"},
			{http.MethodGet, "/api/v1/users/me"},
			{http.MethodDelete, "/api/v1/users/me"},
		}
		for _, rt := range routes {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(rt.method, rt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", rt.method, rt.path)
		}
	})

	t.Run("metrics端点", func(t *testing.T) {
		cfg := &config.Config{Metrics: config.MetricsConfig{Enabled: true}}
		r := newTestEngine(cfg)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("未启用metrics", func(t *testing.T) {
		r := newTestEngine(&config.Config{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("超过限流返回429", func(t *testing.T) {
		cfg := &config.Config{RateLimit: config.RateLimitConfig{Enabled: true}}
		r := newTestEngine(cfg)

		first := httptest.NewRecorder()
		r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})
}
