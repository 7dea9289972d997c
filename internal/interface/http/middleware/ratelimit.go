package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/xiebiao/bookstore-rest/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
	"github.com/xiebiao/bookstore-rest/pkg/logger"
	"github.com/xiebiao/bookstore-rest/pkg/metrics"
	"github.com/xiebiao/bookstore-rest/pkg/response"
)

// ErrTooManyRequests 触发限流
var ErrTooManyRequests = apperrors.New(apperrors.ErrCodeTooManyRequests, "请求过于频繁，请稍后再试")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter 按客户端IP的令牌桶限流
// 长时间未访问的IP由cron任务定期清理，避免map无限增长
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

// NewRateLimiter 创建限流器
func NewRateLimiter(rps float64, burst int, idleTTL time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// ProvideRateLimiter wire provider
func ProvideRateLimiter(cfg *config.Config) *RateLimiter {
	return NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
}

// Allow 消耗一个令牌，桶空时返回false
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = l.now()
	return v.limiter.Allow()
}

// Purge 清理超过idleTTL未访问的IP，返回清理数量
func (l *RateLimiter) Purge() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for ip, v := range l.visitors {
		if l.now().Sub(v.lastSeen) > l.idleTTL {
			delete(l.visitors, ip)
			removed++
		}
	}
	return removed
}

// Len 当前记录的IP数
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// StartPurge 按cron表达式定期清理，返回的cron在关闭服务时Stop
func (l *RateLimiter) StartPurge(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if n := l.Purge(); n > 0 {
			logger.L().Debug("清理限流记录", zap.Int("removed", n), zap.Int("remaining", l.Len()))
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

// Middleware 限流中间件，超限返回429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			metrics.IncCounter(metrics.HTTPRequestsThrottled)
			response.Error(c, ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
