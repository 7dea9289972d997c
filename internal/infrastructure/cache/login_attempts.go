// Package cache 进程内缓存
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/xiebiao/bookstore-rest/internal/domain/user"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/config"
)

// LoginAttemptCache 登录失败计数
// 1. 容量固定：超出容量时淘汰最久未使用的邮箱
// 2. 按时间过期：每次失败都会刷新过期时间，窗口内持续失败会一直保持锁定
// 3. 登录成功后清除计数
type LoginAttemptCache struct {
	mu          sync.Mutex
	lru         *expirable.LRU[string, int]
	maxAttempts int
}

var _ user.LoginAttempts = (*LoginAttemptCache)(nil)

// NewLoginAttemptCache 创建登录失败计数缓存
func NewLoginAttemptCache(capacity, maxAttempts int, window time.Duration) *LoginAttemptCache {
	return &LoginAttemptCache{
		lru:         expirable.NewLRU[string, int](capacity, nil, window),
		maxAttempts: maxAttempts,
	}
}

// ProvideLoginAttemptCache wire provider
func ProvideLoginAttemptCache(cfg *config.Config) *LoginAttemptCache {
	return NewLoginAttemptCache(cfg.Login.Capacity, cfg.Login.MaxAttempts, cfg.Login.Window)
}

// Blocked 失败次数是否已达上限
func (c *LoginAttemptCache) Blocked(email string) bool {
	n, ok := c.lru.Peek(normalize(email))
	return ok && n >= c.maxAttempts
}

// Failed 记录一次失败
func (c *LoginAttemptCache) Failed(email string) int {
	key := normalize(email)

	c.mu.Lock()
	defer c.mu.Unlock()

	n, _ := c.lru.Peek(key)
	n++
	c.lru.Add(key, n)
	return n
}

// Succeeded 清除计数
func (c *LoginAttemptCache) Succeeded(email string) {
	c.lru.Remove(normalize(email))
}

// Len 当前记录的邮箱数
func (c *LoginAttemptCache) Len() int {
	return c.lru.Len()
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
