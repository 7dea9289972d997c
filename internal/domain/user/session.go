package user

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/session.go -package=mocks . SessionStore,LoginAttempts

// SessionStore 登录会话与Token黑名单（Redis实现）
type SessionStore interface {
	SaveSession(ctx context.Context, userID string, data map[string]interface{}, ttl time.Duration) error
	GetSession(ctx context.Context, userID string) (map[string]string, error)
	DeleteSession(ctx context.Context, userID string) error
	AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// LoginAttempts 登录失败计数
// 容量固定、按时间过期，由cache.LoginAttemptCache实现
type LoginAttempts interface {
	// Blocked 失败次数是否已达上限
	Blocked(email string) bool
	// Failed 记录一次失败，返回当前失败次数
	Failed(email string) int
	// Succeeded 登录成功后清除计数
	Succeeded(email string)
}
