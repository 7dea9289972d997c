package user

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookstore-rest/internal/domain/user"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
	"github.com/xiebiao/bookstore-rest/pkg/jwt"
	"github.com/xiebiao/bookstore-rest/pkg/logger"
	"github.com/xiebiao/bookstore-rest/pkg/metrics"
)

// LoginUseCase 用户登录用例
// 设计说明：
// 1. 先查登录失败计数，达到上限直接拒绝（不校验密码）
// 2. 验证邮箱密码，失败计数+1，成功清零
// 3. 生成JWT Token对
// 4. 保存会话到Redis
type LoginUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore user.SessionStore
	attempts     user.LoginAttempts
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore user.SessionStore,
	attempts user.LoginAttempts,
) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
		attempts:     attempts,
	}
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	// 1. 失败次数过多
	if uc.attempts.Blocked(req.Email) {
		metrics.IncCounterVec(metrics.LoginAttemptsTotal, map[string]string{"result": "blocked"})
		return nil, apperrors.ErrLoginBlocked
	}

	// 2. 验证邮箱密码（调用领域服务）
	u, err := uc.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPassword) {
			n := uc.attempts.Failed(req.Email)
			metrics.IncCounterVec(metrics.LoginAttemptsTotal, map[string]string{"result": "failure"})
			logger.L().Info("登录失败", zap.String("email", req.Email), zap.Int("attempts", n))
		}
		return nil, err
	}
	uc.attempts.Succeeded(req.Email)

	// 3. 生成JWT Token对
	tokenPair, err := uc.jwtManager.GenerateToken(u.ID, u.Email, u.FullName())
	if err != nil {
		return nil, err
	}

	// 4. 保存会话到Redis，会话有效期 = Refresh Token有效期
	sessionData := map[string]interface{}{
		"user_id":  u.ID,
		"email":    u.Email,
		"name":     u.FullName(),
		"login_at": time.Now().Unix(),
	}
	if err := uc.sessionStore.SaveSession(ctx, u.ID, sessionData, uc.jwtManager.RefreshTokenExpire()); err != nil {
		// 会话保存失败不影响登录，只是无法使用Refresh Token
		logger.L().Warn("保存会话失败", zap.String("user_id", u.ID), zap.Error(err))
	}

	metrics.IncCounterVec(metrics.LoginAttemptsTotal, map[string]string{"result": "success"})
	return &LoginResponse{
		User:         toUserInfo(u),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// RefreshUseCase 使用Refresh Token换取新的Access Token
// 会话已删除（登出、注销）时拒绝刷新
type RefreshUseCase struct {
	jwtManager   *jwt.Manager
	sessionStore user.SessionStore
}

// NewRefreshUseCase 创建刷新Token用例
func NewRefreshUseCase(jwtManager *jwt.Manager, sessionStore user.SessionStore) *RefreshUseCase {
	return &RefreshUseCase{jwtManager: jwtManager, sessionStore: sessionStore}
}

// RefreshResponse 刷新Token响应
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// Execute 执行刷新
func (uc *RefreshUseCase) Execute(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	claims, err := uc.jwtManager.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if _, err := uc.sessionStore.GetSession(ctx, claims.UserID); err != nil {
		return nil, err
	}

	accessToken, err := uc.jwtManager.RefreshAccessToken(refreshToken)
	if err != nil {
		return nil, err
	}
	return &RefreshResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(uc.jwtManager.AccessTokenExpire().Seconds()),
	}, nil
}

// LogoutUseCase 用户登出用例
type LogoutUseCase struct {
	sessionStore user.SessionStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore user.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{sessionStore: sessionStore}
}

// Execute 执行登出
// expiresAt是Access Token的过期时间，黑名单只需保留到Token自然过期
func (uc *LogoutUseCase) Execute(ctx context.Context, userID, accessToken string, expiresAt time.Time) error {
	// 1. 删除会话
	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		return err
	}

	// 2. 将Access Token加入黑名单（防止Token在过期前继续使用）
	return uc.sessionStore.AddToBlacklist(ctx, accessToken, time.Until(expiresAt))
}

// =========================================
// 应用层DTO
// =========================================

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse 登录响应
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresIn    int64    `json:"expiresIn"` // Access Token过期时间（秒）
}
