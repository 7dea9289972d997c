package user

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookstore-rest/internal/domain/notification"
	"github.com/xiebiao/bookstore-rest/internal/domain/transaction"
	"github.com/xiebiao/bookstore-rest/internal/domain/user"
	"github.com/xiebiao/bookstore-rest/pkg/logger"
)

// ProfileUseCase 当前用户信息
type ProfileUseCase struct {
	userRepo user.Repository
}

// NewProfileUseCase 创建用户信息用例
func NewProfileUseCase(userRepo user.Repository) *ProfileUseCase {
	return &ProfileUseCase{userRepo: userRepo}
}

// Execute 用户不存在返回ErrUserNotFound
func (uc *ProfileUseCase) Execute(ctx context.Context, userID string) (*UserInfo, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(u)
	return &info, nil
}

// DeleteAccountUseCase 注销账户
// 删除用户和告别邮件在同一个事务里，邮件发送失败时回滚
// 评论、评分由外键级联删除
type DeleteAccountUseCase struct {
	userRepo     user.Repository
	sessionStore user.SessionStore
	mailer       notification.Mailer
	txManager    transaction.Manager
}

// NewDeleteAccountUseCase 创建注销账户用例
func NewDeleteAccountUseCase(
	userRepo user.Repository,
	sessionStore user.SessionStore,
	mailer notification.Mailer,
	txManager transaction.Manager,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo:     userRepo,
		sessionStore: sessionStore,
		mailer:       mailer,
		txManager:    txManager,
	}
}

// Execute 执行注销
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, userID, accessToken string, expiresAt time.Time) error {
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.FindByID(txCtx, userID)
		if err != nil {
			return err
		}
		if err := uc.userRepo.Delete(txCtx, u.ID); err != nil {
			return err
		}
		return uc.mailer.Send(txCtx, notification.Goodbye(u.Email, u.FullName()))
	})
	if err != nil {
		return err
	}

	// 账户已删除，会话清理失败只记录日志
	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		logger.L().Warn("注销后删除会话失败", zap.String("user_id", userID), zap.Error(err))
	}
	if err := uc.sessionStore.AddToBlacklist(ctx, accessToken, time.Until(expiresAt)); err != nil {
		logger.L().Warn("注销后拉黑Token失败", zap.String("user_id", userID), zap.Error(err))
	}
	return nil
}
