package user

import (
	"context"

	"github.com/xiebiao/bookstore-rest/internal/domain/notification"
	"github.com/xiebiao/bookstore-rest/internal/domain/transaction"
	"github.com/xiebiao/bookstore-rest/internal/domain/user"
	"github.com/xiebiao/bookstore-rest/pkg/metrics"
)

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. Application层负责用例编排，协调领域服务和邮件发送
// 2. 用户写入和欢迎邮件在同一个事务里：邮件发送失败时注册回滚
type RegisterUseCase struct {
	userService user.Service
	mailer      notification.Mailer
	txManager   transaction.Manager
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service, mailer notification.Mailer, txManager transaction.Manager) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
		mailer:      mailer,
		txManager:   txManager,
	}
}

// Execute 执行注册
// 返回：UserInfo（应用层DTO，不是领域实体）
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	var registered *user.User
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userService.Register(txCtx, req.FirstName, req.LastName, req.Email, req.Password)
		if err != nil {
			return err
		}
		if err := uc.mailer.Send(txCtx, notification.Welcome(u.Email, u.FullName())); err != nil {
			return err
		}
		registered = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.UsersRegisteredTotal)
	info := toUserInfo(registered)
	return &info, nil
}

// =========================================
// 应用层DTO（数据传输对象）
// =========================================

// RegisterRequest 注册请求
type RegisterRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UserInfo 用户信息
// 说明：不返回密码字段（安全考虑）
type UserInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func toUserInfo(u *user.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
