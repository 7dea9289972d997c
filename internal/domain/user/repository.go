package user

import (
	"context"
)

//go:generate mockgen -destination=mocks/repository.go -package=mocks . Repository

// Repository 用户仓储接口
// DDD设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/mysql层
// 3. 便于单元测试（Mock此接口）
type Repository interface {
	// Create 创建用户
	// 注意：如果邮箱已存在，应返回errors.ErrEmailDuplicate
	Create(ctx context.Context, u *User) error

	// FindByID 根据ID查找用户
	// 如果不存在，返回errors.ErrUserNotFound
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail 根据邮箱查找用户
	// 如果不存在，返回errors.ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByIDs 批量查询（评论展示名），不存在的ID被忽略
	FindByIDs(ctx context.Context, ids []string) ([]*User, error)

	// ExistsByID 存在性检查
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Update 更新用户信息
	Update(ctx context.Context, u *User) error

	// Delete 删除用户（评论、评分由外键级联删除）
	Delete(ctx context.Context, id string) error
}
