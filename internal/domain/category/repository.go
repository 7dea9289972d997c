package category

import (
	"context"
)

//go:generate mockgen -destination=mocks/repository.go -package=mocks . Repository

// Repository 分类仓储接口
type Repository interface {
	// Create 名称重复返回ErrDuplicateName
	Create(ctx context.Context, c *Category) error

	// FindByID 不存在返回ErrCategoryNotFound
	FindByID(ctx context.Context, id string) (*Category, error)

	// FindByIDs 批量查询，不存在的ID被忽略
	FindByIDs(ctx context.Context, ids []string) ([]*Category, error)

	ExistsByID(ctx context.Context, id string) (bool, error)

	// List 全部分类，按名称升序
	List(ctx context.Context) ([]*Category, error)
}
