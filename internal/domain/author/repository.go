package author

import (
	"context"
)

//go:generate mockgen -destination=mocks/repository.go -package=mocks . Repository

// Repository 作者仓储接口
type Repository interface {
	Create(ctx context.Context, a *Author) error

	// FindByID 不存在返回ErrAuthorNotFound，返回的Books为空集合
	FindByID(ctx context.Context, id string) (*Author, error)

	ExistsByID(ctx context.Context, id string) (bool, error)
}
