package comment

import (
	"context"
)

//go:generate mockgen -destination=mocks/repository.go -package=mocks . Repository

// Repository 评论仓储接口
type Repository interface {
	Create(ctx context.Context, c *Comment) error

	// ListByBookID 图书的全部评论，按创建顺序返回
	ListByBookID(ctx context.Context, bookID string) ([]*Comment, error)
}
