package rating

import (
	"context"
)

//go:generate mockgen -destination=mocks/repository.go -package=mocks . Repository

// Repository 评分仓储接口
type Repository interface {
	// ListByBookID 图书的全部评分
	ListByBookID(ctx context.Context, bookID string) ([]*Rating, error)

	// FindByBookAndUser 不存在时返回ErrRatingNotFound
	FindByBookAndUser(ctx context.Context, bookID, userID string) (*Rating, error)

	// Create 并发重复插入时返回ErrDuplicateRating
	Create(ctx context.Context, r *Rating) error

	Update(ctx context.Context, r *Rating) error

	Delete(ctx context.Context, id string) error

	// Summarize 平均分与评分人数
	Summarize(ctx context.Context, bookID string) (Summary, error)
}
