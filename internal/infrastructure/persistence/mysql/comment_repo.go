package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-rest/internal/domain/comment"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论仓储
func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *comment.Comment) error {
	model := &CommentModel{
		ID:        c.ID,
		Content:   c.Content,
		BookID:    c.BookID,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "保存评论失败")
	}
	return nil
}

// ListByBookID 按插入顺序返回，展示顺序由领域服务决定
func (r *commentRepository) ListByBookID(ctx context.Context, bookID string) ([]*comment.Comment, error) {
	var models []CommentModel
	err := conn(ctx, r.db).Where("book_id = ?", bookID).Order("created_at ASC").Order("seq ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评论失败")
	}

	comments := make([]*comment.Comment, len(models))
	for i, m := range models {
		comments[i] = &comment.Comment{
			ID:        m.ID,
			Content:   m.Content,
			BookID:    m.BookID,
			UserID:    m.UserID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
	}
	return comments, nil
}
