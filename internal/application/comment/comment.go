package comment

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/comment"
	"github.com/xiebiao/bookstore-rest/internal/domain/user"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
	"github.com/xiebiao/bookstore-rest/pkg/metrics"
	"github.com/xiebiao/bookstore-rest/pkg/pagination"
)

// DefaultPageSize 评论列表默认每页数量
const DefaultPageSize = 10

// ErrCommentBookAbsent 查询评论时图书不存在（按参数错误返回400）
var ErrCommentBookAbsent = apperrors.New(apperrors.ErrCodeBusinessError, "图书不存在")

// View 评论列表项
type View struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	BookID      string `json:"bookId"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Item 新增评论后返回的评论集合元素
type Item struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	BookID    string `json:"bookId"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ListCommentsUseCase 图书评论分页
type ListCommentsUseCase struct {
	commentService comment.Service
	bookRepo       book.Repository
}

// NewListCommentsUseCase 创建评论列表用例
func NewListCommentsUseCase(commentService comment.Service, bookRepo book.Repository) *ListCommentsUseCase {
	return &ListCommentsUseCase{commentService: commentService, bookRepo: bookRepo}
}

// ListCommentsRequest 评论列表请求
type ListCommentsRequest struct {
	BookID string
	Page   int
	Size   int
}

// Execute 图书不存在返回400
func (uc *ListCommentsUseCase) Execute(ctx context.Context, req ListCommentsRequest) (*pagination.Page[View], error) {
	exists, err := uc.bookRepo.ExistsByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCommentBookAbsent
	}

	size := req.Size
	if size < 1 {
		size = DefaultPageSize
	}

	page, err := uc.commentService.ListForBook(ctx, req.BookID, req.Page, size)
	if err != nil {
		return nil, err
	}

	result := pagination.Map(page, func(v comment.View) View {
		return View{
			ID:          v.ID,
			Content:     v.Content,
			BookID:      v.BookID,
			UserID:      v.UserID,
			DisplayName: v.DisplayName,
			CreatedAt:   v.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   v.UpdatedAt.Format(time.RFC3339),
		}
	})
	return &result, nil
}

// AddCommentUseCase 新增评论
// 图书、用户都必须存在，否则返回404；内容长度由领域服务校验
type AddCommentUseCase struct {
	commentService comment.Service
	bookRepo       book.Repository
	userRepo       user.Repository
}

// NewAddCommentUseCase 创建新增评论用例
func NewAddCommentUseCase(commentService comment.Service, bookRepo book.Repository, userRepo user.Repository) *AddCommentUseCase {
	return &AddCommentUseCase{commentService: commentService, bookRepo: bookRepo, userRepo: userRepo}
}

// AddCommentRequest 新增评论请求
type AddCommentRequest struct {
	BookID  string
	UserID  string
	Content string
}

// Execute 返回图书的全部评论
func (uc *AddCommentUseCase) Execute(ctx context.Context, req AddCommentRequest) ([]Item, error) {
	exists, err := uc.bookRepo.ExistsByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, book.ErrBookNotFound
	}

	exists, err = uc.userRepo.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	comments, err := uc.commentService.Add(ctx, req.Content, req.BookID, req.UserID)
	if err != nil {
		return nil, err
	}
	metrics.IncCounter(metrics.CommentsAddedTotal)

	items := make([]Item, len(comments))
	for i, c := range comments {
		items[i] = Item{
			ID:        c.ID,
			Content:   c.Content,
			BookID:    c.BookID,
			UserID:    c.UserID,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
			UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
		}
	}
	return items, nil
}
