package comment

import (
	"context"

	"github.com/xiebiao/bookstore-rest/internal/domain/user"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
	"github.com/xiebiao/bookstore-rest/pkg/pagination"
)

// Service 评论领域服务
type Service interface {
	// ListForBook 图书评论分页
	// 按更新时间倒序（稳定排序），展示名 = 名 + " " + 姓
	// 没有评论时返回空页而不是错误
	ListForBook(ctx context.Context, bookID string, page, size int) (pagination.Page[View], error)

	// Add 新增评论，返回图书的全部评论
	// 图书与用户的存在性由调用方预先检查
	Add(ctx context.Context, content, bookID, userID string) ([]*Comment, error)
}

type service struct {
	repo  Repository
	users user.Repository
}

// NewService 创建评论领域服务
func NewService(repo Repository, users user.Repository) Service {
	return &service{repo: repo, users: users}
}

func (s *service) ListForBook(ctx context.Context, bookID string, page, size int) (pagination.Page[View], error) {
	comments, err := s.repo.ListByBookID(ctx, bookID)
	if err != nil {
		return pagination.Page[View]{}, wrap(err, "查询评论失败")
	}

	SortByUpdatedDesc(comments)
	paged := pagination.Of(comments, page, size)

	names, err := s.displayNames(ctx, paged.Content)
	if err != nil {
		return pagination.Page[View]{}, err
	}

	return pagination.Map(paged, func(c *Comment) View {
		return View{
			ID:          c.ID,
			Content:     c.Content,
			BookID:      c.BookID,
			UserID:      c.UserID,
			DisplayName: names[c.UserID],
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		}
	}), nil
}

// displayNames 只查询当前页涉及的用户
// 已删除的用户按空姓名拼接
func (s *service) displayNames(ctx context.Context, comments []*Comment) (map[string]string, error) {
	names := make(map[string]string, len(comments))
	if len(comments) == 0 {
		return names, nil
	}

	ids := make([]string, 0, len(comments))
	seen := make(map[string]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserID]; ok {
			continue
		}
		seen[c.UserID] = struct{}{}
		ids = append(ids, c.UserID)
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, wrap(err, "查询评论用户失败")
	}
	for _, id := range ids {
		names[id] = user.DisplayName("", "")
	}
	for _, u := range users {
		names[u.ID] = u.FullName()
	}
	return names, nil
}

func (s *service) Add(ctx context.Context, content, bookID, userID string) ([]*Comment, error) {
	c, err := NewComment(content, bookID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, wrap(err, "保存评论失败")
	}

	comments, err := s.repo.ListByBookID(ctx, bookID)
	if err != nil {
		return nil, wrap(err, "查询评论失败")
	}
	return comments, nil
}

func wrap(err error, message string) error {
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.Wrap(err, message)
}
