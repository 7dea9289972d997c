package rating

import (
	"context"
	"errors"

	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

// Service 评分领域服务
// 设计说明:
// 1. 图书、用户是否存在由调用方（应用层）预先检查
// 2. 持久化错误一律包装后返回，不重试
type Service interface {
	// ListByBook 图书的全部评分（顺序不保证）
	ListByBook(ctx context.Context, bookID string) ([]*Rating, error)

	// Get 查询用户对图书的评分，不存在时found=false而不是error
	Get(ctx context.Context, bookID, userID string) (r *Rating, found bool, err error)

	// Save 评分upsert
	// changed=false表示评分与已有评分相同，没有任何写入
	Save(ctx context.Context, vote int, bookID, userID string) (ratings []*Rating, changed bool, err error)

	// Delete 删除用户的评分，不存在时返回ErrRatingNotFound
	Delete(ctx context.Context, bookID, userID string) (*Rating, error)

	// Summary 平均分与评分人数
	Summary(ctx context.Context, bookID string) (Summary, error)
}

type service struct {
	repo Repository
}

// NewService 创建评分领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListByBook(ctx context.Context, bookID string) ([]*Rating, error) {
	ratings, err := s.repo.ListByBookID(ctx, bookID)
	if err != nil {
		return nil, wrap(err, "查询评分失败")
	}
	return ratings, nil
}

func (s *service) Get(ctx context.Context, bookID, userID string) (*Rating, bool, error) {
	r, err := s.repo.FindByBookAndUser(ctx, bookID, userID)
	if errors.Is(err, ErrRatingNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrap(err, "查询评分失败")
	}
	return r, true, nil
}

// Save 评分upsert
// 1. 已有评分且分值不同：更新
// 2. 已有评分且分值相同：不写入，changed=false
// 3. 没有评分：新建
// 除第2种情况外恰好一次写入
func (s *service) Save(ctx context.Context, vote int, bookID, userID string) ([]*Rating, bool, error) {
	if !IsValidVote(vote) {
		return nil, false, ErrInvalidVote
	}

	existing, found, err := s.Get(ctx, bookID, userID)
	if err != nil {
		return nil, false, err
	}

	if found {
		changed, err := existing.ChangeVote(vote)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return nil, false, nil
		}
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, false, wrap(err, "更新评分失败")
		}
	} else {
		r, err := NewRating(vote, bookID, userID)
		if err != nil {
			return nil, false, err
		}
		if err := s.repo.Create(ctx, r); err != nil {
			return nil, false, wrap(err, "保存评分失败")
		}
	}

	ratings, err := s.ListByBook(ctx, bookID)
	if err != nil {
		return nil, false, err
	}
	return ratings, true, nil
}

func (s *service) Delete(ctx context.Context, bookID, userID string) (*Rating, error) {
	existing, found, err := s.Get(ctx, bookID, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrRatingNotFound
	}
	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		return nil, wrap(err, "删除评分失败")
	}
	return existing, nil
}

func (s *service) Summary(ctx context.Context, bookID string) (Summary, error) {
	summary, err := s.repo.Summarize(ctx, bookID)
	if err != nil {
		return Summary{}, wrap(err, "统计评分失败")
	}
	return summary, nil
}

// wrap 业务错误原样返回，其他错误包装为内部错误
func wrap(err error, message string) error {
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.Wrap(err, message)
}
