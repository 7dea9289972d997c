package rating

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/rating"
	"github.com/xiebiao/bookstore-rest/internal/domain/user"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
	"github.com/xiebiao/bookstore-rest/pkg/metrics"
)

// View 评分DTO
// 未评分的占位对象ID为空、Vote为0
type View struct {
	ID        string `json:"id,omitempty"`
	Vote      int    `json:"vote"`
	BookID    string `json:"bookId"`
	UserID    string `json:"userId"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// SaveResult 保存评分结果
// Changed=false时Ratings为空，接口层返回200 + 提示信息
type SaveResult struct {
	Changed bool
	Ratings []View
}

func toView(r *rating.Rating) View {
	v := View{ID: r.ID, Vote: r.Vote, BookID: r.BookID, UserID: r.UserID}
	if !r.UpdatedAt.IsZero() {
		v.UpdatedAt = r.UpdatedAt.Format(time.RFC3339)
	}
	return v
}

func toViews(ratings []*rating.Rating) []View {
	views := make([]View, len(ratings))
	for i, r := range ratings {
		views[i] = toView(r)
	}
	return views
}

// UseCase 评分相关用例
// 所有操作先检查图书（和用户）是否存在，不存在返回404
type UseCase struct {
	ratingService rating.Service
	bookRepo      book.Repository
	userRepo      user.Repository
}

// NewUseCase 创建评分用例
func NewUseCase(ratingService rating.Service, bookRepo book.Repository, userRepo user.Repository) *UseCase {
	return &UseCase{ratingService: ratingService, bookRepo: bookRepo, userRepo: userRepo}
}

// List 图书的全部评分
func (uc *UseCase) List(ctx context.Context, bookID string) ([]View, error) {
	if err := uc.requireBook(ctx, bookID); err != nil {
		return nil, err
	}
	ratings, err := uc.ratingService.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return toViews(ratings), nil
}

// Get 用户对图书的评分，未评分时返回Vote=0的占位对象
func (uc *UseCase) Get(ctx context.Context, bookID, userID string) (*View, error) {
	if err := uc.requireBookAndUser(ctx, bookID, userID); err != nil {
		return nil, err
	}
	r, found, err := uc.ratingService.Get(ctx, bookID, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		r = rating.Placeholder(bookID, userID)
	}
	v := toView(r)
	return &v, nil
}

// Save 评分upsert
func (uc *UseCase) Save(ctx context.Context, vote int, bookID, userID string) (*SaveResult, error) {
	if err := uc.requireBookAndUser(ctx, bookID, userID); err != nil {
		return nil, err
	}
	ratings, changed, err := uc.ratingService.Save(ctx, vote, bookID, userID)
	if err != nil {
		return nil, err
	}

	if !changed {
		metrics.IncCounterVec(metrics.RatingsSavedTotal, map[string]string{"result": "unchanged"})
		return &SaveResult{Changed: false, Ratings: []View{}}, nil
	}
	metrics.IncCounterVec(metrics.RatingsSavedTotal, map[string]string{"result": "saved"})
	return &SaveResult{Changed: true, Ratings: toViews(ratings)}, nil
}

// Delete 删除评分
// 删除后同步移除图书评分缓存中的对应条目，返回剩余评分
func (uc *UseCase) Delete(ctx context.Context, bookID, userID string) ([]View, error) {
	b, err := uc.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	ratings, err := uc.ratingService.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	b.SetRatings(ratings)

	if _, err := uc.ratingService.Delete(ctx, bookID, userID); err != nil {
		return nil, err
	}
	b.RemoveRating(userID)
	metrics.IncCounter(metrics.RatingsDeletedTotal)

	return toViews(b.Ratings), nil
}

func (uc *UseCase) requireBookAndUser(ctx context.Context, bookID, userID string) error {
	if err := uc.requireBook(ctx, bookID); err != nil {
		return err
	}
	return uc.requireUser(ctx, userID)
}

func (uc *UseCase) requireBook(ctx context.Context, bookID string) error {
	exists, err := uc.bookRepo.ExistsByID(ctx, bookID)
	if err != nil {
		return err
	}
	if !exists {
		return book.ErrBookNotFound
	}
	return nil
}

func (uc *UseCase) requireUser(ctx context.Context, userID string) error {
	exists, err := uc.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrUserNotFound
	}
	return nil
}
