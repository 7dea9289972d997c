package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-rest/internal/domain/author"
	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/category"
	"github.com/xiebiao/bookstore-rest/internal/domain/rating"
)

// GetBookUseCase 图书详情
// 详情页需要的作者名、分类名、评分汇总都在这里组装
type GetBookUseCase struct {
	bookService   book.Service
	authorRepo    author.Repository
	categoryRepo  category.Repository
	ratingService rating.Service
}

// NewGetBookUseCase 创建图书详情用例
func NewGetBookUseCase(
	bookService book.Service,
	authorRepo author.Repository,
	categoryRepo category.Repository,
	ratingService rating.Service,
) *GetBookUseCase {
	return &GetBookUseCase{
		bookService:   bookService,
		authorRepo:    authorRepo,
		categoryRepo:  categoryRepo,
		ratingService: ratingService,
	}
}

// Execute 查询图书详情，不存在返回ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, bookID string) (*Detail, error) {
	b, err := uc.bookService.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	a, err := uc.authorRepo.FindByID(ctx, b.AuthorID)
	if err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.FindByIDs(ctx, b.CategoryIDs)
	if err != nil {
		return nil, err
	}
	refs := make([]CategoryRef, len(categories))
	for i, c := range categories {
		refs[i] = CategoryRef{ID: c.ID, Name: c.Name}
	}

	summary, err := uc.ratingService.Summary(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Summary:     ToSummary(b),
		Description: b.Description,
		Paragraphs:  b.Paragraphs(),
		IssueYear:   b.IssueYear,
		PageCount:   b.PageCount,
		Hardcover:   b.Hardcover,
		AuthorName:  a.FullName(),
		Categories:  refs,
		Rating:      RatingSummary{Average: summary.Average, Count: summary.Count},
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}, nil
}
