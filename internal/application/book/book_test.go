package book_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	appbook "github.com/xiebiao/bookstore-rest/internal/application/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/author"
	authormocks "github.com/xiebiao/bookstore-rest/internal/domain/author/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	bookmocks "github.com/xiebiao/bookstore-rest/internal/domain/book/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/category"
	categorymocks "github.com/xiebiao/bookstore-rest/internal/domain/category/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/rating"
	ratingmocks "github.com/xiebiao/bookstore-rest/internal/domain/rating/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/transaction"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

func TestListBooksUseCase(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := bookmocks.NewMockRepository(ctrl)

	books := []*book.Book{
		{ID: "b1", Title: "Go", Price: decimal.RequireFromString("10.5"), CategoryIDs: []string{"c1"}},
		{ID: "b2", Title: "Rust", Price: decimal.RequireFromString("20"), PromoPrice: decimal.NewNullDecimal(decimal.RequireFromString("15"))},
	}
	repo.EXPECT().List(ctx, book.ListParams{Page: 1, Size: 2, Keyword: "go", Sort: book.SortPriceAsc}).Return(books, int64(7), nil)

	uc := appbook.NewListBooksUseCase(book.NewService(repo))
	page, err := uc.Execute(ctx, appbook.ListBooksRequest{Page: 1, Size: 2, Keyword: "go", Sort: book.SortPriceAsc})
	require.NoError(t, err)

	assert.Equal(t, int64(7), page.TotalElements)
	assert.Equal(t, 4, page.TotalPages)
	assert.Equal(t, 1, page.Number)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "10.50", page.Content[0].Price)
	assert.Nil(t, page.Content[0].PromoPrice)
	require.NotNil(t, page.Content[1].PromoPrice)
	assert.Equal(t, "15.00", *page.Content[1].PromoPrice)
	assert.Equal(t, []string{}, page.Content[1].CategoryIDs)
}

func TestGetBookUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("组装详情", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookRepo := bookmocks.NewMockRepository(ctrl)
		authorRepo := authormocks.NewMockRepository(ctrl)
		categoryRepo := categorymocks.NewMockRepository(ctrl)
		ratingRepo := ratingmocks.NewMockRepository(ctrl)

		b := &book.Book{
			ID:          "b1",
			Title:       "Go",
			Description: "第一段\n\n  第二段  \r\n",
			AuthorID:    "a1",
			CategoryIDs: []string{"c1"},
			Price:       decimal.NewFromInt(30),
			UpdatedAt:   time.Now(),
		}
		bookRepo.EXPECT().FindByID(ctx, "b1").Return(b, nil)
		authorRepo.EXPECT().FindByID(ctx, "a1").Return(&author.Author{ID: "a1", FirstName: "Rob", LastName: "Pike"}, nil)
		categoryRepo.EXPECT().FindByIDs(ctx, []string{"c1"}).Return([]*category.Category{{ID: "c1", Name: "Programming"}}, nil)
		ratingRepo.EXPECT().Summarize(ctx, "b1").Return(rating.Summary{Average: 4.5, Count: 2}, nil)

		uc := appbook.NewGetBookUseCase(book.NewService(bookRepo), authorRepo, categoryRepo, rating.NewService(ratingRepo))
		detail, err := uc.Execute(ctx, "b1")
		require.NoError(t, err)

		assert.Equal(t, []string{"第一段", "第二段"}, detail.Paragraphs)
		assert.Equal(t, "Rob Pike", detail.AuthorName)
		assert.Equal(t, []appbook.CategoryRef{{ID: "c1", Name: "Programming"}}, detail.Categories)
		assert.Equal(t, int64(2), detail.Rating.Count)
		assert.Equal(t, "30.00", detail.Price)
	})

	t.Run("图书不存在", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookRepo := bookmocks.NewMockRepository(ctrl)
		bookRepo.EXPECT().FindByID(ctx, "missing").Return(nil, book.ErrBookNotFound)

		uc := appbook.NewGetBookUseCase(book.NewService(bookRepo), authormocks.NewMockRepository(ctrl),
			categorymocks.NewMockRepository(ctrl), rating.NewService(ratingmocks.NewMockRepository(ctrl)))
		_, err := uc.Execute(ctx, "missing")
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestCreateBookUseCase(t *testing.T) {
	ctx := context.Background()

	newRequest := func() appbook.CreateBookRequest {
		return appbook.CreateBookRequest{
			Title:        "The Go Programming Language",
			AuthorID:     "a1",
			CategoryIDs:  []string{"c1", "c2", "c1"},
			Price:        decimal.RequireFromString("39.99"),
			Active:       true,
			UnitsInStock: 10,
		}
	}

	t.Run("双向关联后保存", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookRepo := bookmocks.NewMockRepository(ctrl)
		authorRepo := authormocks.NewMockRepository(ctrl)
		categoryRepo := categorymocks.NewMockRepository(ctrl)

		a := &author.Author{ID: "a1", FirstName: "Alan", LastName: "Donovan"}
		c1 := &category.Category{ID: "c1", Name: "Go"}
		c2 := &category.Category{ID: "c2", Name: "Programming"}
		authorRepo.EXPECT().FindByID(ctx, "a1").Return(a, nil)
		categoryRepo.EXPECT().FindByIDs(ctx, []string{"c1", "c2"}).Return([]*category.Category{c1, c2}, nil)
		bookRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *book.Book) error {
			assert.Equal(t, "a1", b.AuthorID)
			assert.Equal(t, []string{"c1", "c2"}, b.CategoryIDs)
			return nil
		})

		uc := appbook.NewCreateBookUseCase(book.NewService(bookRepo), authorRepo, categoryRepo, transaction.Passthrough)
		summary, err := uc.Execute(ctx, newRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, summary.ID)
		assert.Equal(t, "39.99", summary.Price)
		require.Len(t, a.Books, 1)
		assert.Len(t, c1.Books, 1)
		assert.Len(t, c2.Books, 1)
	})

	t.Run("作者不存在", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authorRepo := authormocks.NewMockRepository(ctrl)
		authorRepo.EXPECT().FindByID(ctx, "a1").Return(nil, author.ErrAuthorNotFound)

		uc := appbook.NewCreateBookUseCase(book.NewService(bookmocks.NewMockRepository(ctrl)), authorRepo,
			categorymocks.NewMockRepository(ctrl), transaction.Passthrough)
		_, err := uc.Execute(ctx, newRequest())
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	t.Run("分类缺失", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authorRepo := authormocks.NewMockRepository(ctrl)
		categoryRepo := categorymocks.NewMockRepository(ctrl)
		authorRepo.EXPECT().FindByID(ctx, "a1").Return(&author.Author{ID: "a1"}, nil)
		categoryRepo.EXPECT().FindByIDs(ctx, []string{"c1", "c2"}).Return([]*category.Category{{ID: "c1"}}, nil)

		uc := appbook.NewCreateBookUseCase(book.NewService(bookmocks.NewMockRepository(ctrl)), authorRepo, categoryRepo, transaction.Passthrough)
		_, err := uc.Execute(ctx, newRequest())
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})

	t.Run("价格超限", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authorRepo := authormocks.NewMockRepository(ctrl)
		categoryRepo := categorymocks.NewMockRepository(ctrl)
		authorRepo.EXPECT().FindByID(ctx, "a1").Return(&author.Author{ID: "a1"}, nil)
		categoryRepo.EXPECT().FindByIDs(ctx, gomock.Any()).Return([]*category.Category{{ID: "c1"}, {ID: "c2"}}, nil)

		req := newRequest()
		req.Price = decimal.RequireFromString("1000")
		uc := appbook.NewCreateBookUseCase(book.NewService(bookmocks.NewMockRepository(ctrl)), authorRepo, categoryRepo, transaction.Passthrough)
		_, err := uc.Execute(ctx, req)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidPrice, apperrors.GetAppError(err).Code)
	})
}
