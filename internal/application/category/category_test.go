package category_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	appcategory "github.com/xiebiao/bookstore-rest/internal/application/category"
	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	bookmocks "github.com/xiebiao/bookstore-rest/internal/domain/book/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/category"
	categorymocks "github.com/xiebiao/bookstore-rest/internal/domain/category/mocks"
)

func TestListCategoriesUseCase(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := categorymocks.NewMockRepository(ctrl)
	repo.EXPECT().List(ctx).Return([]*category.Category{
		{ID: "c2", Name: "Poetry"},
		{ID: "c1", Name: "Fiction"},
	}, nil)

	items, err := appcategory.NewListCategoriesUseCase(repo).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []appcategory.Item{{ID: "c1", Name: "Fiction"}, {ID: "c2", Name: "Poetry"}}, items)
}

func TestGetCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("分类下图书分页", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		categoryRepo := categorymocks.NewMockRepository(ctrl)
		bookRepo := bookmocks.NewMockRepository(ctrl)

		now := time.Now()
		categoryRepo.EXPECT().FindByID(ctx, "c1").Return(&category.Category{ID: "c1", Name: "Go"}, nil)
		bookRepo.EXPECT().ListByCategoryID(ctx, "c1").Return([]*book.Book{
			{ID: "old", UpdatedAt: now.Add(-time.Hour)},
			{ID: "new", UpdatedAt: now},
		}, nil)

		w, err := appcategory.NewGetCategoryUseCase(categoryRepo, bookRepo).Execute(ctx, appcategory.GetCategoryRequest{CategoryID: "c1", Size: 1})
		require.NoError(t, err)
		assert.Equal(t, "Go", w.Name)
		assert.Equal(t, 2, w.Books.TotalPages)
		require.Len(t, w.Books.Content, 1)
		assert.Equal(t, "new", w.Books.Content[0].ID)
	})

	t.Run("分类不存在", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		categoryRepo := categorymocks.NewMockRepository(ctrl)
		categoryRepo.EXPECT().FindByID(ctx, "x").Return(nil, category.ErrCategoryNotFound)

		_, err := appcategory.NewGetCategoryUseCase(categoryRepo, bookmocks.NewMockRepository(ctrl)).Execute(ctx, appcategory.GetCategoryRequest{CategoryID: "x"})
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("创建成功", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := categorymocks.NewMockRepository(ctrl)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		item, err := appcategory.NewCreateCategoryUseCase(repo).Execute(ctx, "Go")
		require.NoError(t, err)
		assert.Equal(t, "Go", item.Name)
		assert.NotEmpty(t, item.ID)
	})

	t.Run("名称重复", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := categorymocks.NewMockRepository(ctrl)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(category.ErrDuplicateName)

		_, err := appcategory.NewCreateCategoryUseCase(repo).Execute(ctx, "Go")
		assert.ErrorIs(t, err, category.ErrDuplicateName)
	})

	t.Run("名称为空", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := appcategory.NewCreateCategoryUseCase(categorymocks.NewMockRepository(ctrl)).Execute(ctx, " ")
		assert.ErrorIs(t, err, category.ErrInvalidName)
	})
}
