package book_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/book/mocks"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("默认分页和排序", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().List(ctx, book.ListParams{Page: 0, Size: 24, Sort: book.SortUpdatedDesc}).Return(nil, int64(0), nil)

		_, total, err := book.NewService(repo).List(ctx, book.ListParams{Page: -1})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("非法排序", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, _, err := book.NewService(mocks.NewMockRepository(ctrl)).List(ctx, book.ListParams{Sort: "random"})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("必须关联作者", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		b := &book.Book{Title: "x", Price: decimal.NewFromInt(1)}
		err := book.NewService(mocks.NewMockRepository(ctrl)).Create(ctx, b)
		require.Error(t, err)
	})

	t.Run("保存图书", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		b := &book.Book{Title: "x", AuthorID: "a1", Price: decimal.NewFromInt(1)}
		repo.EXPECT().Create(ctx, b).Return(nil)

		assert.NoError(t, book.NewService(repo).Create(ctx, b))
	})
}
