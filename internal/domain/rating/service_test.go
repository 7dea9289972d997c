package rating_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/xiebiao/bookstore-rest/internal/domain/rating"
	"github.com/xiebiao/bookstore-rest/internal/domain/rating/mocks"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

func TestService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("首次评分创建一条记录", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		svc := rating.NewService(repo)

		var created *rating.Rating
		repo.EXPECT().FindByBookAndUser(ctx, "b1", "u1").Return(nil, rating.ErrRatingNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *rating.Rating) error {
			created = r
			return nil
		})
		repo.EXPECT().ListByBookID(ctx, "b1").DoAndReturn(func(context.Context, string) ([]*rating.Rating, error) {
			return []*rating.Rating{created}, nil
		})

		ratings, changed, err := svc.Save(ctx, 4, "b1", "u1")
		require.NoError(t, err)
		assert.True(t, changed)
		require.Len(t, ratings, 1)
		assert.Equal(t, 4, ratings[0].Vote)
		assert.Equal(t, "b1", ratings[0].BookID)
		assert.Equal(t, "u1", ratings[0].UserID)
	})

	t.Run("分值变化时更新", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		svc := rating.NewService(repo)

		existing, _ := rating.NewRating(2, "b1", "u1")
		repo.EXPECT().FindByBookAndUser(ctx, "b1", "u1").Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
		repo.EXPECT().ListByBookID(ctx, "b1").Return([]*rating.Rating{existing}, nil)

		ratings, changed, err := svc.Save(ctx, 5, "b1", "u1")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 5, ratings[0].Vote)
	})

	t.Run("分值相同不写入", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		svc := rating.NewService(repo)

		existing, _ := rating.NewRating(3, "b1", "u1")
		repo.EXPECT().FindByBookAndUser(ctx, "b1", "u1").Return(existing, nil)

		ratings, changed, err := svc.Save(ctx, 3, "b1", "u1")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Nil(t, ratings)
	})

	t.Run("零分和越界分值被拒绝", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := rating.NewService(mocks.NewMockRepository(ctrl))

		for _, vote := range []int{0, 6, -1} {
			_, _, err := svc.Save(ctx, vote, "b1", "u1")
			assert.ErrorIs(t, err, rating.ErrInvalidVote)
		}
	})

	t.Run("持久化失败包装为内部错误", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		svc := rating.NewService(repo)

		dbErr := errors.New("connection reset")
		repo.EXPECT().FindByBookAndUser(ctx, "b1", "u1").Return(nil, rating.ErrRatingNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(dbErr)

		_, _, err := svc.Save(ctx, 1, "b1", "u1")
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, apperrors.ErrCodeInternal, apperrors.GetAppError(err).Code)
	})

	t.Run("并发插入的重复错误原样返回", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		svc := rating.NewService(repo)

		repo.EXPECT().FindByBookAndUser(ctx, "b1", "u1").Return(nil, rating.ErrRatingNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(rating.ErrDuplicateRating)

		_, _, err := svc.Save(ctx, 1, "b1", "u1")
		assert.ErrorIs(t, err, rating.ErrDuplicateRating)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("不存在时found=false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().FindByBookAndUser(ctx, "b1", "u1").Return(nil, rating.ErrRatingNotFound)

		r, found, err := rating.NewService(repo).Get(ctx, "b1", "u1")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, r)
	})

	t.Run("存在时返回评分", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		existing, _ := rating.NewRating(5, "b1", "u1")
		repo.EXPECT().FindByBookAndUser(ctx, "b1", "u1").Return(existing, nil)

		r, found, err := rating.NewService(repo).Get(ctx, "b1", "u1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Same(t, existing, r)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("删除已有评分", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		existing, _ := rating.NewRating(5, "b1", "u1")
		repo.EXPECT().FindByBookAndUser(ctx, "b1", "u1").Return(existing, nil)
		repo.EXPECT().Delete(ctx, existing.ID).Return(nil)

		deleted, err := rating.NewService(repo).Delete(ctx, "b1", "u1")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, deleted.ID)
	})

	t.Run("没有评分返回NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().FindByBookAndUser(ctx, "b1", "u1").Return(nil, rating.ErrRatingNotFound)

		_, err := rating.NewService(repo).Delete(ctx, "b1", "u1")
		assert.ErrorIs(t, err, rating.ErrRatingNotFound)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestService_SaveTwiceSameVote(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := rating.NewService(repo)

	var stored *rating.Rating
	repo.EXPECT().FindByBookAndUser(ctx, "b1", "u1").DoAndReturn(func(context.Context, string, string) (*rating.Rating, error) {
		if stored == nil {
			return nil, rating.ErrRatingNotFound
		}
		return stored, nil
	}).Times(2)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *rating.Rating) error {
		stored = r
		return nil
	}).Times(1)
	repo.EXPECT().ListByBookID(ctx, "b1").Return([]*rating.Rating{}, nil).Times(1)

	_, first, err := svc.Save(ctx, 4, "b1", "u1")
	require.NoError(t, err)
	_, second, err := svc.Save(ctx, 4, "b1", "u1")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}
