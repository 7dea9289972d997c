package comment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	appcomment "github.com/xiebiao/bookstore-rest/internal/application/comment"
	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	bookmocks "github.com/xiebiao/bookstore-rest/internal/domain/book/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/comment"
	commentmocks "github.com/xiebiao/bookstore-rest/internal/domain/comment/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/user"
	usermocks "github.com/xiebiao/bookstore-rest/internal/domain/user/mocks"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

type fixture struct {
	books    *bookmocks.MockRepository
	comments *commentmocks.MockRepository
	users    *usermocks.MockRepository
	service  comment.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		books:    bookmocks.NewMockRepository(ctrl),
		comments: commentmocks.NewMockRepository(ctrl),
		users:    usermocks.NewMockRepository(ctrl),
	}
	f.service = comment.NewService(f.comments, f.users)
	return f
}

func TestListCommentsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("图书不存在返回400", func(t *testing.T) {
		f := newFixture(t)
		f.books.EXPECT().ExistsByID(ctx, "b1").Return(false, nil)

		_, err := appcomment.NewListCommentsUseCase(f.service, f.books).Execute(ctx, appcomment.ListCommentsRequest{BookID: "b1"})
		require.ErrorIs(t, err, appcomment.ErrCommentBookAbsent)
		assert.Equal(t, 400, apperrors.GetAppError(err).HTTPStatus())
	})

	t.Run("默认每页10条", func(t *testing.T) {
		f := newFixture(t)
		now := time.Now()
		f.books.EXPECT().ExistsByID(ctx, "b1").Return(true, nil)
		f.comments.EXPECT().ListByBookID(ctx, "b1").Return([]*comment.Comment{
			{ID: "c1", Content: "first", BookID: "b1", UserID: "u1", UpdatedAt: now.Add(-time.Minute)},
			{ID: "c2", Content: "second", BookID: "b1", UserID: "u1", UpdatedAt: now},
		}, nil)
		f.users.EXPECT().FindByIDs(ctx, []string{"u1"}).Return([]*user.User{{ID: "u1", FirstName: "Jane", LastName: "Doe"}}, nil)

		page, err := appcomment.NewListCommentsUseCase(f.service, f.books).Execute(ctx, appcomment.ListCommentsRequest{BookID: "b1"})
		require.NoError(t, err)
		assert.Equal(t, appcomment.DefaultPageSize, page.Size)
		require.Len(t, page.Content, 2)
		assert.Equal(t, "c2", page.Content[0].ID)
		assert.Equal(t, "Jane Doe", page.Content[0].DisplayName)
	})
}

func TestAddCommentUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("图书不存在", func(t *testing.T) {
		f := newFixture(t)
		f.books.EXPECT().ExistsByID(ctx, "b1").Return(false, nil)

		_, err := appcomment.NewAddCommentUseCase(f.service, f.books, f.users).Execute(ctx, appcomment.AddCommentRequest{BookID: "b1", UserID: "u1", Content: "great"})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("用户不存在", func(t *testing.T) {
		f := newFixture(t)
		f.books.EXPECT().ExistsByID(ctx, "b1").Return(true, nil)
		f.users.EXPECT().ExistsByID(ctx, "u1").Return(false, nil)

		_, err := appcomment.NewAddCommentUseCase(f.service, f.books, f.users).Execute(ctx, appcomment.AddCommentRequest{BookID: "b1", UserID: "u1", Content: "great"})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("内容太短", func(t *testing.T) {
		f := newFixture(t)
		f.books.EXPECT().ExistsByID(ctx, "b1").Return(true, nil)
		f.users.EXPECT().ExistsByID(ctx, "u1").Return(true, nil)

		_, err := appcomment.NewAddCommentUseCase(f.service, f.books, f.users).Execute(ctx, appcomment.AddCommentRequest{BookID: "b1", UserID: "u1", Content: "ok"})
		assert.ErrorIs(t, err, comment.ErrInvalidContent)
	})

	t.Run("返回全部评论", func(t *testing.T) {
		f := newFixture(t)
		existing := &comment.Comment{ID: "c0", Content: "older", BookID: "b1", UserID: "u2"}
		f.books.EXPECT().ExistsByID(ctx, "b1").Return(true, nil)
		f.users.EXPECT().ExistsByID(ctx, "u1").Return(true, nil)

		var created *comment.Comment
		f.comments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *comment.Comment) error {
			created = c
			return nil
		})
		f.comments.EXPECT().ListByBookID(ctx, "b1").DoAndReturn(func(context.Context, string) ([]*comment.Comment, error) {
			return []*comment.Comment{existing, created}, nil
		})

		items, err := appcomment.NewAddCommentUseCase(f.service, f.books, f.users).Execute(ctx, appcomment.AddCommentRequest{BookID: "b1", UserID: "u1", Content: "great book"})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "great book", items[1].Content)
		assert.Equal(t, "u1", items[1].UserID)
	})
}
