package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/xiebiao/bookstore-rest/internal/domain/user"
	"github.com/xiebiao/bookstore-rest/internal/domain/user/mocks"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("注册成功并加密密码", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		svc := user.NewServiceWithCost(repo, bcrypt.MinCost)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		u, err := svc.Register(ctx, "Ann", "Lee", " ann@example.com ", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "ann@example.com", u.Email)
		assert.NotEqual(t, "secret123", u.PasswordHash)
		assert.NoError(t, svc.ValidatePassword(u.PasswordHash, "secret123"))
	})

	t.Run("邮箱格式错误", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := user.NewServiceWithCost(mocks.NewMockRepository(ctrl), bcrypt.MinCost)

		_, err := svc.Register(ctx, "Ann", "Lee", "not-an-email", "secret123")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})

	t.Run("密码强度不足", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := user.NewServiceWithCost(mocks.NewMockRepository(ctrl), bcrypt.MinCost)

		for _, pw := range []string{"short1", "onlyletters", "12345678", "averyveryverylongpassword123"} {
			_, err := svc.Register(ctx, "Ann", "Lee", "ann@example.com", pw)
			assert.ErrorIs(t, err, apperrors.ErrWeakPassword, pw)
		}
	})

	t.Run("邮箱重复", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		svc := user.NewServiceWithCost(repo, bcrypt.MinCost)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(apperrors.ErrEmailDuplicate)

		_, err := svc.Register(ctx, "Ann", "Lee", "ann@example.com", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := user.NewUser("Ann", "Lee", "ann@example.com", string(hash))

	t.Run("登录成功", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(stored, nil)

		u, err := user.NewService(repo).Login(ctx, "ann@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, u.ID)
	})

	t.Run("密码错误", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(stored, nil)

		_, err := user.NewService(repo).Login(ctx, "ann@example.com", "wrong1234")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("邮箱不存在返回同样的错误", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, apperrors.ErrUserNotFound)

		_, err := user.NewService(repo).Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ann Lee", user.DisplayName("Ann", "Lee"))
	assert.Equal(t, "Ann ", user.DisplayName("Ann", ""))
	assert.Equal(t, " ", user.DisplayName("", ""))
}
