package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"图书不存在", ErrBookNotFound, http.StatusNotFound},
		{"未登录", ErrUnauthorized, http.StatusUnauthorized},
		{"密码错误", ErrInvalidPassword, http.StatusUnauthorized},
		{"无权限", ErrForbidden, http.StatusForbidden},
		{"登录被锁定", ErrLoginBlocked, http.StatusForbidden},
		{"库存不足", ErrInsufficientStock, http.StatusBadRequest},
		{"参数错误", ErrInvalidParams, http.StatusBadRequest},
		{"限流", New(ErrCodeTooManyRequests, "slow down"), http.StatusTooManyRequests},
		{"邮件失败", ErrMailError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestGetAppError(t *testing.T) {
	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		cause := errors.New("connection reset")
		appErr := GetAppError(cause)
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.ErrorIs(t, appErr, cause)
	})

	t.Run("AppError原样返回", func(t *testing.T) {
		assert.Same(t, ErrBookNotFound, GetAppError(ErrBookNotFound))
	})

	t.Run("WithMessage保留错误码", func(t *testing.T) {
		e := ErrForbidden.WithMessage("只能操作自己的数据")
		assert.Equal(t, ErrCodeForbidden, e.Code)
		assert.True(t, IsAppError(e))
		assert.False(t, IsNotFound(e))
		assert.True(t, IsNotFound(ErrAuthorNotFound))
	})
}
