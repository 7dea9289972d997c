package comment

import (
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

var (
	// ErrInvalidContent 评论长度不合法
	ErrInvalidContent = apperrors.New(apperrors.ErrCodeInvalidComment, "评论内容长度应为3-255个字符")
)
