package category

import (
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.ErrCategoryNotFound

	// ErrInvalidName 分类名为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "分类名称不能为空")

	// ErrDuplicateName 分类名已存在
	ErrDuplicateName = apperrors.New(apperrors.ErrCodeDuplicateEntry, "分类名称已存在")
)
