package rating

import (
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

// 评分领域错误定义
var (
	// ErrRatingNotFound 评分不存在
	ErrRatingNotFound = apperrors.New(apperrors.ErrCodeRatingNotFound, "评分不存在")

	// ErrInvalidVote 评分超出范围
	ErrInvalidVote = apperrors.New(apperrors.ErrCodeInvalidVote, "评分必须在1到5之间")

	// ErrDuplicateRating 并发插入触发唯一索引
	ErrDuplicateRating = apperrors.New(apperrors.ErrCodeDuplicateEntry, "该用户已对此图书评分")
)
