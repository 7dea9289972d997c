package rating

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinVote 最低评分
	MinVote = 1
	// MaxVote 最高评分
	MaxVote = 5
	// NoVote 接口层的"未评分"占位值，不会被持久化
	NoVote = 0
)

// Rating 评分实体
// 业务规则:
// 1. 每个用户对每本图书最多一条评分（数据库(book_id, user_id)唯一索引兜底）
// 2. 存储的Vote取值1-5
type Rating struct {
	ID        string
	Vote      int
	BookID    string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRating 创建评分(工厂方法)
func NewRating(vote int, bookID, userID string) (*Rating, error) {
	if !IsValidVote(vote) {
		return nil, ErrInvalidVote
	}
	now := time.Now()
	return &Rating{
		ID:        uuid.NewString(),
		Vote:      vote,
		BookID:    bookID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Placeholder 用户未评分时接口返回的零分占位
func Placeholder(bookID, userID string) *Rating {
	return &Rating{Vote: NoVote, BookID: bookID, UserID: userID}
}

// ChangeVote 修改评分，返回是否发生变化
func (r *Rating) ChangeVote(vote int) (bool, error) {
	if !IsValidVote(vote) {
		return false, ErrInvalidVote
	}
	if r.Vote == vote {
		return false, nil
	}
	r.Vote = vote
	r.UpdatedAt = time.Now()
	return true, nil
}

// IsValidVote 可持久化的评分值
func IsValidVote(vote int) bool {
	return vote >= MinVote && vote <= MaxVote
}

// Summary 图书评分汇总
type Summary struct {
	Average float64
	Count   int64
}
