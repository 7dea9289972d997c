package comment

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// MinContentLength 评论最短字符数
	MinContentLength = 3
	// MaxContentLength 评论最长字符数
	MaxContentLength = 255
)

// Comment 评论实体
// 外键BookID、UserID在评论一侧，图书一侧的评论集合由ListByBookID显式查询
type Comment struct {
	ID        string
	Content   string
	BookID    string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewComment 创建评论(工厂方法)
// 内容原样保存，长度按字符（rune）计算，首尾空白也计入
func NewComment(content, bookID, userID string) (*Comment, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Comment{
		ID:        uuid.NewString(),
		Content:   content,
		BookID:    bookID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateContent 校验评论内容长度（3-255个字符），纯空白视为无效
// 校验的字符串即入库的字符串，content列为varchar(255)
func ValidateContent(content string) error {
	n := utf8.RuneCountInString(content)
	if n < MinContentLength || n > MaxContentLength {
		return ErrInvalidContent
	}
	if strings.TrimSpace(content) == "" {
		return ErrInvalidContent
	}
	return nil
}

// View 评论展示对象（展示名不落库，查询后在应用代码里拼接）
type View struct {
	ID          string
	Content     string
	BookID      string
	UserID      string
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SortByUpdatedDesc 按更新时间倒序，时间相同保持原顺序
func SortByUpdatedDesc(comments []*Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].UpdatedAt.After(comments[j].UpdatedAt)
	})
}
