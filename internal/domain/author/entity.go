package author

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/user"
)

// Author 作者实体
// Books是读缓存：外键在图书一侧（book.AuthorID），集合由book.Repository.ListByAuthorID刷新
type Author struct {
	ID        string
	FirstName string
	LastName  string
	Books     []*book.Book
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor 创建作者(工厂方法)
func NewAuthor(firstName, lastName string) (*Author, error) {
	if strings.TrimSpace(firstName) == "" && strings.TrimSpace(lastName) == "" {
		return nil, ErrInvalidName
	}
	now := time.Now()
	return &Author{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Books:     []*book.Book{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FullName 展示名
func (a *Author) FullName() string {
	return user.DisplayName(a.FirstName, a.LastName)
}

// LinkBook 建立作者与图书的双向关联
// 一次调用同时设置book.AuthorID和作者的图书集合
func (a *Author) LinkBook(b *book.Book) {
	b.AuthorID = a.ID
	for _, existing := range a.Books {
		if existing.ID == b.ID {
			return
		}
	}
	a.Books = append(a.Books, b)
}

// SetBooks 用仓储查询结果刷新图书集合，nil视为空集合
func (a *Author) SetBooks(books []*book.Book) {
	if books == nil {
		books = []*book.Book{}
	}
	a.Books = books
}
