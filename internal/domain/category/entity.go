package category

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xiebiao/bookstore-rest/internal/domain/book"
)

// Category 图书分类
// 与图书多对多，关联表book_categories；Books是读缓存
type Category struct {
	ID        string
	Name      string
	Books     []*book.Book
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory 创建分类(工厂方法)
func NewCategory(name string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	now := time.Now()
	return &Category{
		ID:        uuid.NewString(),
		Name:      name,
		Books:     []*book.Book{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// LinkBook 建立分类与图书的双向关联
func (c *Category) LinkBook(b *book.Book) {
	b.AddCategory(c.ID)
	for _, existing := range c.Books {
		if existing.ID == b.ID {
			return
		}
	}
	c.Books = append(c.Books, b)
}

// SetBooks 用仓储查询结果刷新图书集合，nil视为空集合
func (c *Category) SetBooks(books []*book.Book) {
	if books == nil {
		books = []*book.Book{}
	}
	c.Books = books
}

// SortByName 按名称升序
func SortByName(categories []*Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
}
