package book

import (
	"time"

	"github.com/xiebiao/bookstore-rest/internal/domain/book"
)

// 应用层DTO
// 说明：不直接返回领域实体，领域模型变更不影响API契约
// 金额统一格式化为两位小数的字符串，避免JSON数字的精度问题

// Summary 图书列表项（不含描述）
// 图书列表、作者详情、分类详情共用
type Summary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	ImageURL     string   `json:"imageUrl"`
	AuthorID     string   `json:"authorId"`
	Price        string   `json:"price"`
	PromoPrice   *string  `json:"promoPrice,omitempty"`
	Active       bool     `json:"active"`
	UnitsInStock int      `json:"unitsInStock"`
	CategoryIDs  []string `json:"categoryIds"`
	UpdatedAt    string   `json:"updatedAt"`
}

// Detail 图书详情
type Detail struct {
	Summary
	Description string        `json:"description"`
	Paragraphs  []string      `json:"paragraphs"`
	IssueYear   int           `json:"issueYear"`
	PageCount   int           `json:"pageCount"`
	Hardcover   bool          `json:"hardcover"`
	AuthorName  string        `json:"authorName"`
	Categories  []CategoryRef `json:"categories"`
	Rating      RatingSummary `json:"rating"`
	CreatedAt   string        `json:"createdAt"`
}

// CategoryRef 详情中的分类
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RatingSummary 评分汇总
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// ToSummary 领域实体 → 列表项DTO
func ToSummary(b *book.Book) Summary {
	s := Summary{
		ID:           b.ID,
		Title:        b.Title,
		Subtitle:     b.Subtitle,
		ImageURL:     b.ImageURL,
		AuthorID:     b.AuthorID,
		Price:        b.Price.StringFixed(2),
		Active:       b.Active,
		UnitsInStock: b.UnitsInStock,
		CategoryIDs:  b.CategoryIDs,
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
	if s.CategoryIDs == nil {
		s.CategoryIDs = []string{}
	}
	if b.PromoPrice.Valid {
		promo := b.PromoPrice.Decimal.StringFixed(2)
		s.PromoPrice = &promo
	}
	return s
}

// ToSummaries 批量转换
func ToSummaries(books []*book.Book) []Summary {
	list := make([]Summary, len(books))
	for i, b := range books {
		list[i] = ToSummary(b)
	}
	return list
}
