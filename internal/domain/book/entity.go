package book

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookstore-rest/internal/domain/rating"
)

// MaxPrice 价格上限（数据库列为decimal(5,2)）
var MaxPrice = decimal.RequireFromString("999.99")

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. 价格使用decimal(避免浮点数精度问题)，范围0-999.99
// 2. 作者、分类只保存ID，关联关系由author.LinkBook/category.LinkBook维护
// 3. Ratings是读缓存，由评分仓储显式刷新，不做懒加载
type Book struct {
	ID           string
	Title        string
	Subtitle     string
	Description  string
	ImageURL     string
	IssueYear    int
	PageCount    int
	Hardcover    bool
	AuthorID     string
	Price        decimal.Decimal
	PromoPrice   decimal.NullDecimal // 促销价，未设置时Valid=false
	Active       bool
	UnitsInStock int
	CategoryIDs  []string
	Ratings      []*rating.Rating
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Params 创建图书的参数
type Params struct {
	Title        string
	Subtitle     string
	Description  string
	ImageURL     string
	IssueYear    int
	PageCount    int
	Hardcover    bool
	Price        decimal.Decimal
	PromoPrice   decimal.NullDecimal
	Active       bool
	UnitsInStock int
}

// NewBook 创建新图书(工厂方法)
// 业务规则:
// - 书名不能为空
// - 价格在0-999.99之间，促销价不能高于原价
// - 库存不能为负数
// 字段原样复制，ID和时间戳由工厂生成
func NewBook(p Params) (*Book, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, ErrInvalidTitle
	}
	if err := ValidatePrice(p.Price, p.PromoPrice); err != nil {
		return nil, err
	}
	if p.UnitsInStock < 0 {
		return nil, ErrInvalidStock
	}

	now := time.Now()
	return &Book{
		ID:           uuid.NewString(),
		Title:        p.Title,
		Subtitle:     p.Subtitle,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		IssueYear:    p.IssueYear,
		PageCount:    p.PageCount,
		Hardcover:    p.Hardcover,
		Price:        p.Price,
		PromoPrice:   p.PromoPrice,
		Active:       p.Active,
		UnitsInStock: p.UnitsInStock,
		CategoryIDs:  []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ValidatePrice 价格校验
// 超过两位小数的价格直接拒绝，不在入库时四舍五入
func ValidatePrice(price decimal.Decimal, promo decimal.NullDecimal) error {
	if price.IsNegative() || price.GreaterThan(MaxPrice) || !HasCents(price) {
		return ErrInvalidPrice
	}
	if promo.Valid {
		if promo.Decimal.IsNegative() || promo.Decimal.GreaterThan(price) || !HasCents(promo.Decimal) {
			return ErrInvalidPromoPrice
		}
	}
	return nil
}

// HasCents 最多两位有效小数（9.990视为9.99）
func HasCents(d decimal.Decimal) bool {
	return d.Round(2).Equal(d)
}

// EffectivePrice 实际售价（有促销价时取促销价）
func (b *Book) EffectivePrice() decimal.Decimal {
	if b.PromoPrice.Valid {
		return b.PromoPrice.Decimal
	}
	return b.Price
}

// Paragraphs 按换行拆分描述，去掉空段落
func (b *Book) Paragraphs() []string {
	lines := strings.Split(strings.ReplaceAll(b.Description, "\r\n", "\n"), "\n")
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		if p := strings.TrimSpace(line); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// DecrStock 扣减库存(用于下单)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.UnitsInStock < quantity {
		return ErrInsufficientStock
	}
	b.UnitsInStock -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// HasCategory 是否属于指定分类
func (b *Book) HasCategory(categoryID string) bool {
	for _, id := range b.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// AddCategory 记录分类ID（由category.LinkBook调用，重复添加无效果）
func (b *Book) AddCategory(categoryID string) {
	if b.HasCategory(categoryID) {
		return
	}
	b.CategoryIDs = append(b.CategoryIDs, categoryID)
}

// SetRatings 刷新评分缓存，nil视为空集合
func (b *Book) SetRatings(ratings []*rating.Rating) {
	if ratings == nil {
		ratings = []*rating.Rating{}
	}
	b.Ratings = ratings
}

// RemoveRating 从评分缓存中移除用户的评分
// 删除评分时必须同时调用，保证内存集合与数据库一致
func (b *Book) RemoveRating(userID string) bool {
	for i, r := range b.Ratings {
		if r.UserID == userID {
			b.Ratings = append(b.Ratings[:i], b.Ratings[i+1:]...)
			return true
		}
	}
	return false
}

// SortByUpdatedDesc 按更新时间倒序，时间相同保持原顺序
func SortByUpdatedDesc(books []*Book) {
	sort.SliceStable(books, func(i, j int) bool {
		return books[i].UpdatedAt.After(books[j].UpdatedAt)
	})
}
