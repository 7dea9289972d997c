package book

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookstore-rest/internal/domain/author"
	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/category"
	"github.com/xiebiao/bookstore-rest/internal/domain/transaction"
)

// CreateBookUseCase 新建图书
// 流程:
// 1. 作者、分类必须存在（不存在返回404）
// 2. 工厂方法校验价格、库存
// 3. author.LinkBook / category.LinkBook建立双向关联
// 4. 事务内保存图书和分类关联
type CreateBookUseCase struct {
	bookService  book.Service
	authorRepo   author.Repository
	categoryRepo category.Repository
	txManager    transaction.Manager
}

// NewCreateBookUseCase 创建新建图书用例
func NewCreateBookUseCase(
	bookService book.Service,
	authorRepo author.Repository,
	categoryRepo category.Repository,
	txManager transaction.Manager,
) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService:  bookService,
		authorRepo:   authorRepo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
	}
}

// CreateBookRequest 新建图书请求DTO
type CreateBookRequest struct {
	Title        string
	Subtitle     string
	Description  string
	ImageURL     string
	IssueYear    int
	PageCount    int
	Hardcover    bool
	AuthorID     string
	CategoryIDs  []string
	Price        decimal.Decimal
	PromoPrice   decimal.NullDecimal
	Active       bool
	UnitsInStock int
}

// Execute 执行新建图书
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*Summary, error) {
	a, err := uc.authorRepo.FindByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	categories, err := uc.findCategories(ctx, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	b, err := book.NewBook(book.Params{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		IssueYear:    req.IssueYear,
		PageCount:    req.PageCount,
		Hardcover:    req.Hardcover,
		Price:        req.Price,
		PromoPrice:   req.PromoPrice,
		Active:       req.Active,
		UnitsInStock: req.UnitsInStock,
	})
	if err != nil {
		return nil, err
	}

	a.LinkBook(b)
	for _, c := range categories {
		c.LinkBook(b)
	}

	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		return uc.bookService.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	summary := ToSummary(b)
	return &summary, nil
}

// findCategories 去重后批量查询，任何一个不存在都返回ErrCategoryNotFound
func (uc *CreateBookUseCase) findCategories(ctx context.Context, ids []string) ([]*category.Category, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	categories, err := uc.categoryRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(unique) {
		return nil, category.ErrCategoryNotFound
	}
	return categories, nil
}
