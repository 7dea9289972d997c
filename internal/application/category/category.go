package category

import (
	"context"
	"time"

	appbook "github.com/xiebiao/bookstore-rest/internal/application/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/category"
	"github.com/xiebiao/bookstore-rest/pkg/pagination"
)

// Item 分类列表项
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Wrapper 分类详情 + 分类下图书分页
type Wrapper struct {
	ID        string                           `json:"id"`
	Name      string                           `json:"name"`
	CreatedAt string                           `json:"createdAt"`
	Books     pagination.Page[appbook.Summary] `json:"books"`
}

// ListCategoriesUseCase 分类列表（按名称升序）
type ListCategoriesUseCase struct {
	categoryRepo category.Repository
}

// NewListCategoriesUseCase 创建分类列表用例
func NewListCategoriesUseCase(categoryRepo category.Repository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

// Execute 查询全部分类
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]Item, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	category.SortByName(categories)

	items := make([]Item, len(categories))
	for i, c := range categories {
		items[i] = Item{ID: c.ID, Name: c.Name}
	}
	return items, nil
}

// GetCategoryUseCase 分类详情
type GetCategoryUseCase struct {
	categoryRepo category.Repository
	bookRepo     book.Repository
}

// NewGetCategoryUseCase 创建分类详情用例
func NewGetCategoryUseCase(categoryRepo category.Repository, bookRepo book.Repository) *GetCategoryUseCase {
	return &GetCategoryUseCase{categoryRepo: categoryRepo, bookRepo: bookRepo}
}

// GetCategoryRequest 分类详情请求
type GetCategoryRequest struct {
	CategoryID string
	Page       int
	Size       int
}

// Execute 分类不存在返回ErrCategoryNotFound
func (uc *GetCategoryUseCase) Execute(ctx context.Context, req GetCategoryRequest) (*Wrapper, error) {
	c, err := uc.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	books, err := uc.bookRepo.ListByCategoryID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.SetBooks(books)
	book.SortByUpdatedDesc(c.Books)

	return &Wrapper{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		Books:     pagination.Map(pagination.Of(c.Books, req.Page, req.Size), appbook.ToSummary),
	}, nil
}

// CreateCategoryUseCase 新建分类
type CreateCategoryUseCase struct {
	categoryRepo category.Repository
}

// NewCreateCategoryUseCase 创建新建分类用例
func NewCreateCategoryUseCase(categoryRepo category.Repository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute 名称重复时仓储返回ErrDuplicateName
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, name string) (*Item, error) {
	c, err := category.NewCategory(name)
	if err != nil {
		return nil, err
	}
	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &Item{ID: c.ID, Name: c.Name}, nil
}
