package book

import (
	"context"

	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/pkg/pagination"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 支持分页、搜索、排序
// 2. 只返回上架图书
// 3. 列表查询不返回description字段(减少数据传输量)
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page    int    // 页码(从0开始)
	Size    int    // 每页数量
	Keyword string // 搜索关键词(书名、副标题)
	Sort    string // updated_desc | price_asc | price_desc | title_asc
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*pagination.Page[Summary], error) {
	page, size := pagination.Normalize(req.Page, req.Size)

	books, total, err := uc.bookService.List(ctx, book.ListParams{
		Page:    page,
		Size:    size,
		Keyword: req.Keyword,
		Sort:    req.Sort,
	})
	if err != nil {
		return nil, err
	}

	result := pagination.New(ToSummaries(books), total, page, size)
	return &result, nil
}
