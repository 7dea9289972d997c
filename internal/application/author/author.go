package author

import (
	"context"
	"time"

	appbook "github.com/xiebiao/bookstore-rest/internal/application/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/author"
	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/pkg/pagination"
)

// Wrapper 作者详情 + 作者图书分页
type Wrapper struct {
	ID        string                          `json:"id"`
	FirstName string                          `json:"firstName"`
	LastName  string                          `json:"lastName"`
	FullName  string                          `json:"fullName"`
	CreatedAt string                          `json:"createdAt"`
	Books     pagination.Page[appbook.Summary] `json:"books"`
}

// GetAuthorUseCase 作者详情
// 流程: 查作者 → 显式查询作者的图书 → 按更新时间倒序 → 内存分页
type GetAuthorUseCase struct {
	authorRepo author.Repository
	bookRepo   book.Repository
}

// NewGetAuthorUseCase 创建作者详情用例
func NewGetAuthorUseCase(authorRepo author.Repository, bookRepo book.Repository) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorRepo: authorRepo, bookRepo: bookRepo}
}

// GetAuthorRequest 作者详情请求
type GetAuthorRequest struct {
	AuthorID string
	Page     int
	Size     int
}

// Execute 作者不存在返回ErrAuthorNotFound
func (uc *GetAuthorUseCase) Execute(ctx context.Context, req GetAuthorRequest) (*Wrapper, error) {
	a, err := uc.authorRepo.FindByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	books, err := uc.bookRepo.ListByAuthorID(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.SetBooks(books)
	book.SortByUpdatedDesc(a.Books)

	page := pagination.Map(pagination.Of(a.Books, req.Page, req.Size), appbook.ToSummary)
	return &Wrapper{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		FullName:  a.FullName(),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		Books:     page,
	}, nil
}

// CreateAuthorUseCase 新建作者
type CreateAuthorUseCase struct {
	authorRepo author.Repository
}

// NewCreateAuthorUseCase 创建新建作者用例
func NewCreateAuthorUseCase(authorRepo author.Repository) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authorRepo: authorRepo}
}

// CreateAuthorResponse 新建作者响应
type CreateAuthorResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Execute 姓和名不能同时为空
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, firstName, lastName string) (*CreateAuthorResponse, error) {
	a, err := author.NewAuthor(firstName, lastName)
	if err != nil {
		return nil, err
	}
	if err := uc.authorRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return &CreateAuthorResponse{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}, nil
}
