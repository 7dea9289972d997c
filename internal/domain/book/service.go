package book

import (
	"context"

	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
	"github.com/xiebiao/bookstore-rest/pkg/pagination"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// Create 校验并保存图书
	// 作者、分类的关联由调用方通过LinkBook建立后再调用
	Create(ctx context.Context, b *Book) error

	// GetByID 根据ID获取图书详情
	GetByID(ctx context.Context, id string) (*Book, error)

	// List 分页查询上架图书
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, b *Book) error {
	if b.AuthorID == "" {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "图书必须关联作者")
	}
	if err := ValidatePrice(b.Price, b.PromoPrice); err != nil {
		return err
	}
	if b.UnitsInStock < 0 {
		return ErrInvalidStock
	}
	return s.repo.Create(ctx, b)
}

func (s *service) GetByID(ctx context.Context, id string) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// List 参数默认值：page=0，size=24，sort=updated_desc
func (s *service) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	params.Page, params.Size = pagination.Normalize(params.Page, params.Size)
	if !IsValidSort(params.Sort) {
		return nil, 0, apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的排序方式: "+params.Sort)
	}
	if params.Sort == "" {
		params.Sort = SortUpdatedDesc
	}
	return s.repo.List(ctx, params)
}
