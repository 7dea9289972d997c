package book

import (
	"context"
)

//go:generate mockgen -destination=mocks/repository.go -package=mocks . Repository

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 关联集合（作者的书、分类的书）都是显式查询
type Repository interface {
	// Create 创建图书(同时写入分类关联)
	Create(ctx context.Context, b *Book) error

	// FindByID 根据ID查找图书，不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id string) (*Book, error)

	// ExistsByID 存在性检查
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Update 更新图书信息
	Update(ctx context.Context, b *Book) error

	// List 分页查询上架图书
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListByAuthorID 作者的全部图书
	ListByAuthorID(ctx context.Context, authorID string) ([]*Book, error)

	// ListByCategoryID 分类下的全部图书
	ListByCategoryID(ctx context.Context, categoryID string) ([]*Book, error)

	// LockByID 悲观锁查询图书(下单时锁定库存)
	// 使用SELECT FOR UPDATE锁定行,防止并发超卖，必须在事务中调用
	LockByID(ctx context.Context, id string) (*Book, error)

	// UpdateStock 更新库存(原子操作)
	// delta为正数表示增加,负数表示减少
	// 库存不足时返回ErrInsufficientStock
	UpdateStock(ctx context.Context, id string, delta int) error
}

// 排序方式
const (
	SortUpdatedDesc = "updated_desc"
	SortPriceAsc    = "price_asc"
	SortPriceDesc   = "price_desc"
	SortTitleAsc    = "title_asc"
)

// ListParams 列表查询参数
type ListParams struct {
	Page    int    // 页码(从0开始)
	Size    int    // 每页数量
	Keyword string // 搜索关键词(书名、副标题)
	Sort    string // 排序方式，见Sort*常量
}

// IsValidSort 排序方式是否合法（空字符串使用默认排序）
func IsValidSort(sort string) bool {
	switch sort {
	case "", SortUpdatedDesc, SortPriceAsc, SortPriceDesc, SortTitleAsc:
		return true
	}
	return false
}
