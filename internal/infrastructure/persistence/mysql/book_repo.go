package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
	"github.com/xiebiao/bookstore-rest/pkg/pagination"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 分类只用到ID，预加载时只查询关联表需要的列
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
// Omit("Categories.*")：只写入book_categories关联表，不upsert分类本身
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := conn(ctx, r.db).Omit("Categories.*").Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := r.withCategories(conn(ctx, r.db)).Where("id = ?", id).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// ExistsByID 存在性检查
func (r *bookRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&BookModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询图书失败")
	}
	return count > 0, nil
}

// Update 更新图书信息（不改动分类关联）
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	result := conn(ctx, r.db).Model(model).Select("*").Omit("Categories", "Comments", "Ratings", "CreatedAt").Updates(model)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// List 分页查询上架图书
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := conn(ctx, r.db).Model(&BookModel{}).Where("active = ?", true)

	// 关键词搜索(书名、副标题)
	if params.Keyword != "" {
		keyword := likePattern(params.Keyword)
		query = query.Where("title LIKE ? OR subtitle LIKE ?", keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	offset, ok := pagination.Offset(params.Page, params.Size, total)
	if !ok {
		return []*book.Book{}, total, nil
	}

	switch params.Sort {
	case book.SortPriceAsc:
		query = query.Order("price ASC")
	case book.SortPriceDesc:
		query = query.Order("price DESC")
	case book.SortTitleAsc:
		query = query.Order("title ASC")
	default:
		query = query.Order("updated_at DESC")
	}
	query = query.Order("id ASC") // 排序字段相同时保证分页稳定

	err := r.withCategories(query).
		Limit(params.Size).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	return toBookEntities(models), total, nil
}

// ListByAuthorID 作者的全部图书（排序由调用方负责）
func (r *bookRepository) ListByAuthorID(ctx context.Context, authorID string) ([]*book.Book, error) {
	var models []BookModel
	err := r.withCategories(conn(ctx, r.db)).Where("author_id = ?", authorID).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者图书失败")
	}
	return toBookEntities(models), nil
}

// ListByCategoryID 分类下的全部图书（排序由调用方负责）
func (r *bookRepository) ListByCategoryID(ctx context.Context, categoryID string) ([]*book.Book, error) {
	var models []BookModel
	err := r.withCategories(conn(ctx, r.db)).
		Joins("JOIN book_categories bc ON bc.book_id = books.id").
		Where("bc.category_id = ?", categoryID).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询分类图书失败")
	}
	return toBookEntities(models), nil
}

// LockByID 悲观锁查询图书(下单时锁定库存)
// SELECT ... FOR UPDATE锁定行，其他事务必须等待当前事务COMMIT或ROLLBACK
// 必须在TxManager开启的事务中调用，否则锁在语句结束时就释放了
func (r *bookRepository) LockByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}
	return toBookEntity(&model), nil
}

// UpdateStock 更新库存(原子操作)
// UPDATE books SET units_in_stock = units_in_stock + delta WHERE id = ? AND units_in_stock + delta >= 0
func (r *bookRepository) UpdateStock(ctx context.Context, id string, delta int) error {
	db := conn(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("units_in_stock + ? >= 0", delta).
		Update("units_in_stock", gorm.Expr("units_in_stock + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}

	if result.RowsAffected == 0 {
		// 图书不存在或者库存不足，再查一次确定原因
		exists, err := r.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return book.ErrBookNotFound
		}
		return book.ErrInsufficientStock
	}
	return nil
}

// withCategories 预加载分类ID
func (r *bookRepository) withCategories(db *gorm.DB) *gorm.DB {
	return db.Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Select("id")
	})
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toBookModel(b *book.Book) *BookModel {
	categories := make([]CategoryModel, len(b.CategoryIDs))
	for i, id := range b.CategoryIDs {
		categories[i] = CategoryModel{ID: id}
	}
	return &BookModel{
		ID:           b.ID,
		Title:        b.Title,
		Subtitle:     b.Subtitle,
		Description:  b.Description,
		ImageURL:     b.ImageURL,
		IssueYear:    b.IssueYear,
		PageCount:    b.PageCount,
		Hardcover:    b.Hardcover,
		AuthorID:     b.AuthorID,
		Price:        b.Price,
		PromoPrice:   b.PromoPrice,
		Active:       b.Active,
		UnitsInStock: b.UnitsInStock,
		Categories:   categories,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
// Ratings不在这里加载，由评分仓储显式刷新
func toBookEntity(model *BookModel) *book.Book {
	categoryIDs := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		categoryIDs[i] = c.ID
	}
	return &book.Book{
		ID:           model.ID,
		Title:        model.Title,
		Subtitle:     model.Subtitle,
		Description:  model.Description,
		ImageURL:     model.ImageURL,
		IssueYear:    model.IssueYear,
		PageCount:    model.PageCount,
		Hardcover:    model.Hardcover,
		AuthorID:     model.AuthorID,
		Price:        model.Price,
		PromoPrice:   model.PromoPrice,
		Active:       model.Active,
		UnitsInStock: model.UnitsInStock,
		CategoryIDs:  categoryIDs,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}
