package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-rest/internal/domain/author"
	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if err := conn(ctx, r.db).Omit("Books").Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}
	return nil
}

// FindByID 图书集合不预加载，由调用方通过book.Repository.ListByAuthorID刷新
func (r *authorRepository) FindByID(ctx context.Context, id string) (*author.Author, error) {
	var model AuthorModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return &author.Author{
		ID:        model.ID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Books:     []*book.Book{},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func (r *authorRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&AuthorModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询作者失败")
	}
	return count > 0, nil
}
