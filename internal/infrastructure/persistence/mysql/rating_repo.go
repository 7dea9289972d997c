package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-rest/internal/domain/rating"
	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository 创建评分仓储
func NewRatingRepository(db *gorm.DB) rating.Repository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) ListByBookID(ctx context.Context, bookID string) ([]*rating.Rating, error) {
	var models []RatingModel
	if err := conn(ctx, r.db).Where("book_id = ?", bookID).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询评分失败")
	}

	ratings := make([]*rating.Rating, len(models))
	for i := range models {
		ratings[i] = toRatingEntity(&models[i])
	}
	return ratings, nil
}

func (r *ratingRepository) FindByBookAndUser(ctx context.Context, bookID, userID string) (*rating.Rating, error) {
	var model RatingModel
	err := conn(ctx, r.db).Where("book_id = ? AND user_id = ?", bookID, userID).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, rating.ErrRatingNotFound
		}
		return nil, apperrors.Wrap(err, "查询评分失败")
	}
	return toRatingEntity(&model), nil
}

// Create 唯一索引uk_rating_book_user冲突时返回ErrDuplicateRating
func (r *ratingRepository) Create(ctx context.Context, rt *rating.Rating) error {
	model := toRatingModel(rt)
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return rating.ErrDuplicateRating
		}
		return apperrors.Wrap(err, "保存评分失败")
	}
	return nil
}

func (r *ratingRepository) Update(ctx context.Context, rt *rating.Rating) error {
	result := conn(ctx, r.db).Model(&RatingModel{}).
		Where("id = ?", rt.ID).
		Updates(map[string]interface{}{"vote": rt.Vote, "updated_at": rt.UpdatedAt})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新评分失败")
	}
	if result.RowsAffected == 0 {
		return rating.ErrRatingNotFound
	}
	return nil
}

func (r *ratingRepository) Delete(ctx context.Context, id string) error {
	result := conn(ctx, r.db).Where("id = ?", id).Delete(&RatingModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除评分失败")
	}
	if result.RowsAffected == 0 {
		return rating.ErrRatingNotFound
	}
	return nil
}

// Summarize 没有评分时平均分为0
func (r *ratingRepository) Summarize(ctx context.Context, bookID string) (rating.Summary, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := conn(ctx, r.db).Model(&RatingModel{}).
		Select("COALESCE(AVG(vote), 0) AS average, COUNT(*) AS count").
		Where("book_id = ?", bookID).
		Scan(&row).Error
	if err != nil {
		return rating.Summary{}, apperrors.Wrap(err, "统计评分失败")
	}
	return rating.Summary{Average: row.Average, Count: row.Count}, nil
}

func toRatingModel(rt *rating.Rating) *RatingModel {
	return &RatingModel{
		ID:        rt.ID,
		Vote:      rt.Vote,
		BookID:    rt.BookID,
		UserID:    rt.UserID,
		CreatedAt: rt.CreatedAt,
		UpdatedAt: rt.UpdatedAt,
	}
}

func toRatingEntity(model *RatingModel) *rating.Rating {
	return &rating.Rating{
		ID:        model.ID,
		Vote:      model.Vote,
		BookID:    model.BookID,
		UserID:    model.UserID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
