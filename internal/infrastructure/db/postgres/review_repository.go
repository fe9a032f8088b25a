package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// ReviewRepository persists product reviews.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	m := &reviewModel{
		UserID:       review.UserID,
		ProductID:    review.ProductID,
		Calificacion: review.Calificacion,
		Comentario:   review.Comentario,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uint) (*domain.Review, error) {
	var m reviewModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID uint) ([]domain.Review, error) {
	var ms []reviewModel
	err := r.db.WithContext(ctx).Where("id_producto = ?", productID).Order("id DESC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	reviews := make([]domain.Review, 0, len(ms))
	for i := range ms {
		reviews = append(reviews, *ms[i].toDomain())
	}
	return reviews, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&reviewModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
