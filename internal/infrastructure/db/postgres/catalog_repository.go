package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// CategoryRepository persists product categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	m := &categoryModel{
		AdminID:     c.AdminID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Activo:      true,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var m categoryModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var ms []categoryModel
	if err := r.db.WithContext(ctx).Where("activo = ?", true).Order("nombre").Find(&ms).Error; err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(ms))
	for i := range ms {
		categories = append(categories, *ms[i].toDomain())
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	res := r.db.WithContext(ctx).Model(&categoryModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"nombre":      c.Nombre,
		"descripcion": c.Descripcion,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Deactivate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&categoryModel{}).Where("id = ?", id).Update("activo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// BrandRepository persists product brands.
type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Create(ctx context.Context, b *domain.Brand) (*domain.Brand, error) {
	m := &brandModel{
		AdminID:     b.AdminID,
		Nombre:      b.Nombre,
		Descripcion: b.Descripcion,
		Activo:      true,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *BrandRepository) FindByID(ctx context.Context, id uint) (*domain.Brand, error) {
	var m brandModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *BrandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	var ms []brandModel
	if err := r.db.WithContext(ctx).Where("activo = ?", true).Order("nombre").Find(&ms).Error; err != nil {
		return nil, err
	}
	brands := make([]domain.Brand, 0, len(ms))
	for i := range ms {
		brands = append(brands, *ms[i].toDomain())
	}
	return brands, nil
}

func (r *BrandRepository) Update(ctx context.Context, b *domain.Brand) error {
	res := r.db.WithContext(ctx).Model(&brandModel{}).Where("id = ?", b.ID).Updates(map[string]any{
		"nombre":      b.Nombre,
		"descripcion": b.Descripcion,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBrandNotFound
	}
	return nil
}

func (r *BrandRepository) Deactivate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&brandModel{}).Where("id = ?", id).Update("activo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBrandNotFound
	}
	return nil
}
