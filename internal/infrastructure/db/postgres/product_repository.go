package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// ProductRepository persists catalog products.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	m := productFromDomain(p)
	m.Activo = true
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSKUTaken
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var m productModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

// List returns the active catalog only; deactivated products stay queryable
// by id for order history.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var ms []productModel
	if err := r.db.WithContext(ctx).Where("activo = ?", true).Order("nombre").Find(&ms).Error; err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(ms))
	for i := range ms {
		products = append(products, *ms[i].toDomain())
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	m := productFromDomain(p)
	// Struct-based Updates so the jsonb image fields go through the serializer.
	res := r.db.WithContext(ctx).Model(&productModel{ID: p.ID}).
		Select("CategoryID", "BrandID", "Nombre", "Descripcion", "SKU", "Precio",
			"Stock", "ImagenPrincipal", "Galeria", "Activo", "Destacado").
		Updates(m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrSKUTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Deactivate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&productModel{}).Where("id = ?", id).Update("activo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete removes the row for good. Order lines keep their snapshots.
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&productModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
