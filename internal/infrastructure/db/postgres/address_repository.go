package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// AddressRepository persists shipping addresses.
type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	m := &addressModel{
		UserID:       a.UserID,
		Calle:        a.Calle,
		Numero:       a.Numero,
		Localidad:    a.Localidad,
		Provincia:    a.Provincia,
		CodigoPostal: a.CodigoPostal,
		EsPrincipal:  a.EsPrincipal,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *AddressRepository) FindByID(ctx context.Context, id uint) (*domain.Address, error) {
	var m addressModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Address, error) {
	var ms []addressModel
	err := r.db.WithContext(ctx).
		Where("id_usuario = ?", userID).
		Order("es_principal DESC, id").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	addresses := make([]domain.Address, 0, len(ms))
	for i := range ms {
		addresses = append(addresses, *ms[i].toDomain())
	}
	return addresses, nil
}

func (r *AddressRepository) Update(ctx context.Context, a *domain.Address) error {
	res := r.db.WithContext(ctx).Model(&addressModel{}).Where("id = ?", a.ID).Updates(map[string]any{
		"calle":         a.Calle,
		"numero":        a.Numero,
		"localidad":     a.Localidad,
		"provincia":     a.Provincia,
		"codigo_postal": a.CodigoPostal,
		"es_principal":  a.EsPrincipal,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&addressModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}
