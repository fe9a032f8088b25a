package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// PaymentRepository persists order payments.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	m := &paymentModel{
		OrderID:       p.OrderID,
		MetodoPago:    p.MetodoPago,
		TransactionID: p.TransactionID,
		Monto:         p.Monto,
		Estado:        string(p.Estado),
		FechaPago:     p.FechaPago,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint) (*domain.Payment, error) {
	var m paymentModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *PaymentRepository) ListByOrder(ctx context.Context, orderID uint) ([]domain.Payment, error) {
	var ms []paymentModel
	err := r.db.WithContext(ctx).Where("id_orden = ?", orderID).Order("id").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(ms))
	for i := range ms {
		payments = append(payments, *ms[i].toDomain())
	}
	return payments, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uint, estado domain.PaymentStatus) error {
	res := r.db.WithContext(ctx).Model(&paymentModel{}).Where("id = ?", id).Update("estado", string(estado))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}
