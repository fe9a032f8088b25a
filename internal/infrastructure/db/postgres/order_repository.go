package postgres

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// OrderRepository persists orders and their lines. Line mutations run inside
// one transaction that locks the parent order row (FOR UPDATE) and rewrites
// subtotal/total from a full re-sum of the remaining lines, so concurrent
// edits can never leave totals out of sync with the lines.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	m := &orderModel{
		UserID:      order.UserID,
		AddressID:   order.AddressID,
		NumeroOrden: order.NumeroOrden,
		Estado:      order.Estado,
		Subtotal:    order.Subtotal,
		Total:       order.Total,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var m orderModel
	if err := r.db.WithContext(ctx).Preload("Lines").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	var ms []orderModel
	if err := r.db.WithContext(ctx).Preload("Lines").Order("id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, *ms[i].toDomain())
	}
	return orders, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var ms []orderModel
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("id_usuario = ?", userID).
		Order("id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, *ms[i].toDomain())
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, estado string) error {
	res := r.db.WithContext(ctx).Model(&orderModel{}).Where("id = ?", id).Update("estado", estado)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_orden = ?", id).Delete(&orderLineModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&orderModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrOrderNotFound
		}
		return nil
	})
}

// --- Lines ---

func (r *OrderRepository) ListLines(ctx context.Context) ([]domain.OrderLine, error) {
	var ms []orderLineModel
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	lines := make([]domain.OrderLine, 0, len(ms))
	for i := range ms {
		lines = append(lines, *ms[i].toDomain())
	}
	return lines, nil
}

func (r *OrderRepository) FindLine(ctx context.Context, lineID uint) (*domain.OrderLine, error) {
	var m orderLineModel
	if err := r.db.WithContext(ctx).First(&m, lineID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderLineNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *OrderRepository) AddLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error) {
	m := &orderLineModel{
		OrderID:        line.OrderID,
		ProductID:      line.ProductID,
		Cantidad:       line.Cantidad,
		PrecioUnitario: line.PrecioUnitario,
		Subtotal:       line.Subtotal,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockOrder(tx, line.OrderID); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return recomputeTotals(tx, line.OrderID)
	})
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *OrderRepository) UpdateLine(ctx context.Context, lineID uint, cantidad int, precioUnitario decimal.Decimal) (*domain.OrderLine, error) {
	var m orderLineModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, lineID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderLineNotFound
			}
			return err
		}
		if _, err := lockOrder(tx, m.OrderID); err != nil {
			return err
		}

		m.Cantidad = cantidad
		m.PrecioUnitario = precioUnitario
		m.Subtotal = precioUnitario.Mul(decimal.NewFromInt(int64(cantidad)))
		if err := tx.Model(&orderLineModel{}).Where("id = ?", lineID).Updates(map[string]any{
			"cantidad":        m.Cantidad,
			"precio_unitario": m.PrecioUnitario,
			"subtotal":        m.Subtotal,
		}).Error; err != nil {
			return err
		}
		return recomputeTotals(tx, m.OrderID)
	})
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *OrderRepository) DeleteLine(ctx context.Context, lineID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m orderLineModel
		if err := tx.First(&m, lineID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderLineNotFound
			}
			return err
		}
		if _, err := lockOrder(tx, m.OrderID); err != nil {
			return err
		}
		if err := tx.Delete(&orderLineModel{}, lineID).Error; err != nil {
			return err
		}
		return recomputeTotals(tx, m.OrderID)
	})
}

// lockOrder takes the order row FOR UPDATE and re-checks that its lines are
// still editable while the lock is held.
func lockOrder(tx *gorm.DB, orderID uint) (*orderModel, error) {
	var m orderModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	if m.Estado == domain.OrderStatusDelivered || m.Estado == domain.OrderStatusCancelled {
		return nil, domain.ErrOrderLocked
	}
	return &m, nil
}

// recomputeTotals rewrites subtotal/total from a full re-sum of the order's
// remaining lines. An order with no lines goes back to zero.
func recomputeTotals(tx *gorm.DB, orderID uint) error {
	var ms []orderLineModel
	if err := tx.Where("id_orden = ?", orderID).Find(&ms).Error; err != nil {
		return err
	}

	lines := make([]domain.OrderLine, 0, len(ms))
	for i := range ms {
		lines = append(lines, *ms[i].toDomain())
	}
	total := domain.SumLineSubtotals(lines)

	return tx.Model(&orderModel{}).Where("id = ?", orderID).Updates(map[string]any{
		"subtotal": total,
		"total":    total,
	}).Error
}
