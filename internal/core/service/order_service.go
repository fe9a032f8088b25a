package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
	"github.com/gameronce/commerce-api/internal/metrics"
)

// OrderService manages orders and their lines. Totals are derived: every line
// mutation goes through the repository's transactional add/update/delete,
// which locks the order row and rewrites subtotal/total from a full re-sum.
type OrderService struct {
	orders    ports.OrderRepository
	users     ports.UserRepository
	addresses ports.AddressRepository
	products  ports.ProductRepository
	notify    func(ports.OrderNotification)
	logger    zerolog.Logger
}

// NewOrderService wires the order workflows. notify may be nil when no
// asynchronous notification channel is configured.
func NewOrderService(
	orders ports.OrderRepository,
	users ports.UserRepository,
	addresses ports.AddressRepository,
	products ports.ProductRepository,
	notify func(ports.OrderNotification),
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{orders: orders, users: users, addresses: addresses, products: products, notify: notify, logger: logger}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Create opens an empty pending order. Totals start at zero and are only ever
// written by the line recompute; client-supplied amounts are ignored by design.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	address, err := s.addresses.FindByID(ctx, in.AddressID)
	if err != nil {
		return nil, err
	}
	if address.UserID != user.ID {
		return nil, domain.ErrAddressNotFound
	}

	order, err := s.orders.Create(ctx, &domain.Order{
		UserID:      user.ID,
		AddressID:   address.ID,
		NumeroOrden: generateOrderNumber(),
		FechaOrden:  time.Now().UTC(),
		Estado:      domain.OrderStatusPending,
		Subtotal:    decimal.Zero,
		Total:       decimal.Zero,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info().Str("numero_orden", order.NumeroOrden).Uint("user_id", user.ID).Msg("order created")

	if s.notify != nil {
		s.notify(ports.OrderNotification{
			NumeroOrden: order.NumeroOrden,
			Email:       user.Email,
			Nombre:      user.Nombre,
			Total:       order.Total,
		})
	}
	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uint, estado string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if estado == "" {
		estado = order.Estado
	}
	if err := s.orders.UpdateStatus(ctx, id, estado); err != nil {
		return nil, err
	}
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return err
	}
	return s.orders.Delete(ctx, id)
}

// --- Lines ---

func (s *OrderService) ListLines(ctx context.Context) ([]domain.OrderLine, error) {
	return s.orders.ListLines(ctx)
}

func (s *OrderService) GetLine(ctx context.Context, lineID uint) (*domain.OrderLine, error) {
	return s.orders.FindLine(ctx, lineID)
}

// AddLine appends a line to an order, snapshotting the current product price
// when none is given, and triggers the transactional total recompute.
func (s *OrderService) AddLine(ctx context.Context, in ports.AddLineInput) (*domain.OrderLine, error) {
	if in.Cantidad <= 0 {
		return nil, domain.NewValidationError("La cantidad debe ser mayor a cero")
	}

	order, err := s.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.LinesEditable() {
		return nil, domain.ErrOrderLocked
	}

	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	precio := product.Precio
	if in.PrecioUnitario != nil {
		precio = *in.PrecioUnitario
	}

	line := &domain.OrderLine{
		OrderID:        order.ID,
		ProductID:      product.ID,
		Cantidad:       in.Cantidad,
		PrecioUnitario: precio,
	}
	line.Subtotal = line.ComputeSubtotal()

	created, err := s.orders.AddLine(ctx, line)
	if err != nil {
		return nil, fmt.Errorf("add order line: %w", err)
	}
	metrics.OrderRecomputesTotal.Inc()
	return created, nil
}

// UpdateLine changes quantity and/or unit price of a line, then recomputes the
// parent order's totals. Nil arguments leave the field untouched.
func (s *OrderService) UpdateLine(ctx context.Context, lineID uint, cantidad *int, precioUnitario *decimal.Decimal) (*domain.OrderLine, error) {
	line, err := s.orders.FindLine(ctx, lineID)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.FindByID(ctx, line.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.LinesEditable() {
		return nil, domain.ErrOrderLocked
	}

	newCantidad := line.Cantidad
	if cantidad != nil {
		if *cantidad <= 0 {
			return nil, domain.NewValidationError("La cantidad debe ser mayor a cero")
		}
		newCantidad = *cantidad
	}
	newPrecio := line.PrecioUnitario
	if precioUnitario != nil {
		newPrecio = *precioUnitario
	}

	updated, err := s.orders.UpdateLine(ctx, lineID, newCantidad, newPrecio)
	if err != nil {
		return nil, fmt.Errorf("update order line: %w", err)
	}
	metrics.OrderRecomputesTotal.Inc()
	return updated, nil
}

// DeleteLine removes a line and recomputes the parent order's totals.
func (s *OrderService) DeleteLine(ctx context.Context, lineID uint) error {
	line, err := s.orders.FindLine(ctx, lineID)
	if err != nil {
		return err
	}
	order, err := s.orders.FindByID(ctx, line.OrderID)
	if err != nil {
		return err
	}
	if !order.LinesEditable() {
		return domain.ErrOrderLocked
	}

	if err := s.orders.DeleteLine(ctx, lineID); err != nil {
		return fmt.Errorf("delete order line: %w", err)
	}
	metrics.OrderRecomputesTotal.Inc()
	return nil
}

// generateOrderNumber returns a unique order number in the format
// ORD-<unix>-<8 hex chars>.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%.8s", time.Now().Unix(), uuid.NewString())
}
