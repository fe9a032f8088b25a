package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// PaymentService records payment attempts against orders. There is no gateway
// integration here: the transaction id is generated locally and the status is
// driven by the back office.
type PaymentService struct {
	payments ports.PaymentRepository
	orders   ports.OrderRepository
	logger   zerolog.Logger
}

func NewPaymentService(payments ports.PaymentRepository, orders ports.OrderRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{payments: payments, orders: orders, logger: logger}
}

func (s *PaymentService) Get(ctx context.Context, id uint) (*domain.Payment, error) {
	return s.payments.FindByID(ctx, id)
}

func (s *PaymentService) ListByOrder(ctx context.Context, orderID uint) ([]domain.Payment, error) {
	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.payments.ListByOrder(ctx, orderID)
}

func (s *PaymentService) Create(ctx context.Context, in ports.CreatePaymentInput) (*domain.Payment, error) {
	if in.MetodoPago == "" {
		return nil, domain.NewValidationError("El método de pago es requerido")
	}
	if !in.Monto.IsPositive() {
		return nil, domain.NewValidationError("El monto debe ser mayor a cero")
	}
	if _, err := s.orders.FindByID(ctx, in.OrderID); err != nil {
		return nil, err
	}

	payment, err := s.payments.Create(ctx, &domain.Payment{
		OrderID:       in.OrderID,
		MetodoPago:    in.MetodoPago,
		TransactionID: uuid.NewString(),
		Monto:         in.Monto,
		Estado:        domain.PaymentPending,
		FechaPago:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("payment_id", payment.ID).Uint("order_id", in.OrderID).Msg("payment registered")
	return payment, nil
}

func (s *PaymentService) UpdateStatus(ctx context.Context, id uint, estado domain.PaymentStatus) (*domain.Payment, error) {
	if !estado.Valid() {
		return nil, domain.NewValidationError("Estado de pago no válido")
	}
	if _, err := s.payments.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.payments.UpdateStatus(ctx, id, estado); err != nil {
		return nil, err
	}
	return s.payments.FindByID(ctx, id)
}
