package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gameronce/commerce-api/internal/core/ports"
)

// NotificationService turns an order notification into an email. It runs on
// the dispatcher's workers, never on the request path.
type NotificationService struct {
	mailer ports.Mailer
	logger zerolog.Logger
}

func NewNotificationService(mailer ports.Mailer, logger zerolog.Logger) *NotificationService {
	return &NotificationService{mailer: mailer, logger: logger}
}

// Notify sends the order confirmation email.
func (s *NotificationService) Notify(ctx context.Context, n ports.OrderNotification) error {
	subject := fmt.Sprintf("Confirmación de orden %s", n.NumeroOrden)
	body := fmt.Sprintf(
		"<h1>¡Gracias por tu compra, %s!</h1>"+
			"<p>Recibimos tu orden <strong>%s</strong>.</p>"+
			"<p>Total: $%s</p>"+
			"<p>Te avisaremos cuando esté en camino. — Gamer Once, Gamer Always</p>",
		n.Nombre, n.NumeroOrden, n.Total.StringFixed(2),
	)

	if err := s.mailer.Send(ctx, n.Email, subject, body); err != nil {
		return fmt.Errorf("send order confirmation: %w", err)
	}

	s.logger.Info().Str("numero_orden", n.NumeroOrden).Str("email", n.Email).Msg("order confirmation sent")
	return nil
}
