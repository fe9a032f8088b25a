package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Errors is
// only populated for validation failures carrying per-field detail.
type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Keeps client-facing messages in Spanish, matching the storefront.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "...", "errors": [...]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			_ = c.JSON(http.StatusBadRequest, errorResponse{Message: verr.Message, Errors: verr.Errors})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Credenciales inválidas"
	case errors.Is(err, domain.ErrAccountDisabled):
		return http.StatusUnauthorized, "Cuenta desactivada"
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expirado"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "Token inválido"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "No tienes permisos para realizar esta acción"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "El email ya está registrado"
	case errors.Is(err, domain.ErrSKUTaken):
		return http.StatusConflict, "El SKU ya existe"
	case errors.Is(err, domain.ErrOrderLocked):
		return http.StatusBadRequest, "La orden no admite modificaciones en su estado actual"
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict, "Stock insuficiente"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Rol no válido"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuario no encontrado"
	case errors.Is(err, domain.ErrAdminNotFound):
		return http.StatusNotFound, "Administrador no encontrado"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "Categoría no encontrada"
	case errors.Is(err, domain.ErrBrandNotFound):
		return http.StatusNotFound, "Marca no encontrada"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Producto no encontrado"
	case errors.Is(err, domain.ErrCartNotFound):
		return http.StatusNotFound, "Carrito no encontrado"
	case errors.Is(err, domain.ErrCartItemNotFound):
		return http.StatusNotFound, "Producto no encontrado en el carrito"
	case errors.Is(err, domain.ErrAddressNotFound):
		return http.StatusNotFound, "Dirección no encontrada"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "Orden no encontrada"
	case errors.Is(err, domain.ErrOrderLineNotFound):
		return http.StatusNotFound, "Detalle de orden no encontrado"
	case errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound, "Pago no encontrado"
	case errors.Is(err, domain.ErrReviewNotFound):
		return http.StatusNotFound, "Reseña no encontrada"
	case errors.Is(err, domain.ErrChatUnavailable):
		return http.StatusServiceUnavailable, "El asistente no está disponible en este momento"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Error interno del servidor"
}
