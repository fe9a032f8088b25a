package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the JSON envelope: %v (%s)", err, rec.Body.String())
	}
	return rec, body
}

func TestHTTPErrorHandlerDomainErrors(t *testing.T) {
	tests := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Credenciales inválidas"},
		{domain.ErrAccountDisabled, http.StatusUnauthorized, "Cuenta desactivada"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "Token expirado"},
		{domain.ErrTokenInvalid, http.StatusUnauthorized, "Token inválido"},
		{domain.ErrForbidden, http.StatusForbidden, "No tienes permisos para realizar esta acción"},
		{domain.ErrEmailTaken, http.StatusConflict, "El email ya está registrado"},
		{domain.ErrSKUTaken, http.StatusConflict, "El SKU ya existe"},
		{domain.ErrOrderLocked, http.StatusBadRequest, "La orden no admite modificaciones en su estado actual"},
		{domain.ErrInsufficientStock, http.StatusConflict, "Stock insuficiente"},
		{domain.ErrInvalidRole, http.StatusBadRequest, "Rol no válido"},
		{domain.ErrUserNotFound, http.StatusNotFound, "Usuario no encontrado"},
		{domain.ErrProductNotFound, http.StatusNotFound, "Producto no encontrado"},
		{domain.ErrOrderNotFound, http.StatusNotFound, "Orden no encontrada"},
		{domain.ErrChatUnavailable, http.StatusServiceUnavailable, "El asistente no está disponible en este momento"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			rec, body := handleError(t, tt.err)
			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
			if body.Message != tt.message {
				t.Errorf("message = %q, want %q", body.Message, tt.message)
			}
			if len(body.Errors) != 0 {
				t.Errorf("errors = %v, want omitted", body.Errors)
			}
		})
	}
}

func TestHTTPErrorHandlerWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("add order line: %w", domain.ErrOrderLocked)
	rec, body := handleError(t, wrapped)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for the wrapped sentinel", rec.Code)
	}
	if body.Message != "La orden no admite modificaciones en su estado actual" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestHTTPErrorHandlerValidationError(t *testing.T) {
	verr := domain.NewValidationError("La contraseña no es válida",
		"La contraseña debe tener al menos 8 caracteres",
		"La contraseña debe contener al menos un número",
	)

	rec, body := handleError(t, verr)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if body.Message != "La contraseña no es válida" {
		t.Errorf("message = %q", body.Message)
	}
	if len(body.Errors) != 2 {
		t.Errorf("errors = %v, want both violations", body.Errors)
	}
}

func TestHTTPErrorHandlerEchoErrorPassthrough(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if body.Message != "Method Not Allowed" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestHTTPErrorHandlerUnknownErrorIsOpaque(t *testing.T) {
	rec, body := handleError(t, errors.New("pq: connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if body.Message != "Error interno del servidor" {
		t.Errorf("message = %q, want the generic message", body.Message)
	}
}
