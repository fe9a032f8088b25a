package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gameronce/commerce-api/internal/api/middleware"
	"github.com/gameronce/commerce-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Authenticate middleware.
// Its presence proves the middleware ran; absence means the route was wired
// without it and the request must not proceed.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.Principal(c)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return p, nil
}

// idParam parses the numeric path parameter name. Non-numeric values surface
// as a validation error, never as a 404 from a zero-id lookup.
func idParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, domain.NewValidationError("El identificador no es válido")
	}
	return uint(id), nil
}

// messageResponse is the envelope for operations that return no entity.
type messageResponse struct {
	Message string `json:"message"`
}
