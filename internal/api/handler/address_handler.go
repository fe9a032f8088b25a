package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// AddressHandler exposes the calling user's shipping addresses.
type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

type addressRequest struct {
	Calle        string `json:"calle" validate:"required"`
	Numero       string `json:"numero" validate:"required"`
	Localidad    string `json:"localidad" validate:"required"`
	Provincia    string `json:"provincia" validate:"required"`
	CodigoPostal string `json:"codigo_postal" validate:"required"`
	EsPrincipal  bool   `json:"es_principal"`
}

// addressOwner resolves the calling user and checks the address belongs to it.
func (h *AddressHandler) addressOwner(c echo.Context, addressID uint) (uint, error) {
	p, err := ctxPrincipal(c)
	if err != nil {
		return 0, err
	}
	if p.Type != domain.TypeUser {
		return 0, domain.ErrForbidden
	}
	if addressID != 0 {
		address, err := h.service.Get(c.Request().Context(), addressID)
		if err != nil {
			return 0, err
		}
		// Hide other users' addresses behind a 404 rather than a 403.
		if address.UserID != p.ID {
			return 0, domain.ErrAddressNotFound
		}
	}
	return p.ID, nil
}

// List returns the caller's addresses.
//
// @Summary      List my addresses
// @Tags         direcciones
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Address
// @Router       /direcciones [get]
func (h *AddressHandler) List(c echo.Context) error {
	userID, err := h.addressOwner(c, 0)
	if err != nil {
		return err
	}
	addresses, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addresses)
}

// Get returns one of the caller's addresses.
//
// @Summary      Get an address
// @Tags         direcciones
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Address id"
// @Success      200  {object}  domain.Address
// @Failure      404  {object}  map[string]string
// @Router       /direcciones/{id} [get]
func (h *AddressHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.addressOwner(c, id); err != nil {
		return err
	}
	address, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, address)
}

// Create registers a new address for the caller.
//
// @Summary      Create an address
// @Tags         direcciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addressRequest  true  "Address details"
// @Success      201   {object}  domain.Address
// @Failure      400   {object}  map[string]string
// @Router       /direcciones [post]
func (h *AddressHandler) Create(c echo.Context) error {
	userID, err := h.addressOwner(c, 0)
	if err != nil {
		return err
	}
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.service.Create(c.Request().Context(), ports.AddressInput{
		UserID:       userID,
		Calle:        req.Calle,
		Numero:       req.Numero,
		Localidad:    req.Localidad,
		Provincia:    req.Provincia,
		CodigoPostal: req.CodigoPostal,
		EsPrincipal:  req.EsPrincipal,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, address)
}

// Update edits one of the caller's addresses.
//
// @Summary      Update an address
// @Tags         direcciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Address id"
// @Param        body  body      addressRequest  true  "Fields to update"
// @Success      200   {object}  domain.Address
// @Failure      404   {object}  map[string]string
// @Router       /direcciones/{id} [put]
func (h *AddressHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := h.addressOwner(c, id)
	if err != nil {
		return err
	}
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}

	address, err := h.service.Update(c.Request().Context(), id, ports.AddressInput{
		UserID:       userID,
		Calle:        req.Calle,
		Numero:       req.Numero,
		Localidad:    req.Localidad,
		Provincia:    req.Provincia,
		CodigoPostal: req.CodigoPostal,
		EsPrincipal:  req.EsPrincipal,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, address)
}

// Delete removes one of the caller's addresses.
//
// @Summary      Delete an address
// @Tags         direcciones
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Address id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /direcciones/{id} [delete]
func (h *AddressHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.addressOwner(c, id); err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Dirección eliminada correctamente"})
}
