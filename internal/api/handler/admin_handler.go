package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// AdminHandler exposes management of back-office accounts. Superadmin only.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type updateAdminRequest struct {
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	Rol      *string `json:"rol"`
	Activo   *bool   `json:"activo"`
}

// List returns every back-office account.
//
// @Summary      List admins
// @Tags         administradores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Admin
// @Failure      403  {object}  map[string]string
// @Router       /administradores [get]
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// Get returns one admin by id.
//
// @Summary      Get an admin
// @Tags         administradores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Admin id"
// @Success      200  {object}  domain.Admin
// @Failure      404  {object}  map[string]string
// @Router       /administradores/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	admin, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

// Update patches an admin's fields, including its role.
//
// @Summary      Update an admin
// @Tags         administradores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Admin id"
// @Param        body  body      updateAdminRequest  true  "Fields to update"
// @Success      200   {object}  domain.Admin
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /administradores/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updateAdminRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}

	upd := ports.AdminUpdate{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Activo:   req.Activo,
	}
	if req.Rol != nil {
		rol := domain.AdminRole(*req.Rol)
		upd.Rol = &rol
	}

	admin, err := h.service.Update(c.Request().Context(), id, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

// Deactivate soft-deletes a back-office account.
//
// @Summary      Deactivate an admin
// @Tags         administradores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Admin id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /administradores/{id} [delete]
func (h *AdminHandler) Deactivate(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Administrador desactivado correctamente"})
}
