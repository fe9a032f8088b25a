package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// OrderHandler exposes orders and their lines. Totals are never accepted from
// the client; they are derived from the lines on every mutation.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type createOrderRequest struct {
	AddressID uint `json:"id_direccion_envio" validate:"required"`
}

// Estado is free text so the storefront can set intermediate states
// (enviado, en preparación, …); only the terminal states freeze line edits.
type updateOrderStatusRequest struct {
	Estado string `json:"estado" validate:"required"`
}

type addOrderLineRequest struct {
	OrderID        uint             `json:"id_orden" validate:"required"`
	ProductID      uint             `json:"id_producto" validate:"required"`
	Cantidad       int              `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
}

type updateOrderLineRequest struct {
	Cantidad       *int             `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
}

// List returns every order. Back office only.
//
// @Summary      List orders
// @Tags         ordenes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      403  {object}  map[string]string
// @Router       /ordenes [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// ListMine returns the calling user's orders.
//
// @Summary      List my orders
// @Tags         ordenes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Order
// @Router       /ordenes/mis-ordenes [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	if p.Type != domain.TypeUser {
		return domain.ErrForbidden
	}
	orders, err := h.service.ListByUser(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Create opens a new order for the calling user. It starts with no lines and
// zero totals.
//
// @Summary      Create an order
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Shipping address"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /ordenes [post]
func (h *OrderHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	if p.Type != domain.TypeUser {
		return domain.ErrForbidden
	}
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:    p.ID,
		AddressID: req.AddressID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// UpdateStatus moves an order to a new state. Back office only.
//
// @Summary      Update order status
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /ordenes/{id}/estado [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), id, req.Estado)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Delete removes an order and its lines. Back office only.
//
// @Summary      Delete an order
// @Tags         ordenes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /ordenes/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Orden eliminada correctamente"})
}

// --- Order lines ---

// ListLines returns every order line. Back office only.
//
// @Summary      List order lines
// @Tags         detalle-ordenes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.OrderLine
// @Router       /detalle-ordenes [get]
func (h *OrderHandler) ListLines(c echo.Context) error {
	lines, err := h.service.ListLines(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

// GetLine returns one order line by id.
//
// @Summary      Get an order line
// @Tags         detalle-ordenes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order line id"
// @Success      200  {object}  domain.OrderLine
// @Failure      404  {object}  map[string]string
// @Router       /detalle-ordenes/{id} [get]
func (h *OrderHandler) GetLine(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	line, err := h.service.GetLine(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, line)
}

// AddLine appends a line to an editable order and recomputes its totals.
//
// @Summary      Add an order line
// @Tags         detalle-ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addOrderLineRequest  true  "Line details"
// @Success      201   {object}  domain.OrderLine
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /detalle-ordenes [post]
func (h *OrderHandler) AddLine(c echo.Context) error {
	var req addOrderLineRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	line, err := h.service.AddLine(c.Request().Context(), ports.AddLineInput{
		OrderID:        req.OrderID,
		ProductID:      req.ProductID,
		Cantidad:       req.Cantidad,
		PrecioUnitario: req.PrecioUnitario,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, line)
}

// UpdateLine edits a line on an editable order and recomputes its totals.
//
// @Summary      Update an order line
// @Tags         detalle-ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Order line id"
// @Param        body  body      updateOrderLineRequest  true  "Fields to update"
// @Success      200   {object}  domain.OrderLine
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /detalle-ordenes/{id} [put]
func (h *OrderHandler) UpdateLine(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updateOrderLineRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}

	line, err := h.service.UpdateLine(c.Request().Context(), id, req.Cantidad, req.PrecioUnitario)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, line)
}

// DeleteLine removes a line from an editable order and recomputes its totals.
//
// @Summary      Delete an order line
// @Tags         detalle-ordenes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order line id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /detalle-ordenes/{id} [delete]
func (h *OrderHandler) DeleteLine(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteLine(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Detalle de orden eliminado correctamente"})
}
