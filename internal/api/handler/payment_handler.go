package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// PaymentHandler records and tracks payments against orders. Back office only.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createPaymentRequest struct {
	OrderID    uint            `json:"id_orden" validate:"required"`
	MetodoPago string          `json:"metodo_pago" validate:"required"`
	Monto      decimal.Decimal `json:"monto" validate:"required"`
}

type updatePaymentStatusRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente completado rechazado"`
}

// Get returns one payment by id.
//
// @Summary      Get a payment
// @Tags         pagos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Payment id"
// @Success      200  {object}  domain.Payment
// @Failure      404  {object}  map[string]string
// @Router       /pagos/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	payment, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// ListByOrder returns the payments registered against one order.
//
// @Summary      List payments of an order
// @Tags         pagos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "Order id"
// @Success      200  {array}  domain.Payment
// @Failure      404  {object}  map[string]string
// @Router       /pagos/orden/{id} [get]
func (h *PaymentHandler) ListByOrder(c echo.Context) error {
	orderID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	payments, err := h.service.ListByOrder(c.Request().Context(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// Create registers a payment attempt for an order. It starts as "pendiente".
//
// @Summary      Register a payment
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentRequest  true  "Payment details"
// @Success      201   {object}  domain.Payment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /pagos [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.service.Create(c.Request().Context(), ports.CreatePaymentInput{
		OrderID:    req.OrderID,
		MetodoPago: req.MetodoPago,
		Monto:      req.Monto,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}

// UpdateStatus moves a payment between pendiente/completado/rechazado.
//
// @Summary      Update payment status
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                         true  "Payment id"
// @Param        body  body      updatePaymentStatusRequest  true  "New status"
// @Success      200   {object}  domain.Payment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /pagos/{id}/estado [put]
func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.service.UpdateStatus(c.Request().Context(), id, domain.PaymentStatus(req.Estado))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}
