package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// CartHandler exposes the calling user's shopping cart. Every route resolves
// the cart from the authenticated principal, never from a client-supplied id.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addCartProductRequest struct {
	ProductID uint `json:"id_producto" validate:"required"`
	Cantidad  int  `json:"cantidad"`
}

type updateCartItemRequest struct {
	Cantidad int `json:"cantidad" validate:"required,gt=0"`
}

// cartUser rejects back-office principals: the cart belongs to storefront
// accounts only.
func cartUser(c echo.Context) (uint, error) {
	p, err := ctxPrincipal(c)
	if err != nil {
		return 0, err
	}
	if p.Type != domain.TypeUser {
		return 0, domain.ErrForbidden
	}
	return p.ID, nil
}

// Get returns the caller's cart, creating an empty one on first access.
//
// @Summary      Get my cart
// @Tags         carrito
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Cart
// @Failure      401  {object}  map[string]string
// @Router       /carrito [get]
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := cartUser(c)
	if err != nil {
		return err
	}
	cart, err := h.service.GetByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// AddProduct puts a product in the cart. Adding a product already present
// merges quantities instead of duplicating the line.
//
// @Summary      Add a product to my cart
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartProductRequest  true  "Product and quantity"
// @Success      200   {object}  domain.Cart
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /carrito/productos [post]
func (h *CartHandler) AddProduct(c echo.Context) error {
	userID, err := cartUser(c)
	if err != nil {
		return err
	}
	var req addCartProductRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.service.AddProduct(c.Request().Context(), userID, req.ProductID, req.Cantidad)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// UpdateItem changes the quantity of one cart item.
//
// @Summary      Update a cart item
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Cart item id"
// @Param        body  body      updateCartItemRequest  true  "New quantity"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /carrito/items/{id} [put]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, err := cartUser(c)
	if err != nil {
		return err
	}
	itemID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.UpdateItem(c.Request().Context(), userID, itemID, req.Cantidad); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Carrito actualizado correctamente"})
}

// RemoveItem drops one item from the cart.
//
// @Summary      Remove a cart item
// @Tags         carrito
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Cart item id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /carrito/items/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := cartUser(c)
	if err != nil {
		return err
	}
	itemID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.RemoveItem(c.Request().Context(), userID, itemID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Producto eliminado del carrito"})
}

// Clear empties the cart.
//
// @Summary      Empty my cart
// @Tags         carrito
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Router       /carrito [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	userID, err := cartUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Clear(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Carrito vaciado correctamente"})
}
