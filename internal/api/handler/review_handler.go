package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// ReviewHandler exposes product reviews. Reading is public, writing requires a
// storefront account.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	ProductID    uint   `json:"id_producto" validate:"required"`
	Calificacion int    `json:"calificacion" validate:"required"`
	Comentario   string `json:"comentario"`
}

// ListByProduct returns the reviews of one product.
//
// @Summary      List reviews of a product
// @Tags         opiniones
// @Produce      json
// @Param        id   path     int  true  "Product id"
// @Success      200  {array}  domain.Review
// @Failure      404  {object}  map[string]string
// @Router       /opiniones/producto/{id} [get]
func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	productID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	reviews, err := h.service.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Get returns one review by id.
//
// @Summary      Get a review
// @Tags         opiniones
// @Produce      json
// @Param        id   path      int  true  "Review id"
// @Success      200  {object}  domain.Review
// @Failure      404  {object}  map[string]string
// @Router       /opiniones/{id} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	review, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// Create registers a review by the calling user.
//
// @Summary      Create a review
// @Tags         opiniones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /opiniones [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	if p.Type != domain.TypeUser {
		return domain.ErrForbidden
	}
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.service.Create(c.Request().Context(), ports.ReviewInput{
		UserID:       p.ID,
		ProductID:    req.ProductID,
		Calificacion: req.Calificacion,
		Comentario:   req.Comentario,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// Delete removes a review. The author may delete its own; admins may delete
// any.
//
// @Summary      Delete a review
// @Tags         opiniones
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Review id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /opiniones/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	review, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !p.IsAdmin() && review.UserID != p.ID {
		return domain.ErrForbidden
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Reseña eliminada correctamente"})
}
