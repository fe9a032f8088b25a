package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

type catalogEntryRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
}

type catalogEntryUpdate struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// CategoryHandler exposes the category catalog. Reads are public, writes sit
// behind the admin gate.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List returns all active categories.
//
// @Summary      List categories
// @Tags         categorias
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /categorias [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Get returns one category by id.
//
// @Summary      Get a category
// @Tags         categorias
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  map[string]string
// @Router       /categorias/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	category, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Create registers a new category owned by the calling admin.
//
// @Summary      Create a category
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      catalogEntryRequest  true  "Category details"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /categorias [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	var req catalogEntryRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.service.Create(c.Request().Context(), ports.CategoryInput{
		AdminID:     p.ID,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Update patches a category.
//
// @Summary      Update a category
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Category id"
// @Param        body  body      catalogEntryUpdate  true  "Fields to update"
// @Success      200   {object}  domain.Category
// @Failure      404   {object}  map[string]string
// @Router       /categorias/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req catalogEntryUpdate
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}

	category, err := h.service.Update(c.Request().Context(), id, req.Nombre, req.Descripcion)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Deactivate soft-deletes a category.
//
// @Summary      Deactivate a category
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /categorias/{id} [delete]
func (h *CategoryHandler) Deactivate(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Categoría desactivada correctamente"})
}

// BrandHandler exposes the brand catalog, same shape as categories.
type BrandHandler struct {
	service ports.BrandService
}

func NewBrandHandler(service ports.BrandService) *BrandHandler {
	return &BrandHandler{service: service}
}

// List returns all active brands.
//
// @Summary      List brands
// @Tags         marcas
// @Produce      json
// @Success      200  {array}  domain.Brand
// @Router       /marcas [get]
func (h *BrandHandler) List(c echo.Context) error {
	brands, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brands)
}

// Get returns one brand by id.
//
// @Summary      Get a brand
// @Tags         marcas
// @Produce      json
// @Param        id   path      int  true  "Brand id"
// @Success      200  {object}  domain.Brand
// @Failure      404  {object}  map[string]string
// @Router       /marcas/{id} [get]
func (h *BrandHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	brand, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

// Create registers a new brand owned by the calling admin.
//
// @Summary      Create a brand
// @Tags         marcas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      catalogEntryRequest  true  "Brand details"
// @Success      201   {object}  domain.Brand
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /marcas [post]
func (h *BrandHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	var req catalogEntryRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	brand, err := h.service.Create(c.Request().Context(), ports.BrandInput{
		AdminID:     p.ID,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, brand)
}

// Update patches a brand.
//
// @Summary      Update a brand
// @Tags         marcas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Brand id"
// @Param        body  body      catalogEntryUpdate  true  "Fields to update"
// @Success      200   {object}  domain.Brand
// @Failure      404   {object}  map[string]string
// @Router       /marcas/{id} [put]
func (h *BrandHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req catalogEntryUpdate
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Cuerpo de la petición no válido")
	}

	brand, err := h.service.Update(c.Request().Context(), id, req.Nombre, req.Descripcion)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

// Deactivate soft-deletes a brand.
//
// @Summary      Deactivate a brand
// @Tags         marcas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Brand id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /marcas/{id} [delete]
func (h *BrandHandler) Deactivate(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Marca desactivada correctamente"})
}
